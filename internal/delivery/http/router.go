package http

import (
	"net/http"

	"crisislink/internal/delivery/http/handler"
	"crisislink/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router           *mux.Router
	authHandler      *handler.AuthHandler
	profileHandler   *handler.MedicalProfileHandler
	contactHandler   *handler.EmergencyContactHandler
	emergencyHandler *handler.EmergencyHandler
	qrHandler        *handler.QRHandler
	dashboardHandler *handler.DashboardHandler
	referenceHandler *handler.ReferenceHandler
	authMiddleware   *middleware.AuthMiddleware
	corsMiddleware   *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.MedicalProfileHandler,
	contactHandler *handler.EmergencyContactHandler,
	emergencyHandler *handler.EmergencyHandler,
	qrHandler *handler.QRHandler,
	dashboardHandler *handler.DashboardHandler,
	referenceHandler *handler.ReferenceHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:           mux.NewRouter(),
		authHandler:      authHandler,
		profileHandler:   profileHandler,
		contactHandler:   contactHandler,
		emergencyHandler: emergencyHandler,
		qrHandler:        qrHandler,
		dashboardHandler: dashboardHandler,
		referenceHandler: referenceHandler,
		authMiddleware:   authMiddleware,
		corsMiddleware:   corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/register/doctor", r.authHandler.RegisterDoctor).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)
	auth.HandleFunc("/hospitals", r.authHandler.GetHospitals).Methods(http.MethodGet)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Emergency disclosure (public, the whole point of the service)
	api.HandleFunc("/emergency/{username}", r.emergencyHandler.Access).Methods(http.MethodGet)
	api.HandleFunc("/qr/generate/{username}", r.qrHandler.Generate).Methods(http.MethodGet)

	// Reference catalogue (public)
	api.HandleFunc("/reference", r.referenceHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/reference/search", r.referenceHandler.Search).Methods(http.MethodGet)
	api.HandleFunc("/reference/seed", r.referenceHandler.Seed).Methods(http.MethodPost)

	// Medical profile routes (protected)
	profiles := api.PathPrefix("/profiles").Subrouter()
	profiles.Use(r.authMiddleware.Authenticate)
	profiles.HandleFunc("", r.profileHandler.Create).Methods(http.MethodPost)
	profiles.HandleFunc("/me", r.profileHandler.Get).Methods(http.MethodGet)
	profiles.HandleFunc("/me", r.profileHandler.Update).Methods(http.MethodPut)

	// Emergency contact routes (protected)
	contacts := api.PathPrefix("/emergency-contacts").Subrouter()
	contacts.Use(r.authMiddleware.Authenticate)
	contacts.HandleFunc("", r.contactHandler.Create).Methods(http.MethodPost)
	contacts.HandleFunc("", r.contactHandler.List).Methods(http.MethodGet)

	// QR routes (protected)
	qr := api.PathPrefix("/qr").Subrouter()
	qr.Use(r.authMiddleware.Authenticate)
	qr.HandleFunc("/my-qr", r.qrHandler.GetMyQR).Methods(http.MethodGet)

	// Dashboard routes (protected)
	dashboard := api.PathPrefix("/dashboard").Subrouter()
	dashboard.Use(r.authMiddleware.Authenticate)
	dashboard.HandleFunc("/profile/{userId}", r.dashboardHandler.GetPatientDashboard).Methods(http.MethodGet)

	// Dashboard routes (doctor only)
	doctorDashboard := api.PathPrefix("/dashboard").Subrouter()
	doctorDashboard.Use(r.authMiddleware.Authenticate)
	doctorDashboard.Use(middleware.RequireAdminOrDoctor)
	doctorDashboard.HandleFunc("/stats", r.dashboardHandler.GetStats).Methods(http.MethodGet)
	doctorDashboard.HandleFunc("/patients", r.dashboardHandler.GetPatients).Methods(http.MethodGet)
	doctorDashboard.HandleFunc("/doctor/{userId}", r.dashboardHandler.GetDoctorDashboard).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
