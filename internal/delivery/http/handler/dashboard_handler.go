package handler

import (
	"net/http"
	"strconv"

	"crisislink/internal/usecase"
	"crisislink/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
	}
}

// GetStats handles system-wide dashboard statistics
// @Summary Dashboard statistics
// @Description Get access counts, active profile count, and recent alert count
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /dashboard/stats [get]
func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardUsecase.GetStats(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get dashboard statistics")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard statistics retrieved successfully", stats)
}

// GetPatients handles listing patients for the doctor dashboard
// @Summary List patients
// @Description List patients with optional name search
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Param search query string false "Name search"
// @Param limit query int false "Max results"
// @Success 200 {object} response.Response
// @Router /dashboard/patients [get]
func (h *DashboardHandler) GetPatients(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.Error(w, http.StatusBadRequest, "Invalid limit parameter", nil)
			return
		}
		limit = parsed
	}

	patients, err := h.dashboardUsecase.GetPatients(r.Context(), search, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

// GetPatientDashboard handles the patient dashboard view
// @Summary Patient dashboard
// @Description Get dashboard data for a patient
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /dashboard/profile/{userId} [get]
func (h *DashboardHandler) GetPatientDashboard(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(mux.Vars(r)["userId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	dashboard, err := h.dashboardUsecase.GetPatientDashboard(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to get patient dashboard")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient dashboard retrieved successfully", dashboard)
}

// GetDoctorDashboard handles the doctor dashboard view
// @Summary Doctor dashboard
// @Description Get dashboard data for a doctor
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /dashboard/doctor/{userId} [get]
func (h *DashboardHandler) GetDoctorDashboard(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(mux.Vars(r)["userId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	dashboard, err := h.dashboardUsecase.GetDoctorDashboard(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor profile not found")
		default:
			response.InternalServerError(w, "Failed to get doctor dashboard")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor dashboard retrieved successfully", dashboard)
}
