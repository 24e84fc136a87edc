package handler

import (
	"fmt"
	"net/http"

	"crisislink/internal/domain/entity"
	"crisislink/internal/usecase"
	"crisislink/pkg/response"

	"github.com/gorilla/mux"
)

type EmergencyHandler struct {
	emergencyUsecase usecase.EmergencyAccessUsecase
}

func NewEmergencyHandler(emergencyUsecase usecase.EmergencyAccessUsecase) *EmergencyHandler {
	return &EmergencyHandler{
		emergencyUsecase: emergencyUsecase,
	}
}

// Access handles public emergency disclosure by handle
// @Summary Emergency access
// @Description Disclose a patient's emergency medical information by handle, no authentication required
// @Tags Emergency
// @Produce json
// @Param username path string true "Patient handle"
// @Param source query string false "Access source (qr for QR scans)"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /emergency/{username} [get]
func (h *EmergencyHandler) Access(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	username := vars["username"]

	accessType := entity.AccessTypeURL
	if r.URL.Query().Get("source") == "qr" {
		accessType = entity.AccessTypeQRScan
	}

	responderInfo := r.RemoteAddr
	if ua := r.UserAgent(); ua != "" {
		responderInfo = fmt.Sprintf("%s | %s", r.RemoteAddr, ua)
	}

	view, err := h.emergencyUsecase.Disclose(r.Context(), username, responderInfo, accessType)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound, usecase.ErrProfileNotFound:
			response.NotFound(w, "Emergency profile not found")
		default:
			response.InternalServerError(w, "Failed to load emergency profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Emergency profile retrieved successfully", view)
}
