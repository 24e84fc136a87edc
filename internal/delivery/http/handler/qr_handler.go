package handler

import (
	"net/http"

	"crisislink/internal/delivery/http/middleware"
	"crisislink/internal/usecase"
	"crisislink/pkg/response"

	"github.com/gorilla/mux"
)

type QRHandler struct {
	qrUsecase usecase.QRUsecase
}

func NewQRHandler(qrUsecase usecase.QRUsecase) *QRHandler {
	return &QRHandler{
		qrUsecase: qrUsecase,
	}
}

// Generate handles public QR generation for a handle
// @Summary Generate QR code
// @Description Generate a QR code image for a patient's emergency page
// @Tags QR
// @Produce json
// @Param username path string true "Patient handle"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /qr/generate/{username} [get]
func (h *QRHandler) Generate(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	qr, err := h.qrUsecase.GenerateForUsername(r.Context(), username)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to generate QR code")
		}
		return
	}

	response.Success(w, http.StatusOK, "QR code generated successfully", qr)
}

// GetMyQR handles fetching the authenticated user's QR code
// @Summary Get my QR code
// @Description Get the QR code for the authenticated user's emergency page
// @Tags QR
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /qr/my-qr [get]
func (h *QRHandler) GetMyQR(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	qr, err := h.qrUsecase.GetMyQR(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to get QR code")
		}
		return
	}

	response.Success(w, http.StatusOK, "QR code retrieved successfully", qr)
}
