package handler

import (
	"encoding/json"
	"net/http"

	"crisislink/internal/delivery/dto"
	"crisislink/internal/delivery/http/middleware"
	"crisislink/internal/usecase"
	"crisislink/pkg/response"
	"crisislink/pkg/validator"
)

type EmergencyContactHandler struct {
	contactUsecase usecase.EmergencyContactUsecase
	validator      *validator.CustomValidator
}

func NewEmergencyContactHandler(contactUsecase usecase.EmergencyContactUsecase, validator *validator.CustomValidator) *EmergencyContactHandler {
	return &EmergencyContactHandler{
		contactUsecase: contactUsecase,
		validator:      validator,
	}
}

// Create handles adding an emergency contact
// @Summary Add emergency contact
// @Description Add an emergency contact for the authenticated user
// @Tags Emergency Contacts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateContactRequest true "Create Contact Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /emergency-contacts [post]
func (h *EmergencyContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	contact, err := h.contactUsecase.AddContact(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to add emergency contact")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Emergency contact added successfully", contact)
}

// List handles listing the authenticated user's emergency contacts
// @Summary List emergency contacts
// @Description List emergency contacts ordered by priority
// @Tags Emergency Contacts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /emergency-contacts [get]
func (h *EmergencyContactHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	contacts, err := h.contactUsecase.ListContacts(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list emergency contacts")
		return
	}

	response.Success(w, http.StatusOK, "Emergency contacts retrieved successfully", contacts)
}
