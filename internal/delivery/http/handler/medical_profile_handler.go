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

type MedicalProfileHandler struct {
	profileUsecase usecase.MedicalProfileUsecase
	validator      *validator.CustomValidator
}

func NewMedicalProfileHandler(profileUsecase usecase.MedicalProfileUsecase, validator *validator.CustomValidator) *MedicalProfileHandler {
	return &MedicalProfileHandler{
		profileUsecase: profileUsecase,
		validator:      validator,
	}
}

// Create handles medical profile creation
// @Summary Create medical profile
// @Description Create the authenticated user's medical profile
// @Tags Medical Profiles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.MedicalProfileRequest true "Medical Profile Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /profiles [post]
func (h *MedicalProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.MedicalProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profile, err := h.profileUsecase.CreateProfile(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		case usecase.ErrProfileExists:
			response.Error(w, http.StatusConflict, "Medical profile already exists", nil)
		default:
			response.InternalServerError(w, "Failed to create medical profile")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Medical profile created successfully", profile)
}

// Get handles fetching the authenticated user's medical profile
// @Summary Get my medical profile
// @Description Get the authenticated user's decrypted medical profile
// @Tags Medical Profiles
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /profiles/me [get]
func (h *MedicalProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	profile, err := h.profileUsecase.GetProfile(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrProfileNotFound:
			response.NotFound(w, "Medical profile not found")
		default:
			response.InternalServerError(w, "Failed to get medical profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical profile retrieved successfully", profile)
}

// Update handles updating the authenticated user's medical profile
// @Summary Update my medical profile
// @Description Replace the authenticated user's medical profile fields
// @Tags Medical Profiles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.MedicalProfileRequest true "Medical Profile Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /profiles/me [put]
func (h *MedicalProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.MedicalProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profile, err := h.profileUsecase.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrProfileNotFound:
			response.NotFound(w, "Medical profile not found")
		default:
			response.InternalServerError(w, "Failed to update medical profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical profile updated successfully", profile)
}
