package handler

import (
	"net/http"

	"crisislink/internal/usecase"
	"crisislink/pkg/response"
)

type ReferenceHandler struct {
	referenceUsecase usecase.ReferenceUsecase
}

func NewReferenceHandler(referenceUsecase usecase.ReferenceUsecase) *ReferenceHandler {
	return &ReferenceHandler{
		referenceUsecase: referenceUsecase,
	}
}

// GetAll handles listing the full reference catalogue
// @Summary List reference data
// @Description List allergies, medications, and conditions grouped by category
// @Tags Reference
// @Produce json
// @Success 200 {object} response.Response
// @Router /reference [get]
func (h *ReferenceHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	refs, err := h.referenceUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get reference data")
		return
	}

	response.Success(w, http.StatusOK, "Reference data retrieved successfully", refs)
}

// Search handles autocomplete lookups against the catalogue
// @Summary Search reference data
// @Description Search reference items by name, optionally filtered by category
// @Tags Reference
// @Produce json
// @Param q query string true "Search term"
// @Param category query string false "Category filter"
// @Success 200 {object} response.Response
// @Router /reference/search [get]
func (h *ReferenceHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		response.Error(w, http.StatusBadRequest, "Query parameter q is required", nil)
		return
	}

	category := r.URL.Query().Get("category")

	refs, err := h.referenceUsecase.Search(r.Context(), query, category)
	if err != nil {
		response.InternalServerError(w, "Failed to search reference data")
		return
	}

	response.Success(w, http.StatusOK, "Reference data retrieved successfully", refs)
}

// Seed handles one-time population of the catalogue
// @Summary Seed reference data
// @Description Populate the reference catalogue, no-op when already seeded
// @Tags Reference
// @Produce json
// @Success 200 {object} response.Response
// @Router /reference/seed [post]
func (h *ReferenceHandler) Seed(w http.ResponseWriter, r *http.Request) {
	result, err := h.referenceUsecase.Seed(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to seed reference data")
		return
	}

	response.Success(w, http.StatusOK, result.Message, result)
}
