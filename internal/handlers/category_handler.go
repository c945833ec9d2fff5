package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/product-showcase/catalog-api/internal/models"
	"github.com/product-showcase/catalog-api/internal/service"
	"github.com/product-showcase/catalog-api/internal/validation"
)

// CategoryHandler handles the category collection and item routes.
type CategoryHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(service *service.CatalogService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		logger:  logger,
	}
}

// ListCategories handles GET /api/categories
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories := h.service.ListCategories(r.Context())
	writeData(w, h.logger, http.StatusOK, categories)
}

// CreateCategory handles POST /api/categories
// - 201: created
// - 400: validation failure
// - 409: duplicate category ID
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var body models.Candidate
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if result := validation.ValidateCategory(body); !result.Valid {
		writeValidationFailure(w, h.logger, result.Errors)
		return
	}

	category := models.CategoryFromCandidate(models.CandidateID(body), body)

	if err := h.service.CreateCategory(r.Context(), category); err != nil {
		if errors.Is(err, service.ErrCategoryExists) {
			writeErrorMessage(w, h.logger, http.StatusConflict, "Category already exists",
				fmt.Sprintf("A category with ID '%s' already exists", category.ID))
			return
		}
		h.logger.Error("failed to create category", "categoryId", category.ID, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, err.Error())
		return
	}

	writeDataMessage(w, h.logger, http.StatusCreated, category, "Category created successfully")
}

// GetCategory handles GET /api/categories/{categoryId}
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryId")

	category, err := h.service.GetCategory(r.Context(), categoryID)
	if err != nil {
		writeError(w, h.logger, http.StatusNotFound, "Category not found")
		return
	}

	writeData(w, h.logger, http.StatusOK, category)
}

// UpdateCategory handles PUT /api/categories/{categoryId}
// - 200: updated
// - 400: validation failure or body/path ID mismatch
// - 404: no such category (updates never implicitly create)
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryId")

	var body models.Candidate
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if result := validation.ValidateCategory(body); !result.Valid {
		writeValidationFailure(w, h.logger, result.Errors)
		return
	}

	if bodyID := models.CandidateID(body); bodyID != "" && bodyID != categoryID {
		writeErrorMessage(w, h.logger, http.StatusBadRequest, "ID mismatch",
			"Category ID in request body must match the URL parameter")
		return
	}

	category := models.CategoryFromCandidate(categoryID, body)

	if err := h.service.UpdateCategory(r.Context(), category); err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			writeErrorMessage(w, h.logger, http.StatusNotFound, "Category not found",
				fmt.Sprintf("No category found with ID '%s'", categoryID))
			return
		}
		h.logger.Error("failed to update category", "categoryId", categoryID, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, err.Error())
		return
	}

	writeDataMessage(w, h.logger, http.StatusOK, category, "Category updated successfully")
}

// DeleteCategory handles DELETE /api/categories/{categoryId}
// Responds with the removed category.
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryId")

	deleted, err := h.service.DeleteCategory(r.Context(), categoryID)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			writeErrorMessage(w, h.logger, http.StatusNotFound, "Category not found",
				fmt.Sprintf("No category found with ID '%s'", categoryID))
			return
		}
		h.logger.Error("failed to delete category", "categoryId", categoryID, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, err.Error())
		return
	}

	writeDataMessage(w, h.logger, http.StatusOK, deleted, "Category deleted successfully")
}
