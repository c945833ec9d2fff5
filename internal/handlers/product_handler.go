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

// ProductHandler handles the product routes nested under a category.
type ProductHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service *service.CatalogService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// CreateProduct handles POST /api/categories/{categoryId}/products
// - 201: created
// - 400: validation failure
// - 404: parent category missing (storage untouched)
// - 409: duplicate product ID within the category
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryId")

	var body models.Candidate
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if result := validation.ValidateProduct(body); !result.Valid {
		writeValidationFailure(w, h.logger, result.Errors)
		return
	}

	product := models.ProductFromCandidate(models.CandidateID(body), body)

	if err := h.service.CreateProduct(r.Context(), categoryID, product); err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryNotFound):
			writeErrorMessage(w, h.logger, http.StatusNotFound, "Category not found",
				fmt.Sprintf("No category found with ID '%s'", categoryID))
		case errors.Is(err, service.ErrProductExists):
			writeErrorMessage(w, h.logger, http.StatusConflict, "Product already exists",
				fmt.Sprintf("A product with ID '%s' already exists in this category", product.ID))
		default:
			h.logger.Error("failed to create product", "categoryId", categoryID, "productId", product.ID, "error", err)
			writeError(w, h.logger, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeDataMessage(w, h.logger, http.StatusCreated, product, "Product created successfully")
}

// GetProduct handles GET /api/categories/{categoryId}/products/{productId}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryId")
	productID := chi.URLParam(r, "productId")

	product, err := h.service.GetProduct(r.Context(), categoryID, productID)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			writeError(w, h.logger, http.StatusNotFound, "Category not found")
			return
		}
		writeError(w, h.logger, http.StatusNotFound, "Product not found")
		return
	}

	writeData(w, h.logger, http.StatusOK, product)
}

// UpdateProduct handles PUT /api/categories/{categoryId}/products/{productId}
// - 200: updated
// - 400: validation failure or body/path ID mismatch
// - 404: category or product missing
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryId")
	productID := chi.URLParam(r, "productId")

	var body models.Candidate
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if result := validation.ValidateProduct(body); !result.Valid {
		writeValidationFailure(w, h.logger, result.Errors)
		return
	}

	if bodyID := models.CandidateID(body); bodyID != "" && bodyID != productID {
		writeErrorMessage(w, h.logger, http.StatusBadRequest, "ID mismatch",
			"Product ID in request body must match the URL parameter")
		return
	}

	product := models.ProductFromCandidate(productID, body)

	if err := h.service.UpdateProduct(r.Context(), categoryID, product); err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryNotFound):
			writeErrorMessage(w, h.logger, http.StatusNotFound, "Category not found",
				fmt.Sprintf("No category found with ID '%s'", categoryID))
		case errors.Is(err, service.ErrProductNotFound):
			writeErrorMessage(w, h.logger, http.StatusNotFound, "Product not found",
				fmt.Sprintf("No product found with ID '%s' in category '%s'", productID, categoryID))
		default:
			h.logger.Error("failed to update product", "categoryId", categoryID, "productId", productID, "error", err)
			writeError(w, h.logger, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeDataMessage(w, h.logger, http.StatusOK, product, "Product updated successfully")
}

// DeleteProduct handles DELETE /api/categories/{categoryId}/products/{productId}
// Responds with the removed product.
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryId")
	productID := chi.URLParam(r, "productId")

	deleted, err := h.service.DeleteProduct(r.Context(), categoryID, productID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryNotFound):
			writeErrorMessage(w, h.logger, http.StatusNotFound, "Category not found",
				fmt.Sprintf("No category found with ID '%s'", categoryID))
		case errors.Is(err, service.ErrProductNotFound):
			writeErrorMessage(w, h.logger, http.StatusNotFound, "Product not found",
				fmt.Sprintf("No product found with ID '%s' in category '%s'", productID, categoryID))
		default:
			h.logger.Error("failed to delete product", "categoryId", categoryID, "productId", productID, "error", err)
			writeError(w, h.logger, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeDataMessage(w, h.logger, http.StatusOK, deleted, "Product deleted successfully")
}
