package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/product-showcase/catalog-api/internal/models"
	"github.com/product-showcase/catalog-api/internal/service"
	"github.com/product-showcase/catalog-api/internal/validation"
)

// AdminHandler handles the whole-document admin routes: bulk fetch, bulk
// replace, and a validate-only probe that never persists.
type AdminHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(service *service.CatalogService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		logger:  logger,
	}
}

// GetData handles GET /api/admin/data
// Returns the whole catalog document verbatim. Unlike the resource routes,
// a corrupt or unreadable backing file is a hard 500 here.
func (h *AdminHandler) GetData(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.GetDocument(r.Context())
	if err != nil {
		h.logger.Error("failed to read catalog document", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, err.Error())
		return
	}

	writeData(w, h.logger, http.StatusOK, data)
}

// SaveData handles PUT /api/admin/data
// Validates the entire incoming document and, on success, overwrites the
// stored document unconditionally. The whole-document validator already
// enforces the dataset-wide invariants, so no per-entity re-check happens.
func (h *AdminHandler) SaveData(w http.ResponseWriter, r *http.Request) {
	raw, candidate, ok := h.decodeDocument(w, r)
	if !ok {
		return
	}

	if result := validation.ValidateProductsData(candidate); !result.Valid {
		writeValidationFailure(w, h.logger, result.Errors)
		return
	}

	var data models.ProductsData
	if err := json.Unmarshal(raw, &data); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.ReplaceDocument(r.Context(), data); err != nil {
		h.logger.Error("failed to save catalog document", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, err.Error())
		return
	}

	writeData(w, h.logger, http.StatusOK, map[string]string{"message": "Data saved successfully"})
}

// ValidateData handles PUT /api/test/validate
// Runs the whole-document validator without touching storage.
func (h *AdminHandler) ValidateData(w http.ResponseWriter, r *http.Request) {
	_, candidate, ok := h.decodeDocument(w, r)
	if !ok {
		return
	}

	if result := validation.ValidateProductsData(candidate); !result.Valid {
		writeValidationFailure(w, h.logger, result.Errors)
		return
	}

	writeData(w, h.logger, http.StatusOK, map[string]any{
		"message":   "Data validated successfully (test mode)",
		"validated": true,
	})
}

// ValidateInfo handles GET /api/test/validate
func (h *AdminHandler) ValidateInfo(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, h.logger, http.StatusOK, apiResponse{
		Message: "Test validation endpoint - use PUT to validate data",
	})
}

// decodeDocument reads the body once and decodes it both as an untyped
// candidate for validation and as raw bytes for a later typed decode.
func (h *AdminHandler) decodeDocument(w http.ResponseWriter, r *http.Request) ([]byte, any, bool) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return nil, nil, false
	}

	var candidate any
	if err := json.Unmarshal(raw, &candidate); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return nil, nil, false
	}

	return raw, candidate, true
}
