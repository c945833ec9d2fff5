package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-chi/chi/v5"

	"github.com/product-showcase/catalog-api/internal/service"
	"github.com/product-showcase/catalog-api/internal/storage"
	"github.com/product-showcase/catalog-api/pkg/logger"
)

func validDocument() map[string]any {
	return map[string]any{
		"categories": []any{
			map[string]any{
				"id":          "replaced",
				"name":        "Replaced",
				"description": "Whole document replacement",
				"products": []any{
					map[string]any{
						"id":          "only",
						"name":        "Only Product",
						"description": "The one product",
						"image":       "",
						"features":    []any{"Single"},
					},
				},
			},
		},
	}
}

func TestGetData(t *testing.T) {
	env := newTestEnv(t)

	resp := requireStatus(t, env.do(t, http.MethodGet, "/api/admin/data", nil), http.StatusOK)
	data, ok := resp["data"].(map[string]any)
	require.True(t, ok)

	categories, ok := data["categories"].([]any)
	require.True(t, ok)
	assert.Len(t, categories, 2)
}

func TestGetData_CorruptFileIsHardError(t *testing.T) {
	// The bulk fetch surfaces read failures instead of falling back to the
	// empty dataset like the resource routes do.
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	store := storage.NewFileStore(path)
	adminHandler := NewAdminHandler(service.NewCatalogService(store), logger.New("error"))

	r := chi.NewRouter()
	r.Get("/api/admin/data", adminHandler.GetData)

	env := &testEnv{router: r, store: store}
	resp := requireStatus(t, env.do(t, http.MethodGet, "/api/admin/data", nil), http.StatusInternalServerError)
	assert.Contains(t, resp["error"], "failed to parse products data")
}

func TestSaveData(t *testing.T) {
	env := newTestEnv(t)

	resp := requireStatus(t, env.do(t, http.MethodPut, "/api/admin/data", validDocument()), http.StatusOK)
	data, ok := resp["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Data saved successfully", data["message"])

	doc := env.document(t)
	require.Len(t, doc.Categories, 1)
	assert.Equal(t, "replaced", doc.Categories[0].ID)
	require.Len(t, doc.Categories[0].Products, 1)
	assert.Equal(t, "only", doc.Categories[0].Products[0].ID)
}

func TestSaveData_ValidationFailure(t *testing.T) {
	env := newTestEnv(t)

	document := map[string]any{
		"categories": []any{
			map[string]any{"id": "dup", "name": "A", "description": "a"},
			map[string]any{"id": "dup", "name": "B", "description": "b"},
		},
	}
	resp := requireStatus(t, env.do(t, http.MethodPut, "/api/admin/data", document), http.StatusBadRequest)
	assert.Equal(t, "Validation failed", resp["error"])

	details := resp["details"].(map[string]any)
	grouped := details["errors"].(map[string]any)
	assert.Contains(t, grouped, "categories[1].id")

	// Document untouched.
	assert.Equal(t, seedData(), env.document(t))
}

func TestSaveData_MissingCategories(t *testing.T) {
	env := newTestEnv(t)

	resp := requireStatus(t, env.do(t, http.MethodPut, "/api/admin/data", map[string]any{}), http.StatusBadRequest)
	details := resp["details"].(map[string]any)
	grouped := details["errors"].(map[string]any)
	assert.Contains(t, grouped, "categories")
}

func TestValidateData_DoesNotPersist(t *testing.T) {
	env := newTestEnv(t)

	resp := requireStatus(t, env.do(t, http.MethodPut, "/api/test/validate", validDocument()), http.StatusOK)
	data, ok := resp["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Data validated successfully (test mode)", data["message"])
	assert.Equal(t, true, data["validated"])

	// Validation only: the stored document is unchanged.
	assert.Equal(t, seedData(), env.document(t))
}

func TestValidateData_Invalid(t *testing.T) {
	env := newTestEnv(t)

	resp := requireStatus(t, env.do(t, http.MethodPut, "/api/test/validate", map[string]any{"categories": "x"}), http.StatusBadRequest)
	assert.Equal(t, "Validation failed", resp["error"])
}

func TestValidateInfo(t *testing.T) {
	env := newTestEnv(t)

	resp := requireStatus(t, env.do(t, http.MethodGet, "/api/test/validate", nil), http.StatusOK)
	assert.Equal(t, "Test validation endpoint - use PUT to validate data", resp["message"])
}

func TestSaveData_RoundTrip(t *testing.T) {
	env := newTestEnv(t)

	requireStatus(t, env.do(t, http.MethodPut, "/api/admin/data", validDocument()), http.StatusOK)

	resp := requireStatus(t, env.do(t, http.MethodGet, "/api/admin/data", nil), http.StatusOK)
	data := resp["data"].(map[string]any)
	assert.Equal(t, validDocument(), data)
}
