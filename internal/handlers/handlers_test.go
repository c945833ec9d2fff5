package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/product-showcase/catalog-api/internal/models"
	"github.com/product-showcase/catalog-api/internal/service"
	"github.com/product-showcase/catalog-api/internal/storage"
	"github.com/product-showcase/catalog-api/pkg/logger"
)

type testEnv struct {
	router *chi.Mux
	store  *storage.FileStore
}

func seedData() models.ProductsData {
	return models.ProductsData{
		Categories: []models.Category{
			{
				ID:          "audio",
				Name:        "Audio",
				Description: "Headphones and speakers",
				Products: []models.Product{
					{ID: "buds", Name: "Buds", Description: "Wireless earbuds", Image: "/images/buds.png", Features: []string{"ANC"}},
				},
			},
			{
				ID:          "video",
				Name:        "Video",
				Description: "Cameras and drones",
				Products:    []models.Product{},
			},
		},
	}
}

// newTestEnv stands up the full handler stack against a seeded temp store,
// with the same route tree the server wires up.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := storage.NewFileStore(filepath.Join(t.TempDir(), "products.json"))
	require.NoError(t, store.Write(seedData()))

	catalog := service.NewCatalogService(store)
	log := logger.New("error")

	categoryHandler := NewCategoryHandler(catalog, log)
	productHandler := NewProductHandler(catalog, log)
	adminHandler := NewAdminHandler(catalog, log)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", categoryHandler.ListCategories)
			r.Post("/", categoryHandler.CreateCategory)
			r.Route("/{categoryId}", func(r chi.Router) {
				r.Get("/", categoryHandler.GetCategory)
				r.Put("/", categoryHandler.UpdateCategory)
				r.Delete("/", categoryHandler.DeleteCategory)
				r.Route("/products", func(r chi.Router) {
					r.Post("/", productHandler.CreateProduct)
					r.Route("/{productId}", func(r chi.Router) {
						r.Get("/", productHandler.GetProduct)
						r.Put("/", productHandler.UpdateProduct)
						r.Delete("/", productHandler.DeleteProduct)
					})
				})
			})
		})
		r.Route("/admin/data", func(r chi.Router) {
			r.Get("/", adminHandler.GetData)
			r.Put("/", adminHandler.SaveData)
		})
		r.Route("/test/validate", func(r chi.Router) {
			r.Get("/", adminHandler.ValidateInfo)
			r.Put("/", adminHandler.ValidateData)
		})
	})

	return &testEnv{router: r, store: store}
}

// do sends a request through the router. A non-nil body is JSON-encoded,
// a raw string body is sent verbatim.
func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// document reads the current on-disk state.
func (e *testEnv) document(t *testing.T) models.ProductsData {
	t.Helper()
	data, err := e.store.Read()
	require.NoError(t, err)
	return data
}

// decode unmarshals a recorded response body.
func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) map[string]any {
	t.Helper()
	require.Equal(t, want, w.Code, "body: %s", w.Body.String())
	resp := decode(t, w)
	require.NotEmpty(t, resp["timestamp"], "every response carries a timestamp")
	return resp
}

