package service

import (
	"context"
	"errors"

	"github.com/product-showcase/catalog-api/internal/models"
	"github.com/product-showcase/catalog-api/internal/storage"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryExists   = errors.New("category already exists")
	ErrProductExists    = errors.New("product already exists")
)

// CatalogService implements the catalog's create/read/update/delete rules on
// top of the document store: locate by exact ID, enforce uniqueness
// (dataset-wide for categories, category-scoped for products), mutate the
// in-memory document, write it back as one unit.
type CatalogService struct {
	store storage.Store
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(store storage.Store) *CatalogService {
	return &CatalogService{store: store}
}

// ListCategories returns every category. Read failures fall back to the
// empty dataset, so listing never fails.
func (s *CatalogService) ListCategories(ctx context.Context) []models.Category {
	return s.store.ReadOrEmpty().Categories
}

// GetCategory returns the category with the given ID.
func (s *CatalogService) GetCategory(ctx context.Context, categoryID string) (*models.Category, error) {
	data := s.store.ReadOrEmpty()
	idx := data.FindCategory(categoryID)
	if idx == -1 {
		return nil, ErrCategoryNotFound
	}
	return &data.Categories[idx], nil
}

// CreateCategory appends a new category. The ID must be unique across the
// whole dataset.
func (s *CatalogService) CreateCategory(ctx context.Context, category models.Category) error {
	return s.store.Update(func(data *models.ProductsData) error {
		if data.FindCategory(category.ID) != -1 {
			return ErrCategoryExists
		}
		data.Categories = append(data.Categories, category)
		return nil
	})
}

// UpdateCategory replaces an existing category wholesale, products included.
func (s *CatalogService) UpdateCategory(ctx context.Context, category models.Category) error {
	return s.store.Update(func(data *models.ProductsData) error {
		idx := data.FindCategory(category.ID)
		if idx == -1 {
			return ErrCategoryNotFound
		}
		data.Categories[idx] = category
		return nil
	})
}

// DeleteCategory removes a category and returns the removed entity.
func (s *CatalogService) DeleteCategory(ctx context.Context, categoryID string) (*models.Category, error) {
	var deleted models.Category
	err := s.store.Update(func(data *models.ProductsData) error {
		idx := data.FindCategory(categoryID)
		if idx == -1 {
			return ErrCategoryNotFound
		}
		deleted = data.Categories[idx]
		data.Categories = append(data.Categories[:idx], data.Categories[idx+1:]...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}

// GetProduct returns a product from within its parent category.
func (s *CatalogService) GetProduct(ctx context.Context, categoryID, productID string) (*models.Product, error) {
	data := s.store.ReadOrEmpty()
	catIdx := data.FindCategory(categoryID)
	if catIdx == -1 {
		return nil, ErrCategoryNotFound
	}
	prodIdx := data.Categories[catIdx].FindProduct(productID)
	if prodIdx == -1 {
		return nil, ErrProductNotFound
	}
	return &data.Categories[catIdx].Products[prodIdx], nil
}

// CreateProduct appends a product to its parent category. The ID must be
// unique within that category only.
func (s *CatalogService) CreateProduct(ctx context.Context, categoryID string, product models.Product) error {
	return s.store.Update(func(data *models.ProductsData) error {
		catIdx := data.FindCategory(categoryID)
		if catIdx == -1 {
			return ErrCategoryNotFound
		}
		if data.Categories[catIdx].FindProduct(product.ID) != -1 {
			return ErrProductExists
		}
		data.Categories[catIdx].Products = append(data.Categories[catIdx].Products, product)
		return nil
	})
}

// UpdateProduct replaces an existing product in its parent category.
func (s *CatalogService) UpdateProduct(ctx context.Context, categoryID string, product models.Product) error {
	return s.store.Update(func(data *models.ProductsData) error {
		catIdx := data.FindCategory(categoryID)
		if catIdx == -1 {
			return ErrCategoryNotFound
		}
		prodIdx := data.Categories[catIdx].FindProduct(product.ID)
		if prodIdx == -1 {
			return ErrProductNotFound
		}
		data.Categories[catIdx].Products[prodIdx] = product
		return nil
	})
}

// DeleteProduct removes a product from its parent category and returns the
// removed entity.
func (s *CatalogService) DeleteProduct(ctx context.Context, categoryID, productID string) (*models.Product, error) {
	var deleted models.Product
	err := s.store.Update(func(data *models.ProductsData) error {
		catIdx := data.FindCategory(categoryID)
		if catIdx == -1 {
			return ErrCategoryNotFound
		}
		prodIdx := data.Categories[catIdx].FindProduct(productID)
		if prodIdx == -1 {
			return ErrProductNotFound
		}
		deleted = data.Categories[catIdx].Products[prodIdx]
		data.Categories[catIdx].Products = append(
			data.Categories[catIdx].Products[:prodIdx],
			data.Categories[catIdx].Products[prodIdx+1:]...,
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}

// GetDocument returns the whole catalog document. Unlike the resource-scoped
// reads this is strict: a corrupt or unreadable file is an error.
func (s *CatalogService) GetDocument(ctx context.Context) (models.ProductsData, error) {
	return s.store.Read()
}

// ReplaceDocument overwrites the whole catalog document unconditionally. The
// caller is expected to have validated it first.
func (s *CatalogService) ReplaceDocument(ctx context.Context, data models.ProductsData) error {
	return s.store.Write(data)
}
