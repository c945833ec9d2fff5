package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryFromCandidate(t *testing.T) {
	body := Candidate{
		"id":          "ignored-by-builder",
		"name":        "Audio",
		"description": "Headphones",
		"products": []any{
			Candidate{"id": "buds", "name": "Buds", "description": "Earbuds", "image": "/i.png", "features": []any{"ANC"}},
		},
	}

	category := CategoryFromCandidate("audio", body)
	assert.Equal(t, "audio", category.ID)
	assert.Equal(t, "Audio", category.Name)
	require.Len(t, category.Products, 1)
	assert.Equal(t, Product{ID: "buds", Name: "Buds", Description: "Earbuds", Image: "/i.png", Features: []string{"ANC"}}, category.Products[0])
}

func TestCategoryFromCandidate_Defaults(t *testing.T) {
	category := CategoryFromCandidate("bare", Candidate{"name": "Bare", "description": "d"})
	require.NotNil(t, category.Products)
	assert.Empty(t, category.Products)
}

func TestProductFromCandidate_Defaults(t *testing.T) {
	product := ProductFromCandidate("bare", Candidate{"name": "Bare", "description": "d"})
	assert.Equal(t, "", product.Image)
	require.NotNil(t, product.Features)
	assert.Empty(t, product.Features)
}

func TestCandidateID(t *testing.T) {
	assert.Equal(t, "x", CandidateID(Candidate{"id": "x"}))
	assert.Equal(t, "", CandidateID(Candidate{}))
	assert.Equal(t, "", CandidateID(Candidate{"id": 7.0}))
}

func TestProductsData_MarshalAlwaysHasCategories(t *testing.T) {
	var data ProductsData
	data.Normalize()

	raw, err := json.Marshal(data)
	require.NoError(t, err)
	assert.JSONEq(t, `{"categories":[]}`, string(raw))
}

func TestFindHelpers(t *testing.T) {
	data := ProductsData{Categories: []Category{
		{ID: "a", Products: []Product{{ID: "p1"}, {ID: "p2"}}},
		{ID: "b"},
	}}

	assert.Equal(t, 1, data.FindCategory("b"))
	assert.Equal(t, -1, data.FindCategory("c"))
	assert.Equal(t, 1, data.Categories[0].FindProduct("p2"))
	assert.Equal(t, -1, data.Categories[0].FindProduct("p3"))
}
