package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/product-showcase/catalog-api/internal/models"
)

// ErrorCode classifies a single validation violation.
type ErrorCode string

const (
	CodeRequired      ErrorCode = "REQUIRED"
	CodeMaxLength     ErrorCode = "MAX_LENGTH"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeInvalidType   ErrorCode = "INVALID_TYPE"
	CodeDuplicate     ErrorCode = "DUPLICATE"
)

// FieldError is one violation found on one field.
type FieldError struct {
	Field   string    `json:"field"`
	Message string    `json:"message"`
	Code    ErrorCode `json:"code"`
}

// Result is the outcome of validating one candidate. Validators are total:
// they never panic and never stop at the first violation.
type Result struct {
	Valid  bool
	Errors []FieldError
}

func newResult(errs []FieldError) Result {
	return Result{Valid: len(errs) == 0, Errors: errs}
}

// requiredString checks presence, type, emptiness, and max length of a
// required string field. A failed REQUIRED check suppresses the MAX_LENGTH
// check for the same field; other fields still get validated.
func requiredString(body models.Candidate, key, field string, maxLength int) []FieldError {
	v, ok := body[key]
	if !ok || v == nil {
		return []FieldError{{
			Field:   field,
			Message: fmt.Sprintf("%s is required", field),
			Code:    CodeRequired,
		}}
	}
	s, isString := v.(string)
	if !isString {
		return []FieldError{{
			Field:   field,
			Message: fmt.Sprintf("%s must be a string", field),
			Code:    CodeInvalidType,
		}}
	}
	if strings.TrimSpace(s) == "" {
		return []FieldError{{
			Field:   field,
			Message: fmt.Sprintf("%s is required", field),
			Code:    CodeRequired,
		}}
	}
	if utf8.RuneCountInString(s) > maxLength {
		return []FieldError{{
			Field:   field,
			Message: fmt.Sprintf("%s must be %d characters or less", field, maxLength),
			Code:    CodeMaxLength,
		}}
	}
	return nil
}

// idFormat checks the ID pattern on the raw value. Absent, empty, or
// non-string IDs are skipped here; requiredString already covers those.
func idFormat(body models.Candidate, key, field string) []FieldError {
	id, _ := body[key].(string)
	if id == "" || IDPattern.MatchString(id) {
		return nil
	}
	return []FieldError{{
		Field:   field,
		Message: fmt.Sprintf("%s can only contain lowercase letters, numbers, underscores, and dashes", field),
		Code:    CodeInvalidFormat,
	}}
}

// ValidateCategory computes every violation on a category candidate.
func ValidateCategory(category models.Candidate) Result {
	var errs []FieldError

	errs = append(errs, requiredString(category, "id", "category-id", CategoryIDLimit)...)
	errs = append(errs, idFormat(category, "id", "category-id")...)
	errs = append(errs, requiredString(category, "name", "category-name", CategoryNameLimit)...)
	errs = append(errs, requiredString(category, "description", "category-description", CategoryDescriptionLimit)...)

	if v, ok := category["products"]; ok {
		if _, isArray := v.([]any); !isArray {
			errs = append(errs, FieldError{
				Field:   "products",
				Message: "Products must be an array",
				Code:    CodeInvalidType,
			})
		}
	}

	return newResult(errs)
}

// ValidateProduct computes every violation on a product candidate.
func ValidateProduct(product models.Candidate) Result {
	var errs []FieldError

	errs = append(errs, requiredString(product, "id", "product-id", ProductIDLimit)...)
	errs = append(errs, idFormat(product, "id", "product-id")...)
	errs = append(errs, requiredString(product, "name", "product-name", ProductNameLimit)...)
	errs = append(errs, requiredString(product, "description", "product-description", ProductDescriptionLimit)...)

	if v, ok := product["image"]; ok {
		if _, isString := v.(string); !isString {
			errs = append(errs, FieldError{
				Field:   "image",
				Message: "Image path must be a string",
				Code:    CodeInvalidType,
			})
		}
	}

	if v, ok := product["features"]; ok {
		errs = append(errs, validateFeatures(v)...)
	}

	return newResult(errs)
}

func validateFeatures(v any) []FieldError {
	features, isArray := v.([]any)
	if !isArray {
		return []FieldError{{
			Field:   "features",
			Message: "Features must be an array",
			Code:    CodeInvalidType,
		}}
	}

	var errs []FieldError

	// Total length of the features text as it would render, one per line.
	total := 0
	for i, feature := range features {
		if s, ok := feature.(string); ok {
			total += utf8.RuneCountInString(s)
		}
		if i > 0 {
			total++
		}
	}
	if total > ProductFeaturesLimit {
		errs = append(errs, FieldError{
			Field:   "features",
			Message: fmt.Sprintf("Features text must be %d characters or less", ProductFeaturesLimit),
			Code:    CodeMaxLength,
		})
	}

	for i, feature := range features {
		s, isString := feature.(string)
		if !isString {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("features[%d]", i),
				Message: fmt.Sprintf("Feature %d must be a string", i+1),
				Code:    CodeInvalidType,
			})
		} else if strings.TrimSpace(s) == "" {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("features[%d]", i),
				Message: fmt.Sprintf("Feature %d cannot be empty", i+1),
				Code:    CodeRequired,
			})
		}
	}

	return errs
}

// ValidateProductsData validates a whole-document candidate: structural
// checks on the root, per-entity checks with index-prefixed field paths, and
// duplicate-ID detection (dataset-wide for categories, per-category for
// products; only the second and later occurrences are flagged).
func ValidateProductsData(data any) Result {
	var root models.Candidate
	switch v := data.(type) {
	case models.Candidate:
		root = v
	case []any:
		// An array is object-shaped enough to reach the categories check.
		root = models.Candidate{}
	default:
		return newResult([]FieldError{{
			Field:   "data",
			Message: "Data must be an object",
			Code:    CodeInvalidType,
		}})
	}

	categories, isArray := root["categories"].([]any)
	if !isArray {
		return newResult([]FieldError{{
			Field:   "categories",
			Message: "Categories array is required",
			Code:    CodeRequired,
		}})
	}

	var errs []FieldError
	categoryIDs := map[string]bool{}

	for i, rawCategory := range categories {
		category, _ := rawCategory.(models.Candidate)
		if category == nil {
			category = models.Candidate{}
		}

		for _, err := range ValidateCategory(category).Errors {
			err.Field = fmt.Sprintf("categories[%d].%s", i, err.Field)
			errs = append(errs, err)
		}

		if id, _ := category["id"].(string); id != "" {
			if categoryIDs[id] {
				errs = append(errs, FieldError{
					Field:   fmt.Sprintf("categories[%d].id", i),
					Message: fmt.Sprintf("Duplicate category ID: %s", id),
					Code:    CodeDuplicate,
				})
			} else {
				categoryIDs[id] = true
			}
		}

		products, isArray := category["products"].([]any)
		if !isArray {
			continue
		}
		productIDs := map[string]bool{}
		for j, rawProduct := range products {
			product, _ := rawProduct.(models.Candidate)
			if product == nil {
				product = models.Candidate{}
			}

			for _, err := range ValidateProduct(product).Errors {
				err.Field = fmt.Sprintf("categories[%d].products[%d].%s", i, j, err.Field)
				errs = append(errs, err)
			}

			if id, _ := product["id"].(string); id != "" {
				if productIDs[id] {
					errs = append(errs, FieldError{
						Field:   fmt.Sprintf("categories[%d].products[%d].id", i, j),
						Message: fmt.Sprintf("Duplicate product ID in category: %s", id),
						Code:    CodeDuplicate,
					})
				} else {
					productIDs[id] = true
				}
			}
		}
	}

	return newResult(errs)
}
