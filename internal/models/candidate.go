package models

// Candidate is an untyped payload, decoded straight from a request body,
// that claims to be a category or product. It is reinterpreted into a typed
// entity only after validation has accepted it.
type Candidate = map[string]any

// CategoryFromCandidate builds a Category from a validated candidate. The ID
// is supplied by the caller so create and update paths can take it from the
// body or the URL respectively. Missing optional fields get their defaults.
func CategoryFromCandidate(id string, body Candidate) Category {
	return Category{
		ID:          id,
		Name:        stringField(body, "name"),
		Description: stringField(body, "description"),
		Products:    productsFromCandidate(body["products"]),
	}
}

// ProductFromCandidate builds a Product from a validated candidate.
func ProductFromCandidate(id string, body Candidate) Product {
	return Product{
		ID:          id,
		Name:        stringField(body, "name"),
		Description: stringField(body, "description"),
		Image:       stringField(body, "image"),
		Features:    featuresFromCandidate(body["features"]),
	}
}

// CandidateID extracts the string ID from a candidate; empty when absent or
// not a string.
func CandidateID(body Candidate) string {
	return stringField(body, "id")
}

func stringField(body Candidate, key string) string {
	s, _ := body[key].(string)
	return s
}

func productsFromCandidate(v any) []Product {
	raw, ok := v.([]any)
	if !ok {
		return []Product{}
	}
	products := make([]Product, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(Candidate)
		if !ok {
			continue
		}
		products = append(products, ProductFromCandidate(stringField(m, "id"), m))
	}
	return products
}

func featuresFromCandidate(v any) []string {
	raw, ok := v.([]any)
	if !ok {
		return []string{}
	}
	features := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			features = append(features, s)
		}
	}
	return features
}
