package validation

import (
	"bytes"
	"encoding/json"
)

// ErrorDetail is one violation stripped of its field name, as presented
// inside a field group.
type ErrorDetail struct {
	Message string    `json:"message"`
	Code    ErrorCode `json:"code"`
}

// FormattedErrors is the client-facing shape of a failed validation:
// violations grouped by field, keeping encounter order within each group and
// group-creation order overall.
type FormattedErrors struct {
	Message string
	Fields  []string
	ByField map[string][]ErrorDetail
}

// FormatErrors groups a flat error list by field.
func FormatErrors(errs []FieldError) FormattedErrors {
	formatted := FormattedErrors{
		Message: "Validation failed",
		Fields:  []string{},
		ByField: map[string][]ErrorDetail{},
	}
	for _, err := range errs {
		if _, seen := formatted.ByField[err.Field]; !seen {
			formatted.Fields = append(formatted.Fields, err.Field)
		}
		formatted.ByField[err.Field] = append(formatted.ByField[err.Field], ErrorDetail{
			Message: err.Message,
			Code:    err.Code,
		})
	}
	return formatted
}

// MarshalJSON writes the errors object with fields in group-creation order,
// which a plain Go map would not preserve.
func (f FormattedErrors) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"message":`)

	message, err := json.Marshal(f.Message)
	if err != nil {
		return nil, err
	}
	buf.Write(message)

	buf.WriteString(`,"errors":{`)
	for i, field := range f.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(field)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		details, err := json.Marshal(f.ByField[field])
		if err != nil {
			return nil, err
		}
		buf.Write(details)
	}
	buf.WriteString("}}")

	return buf.Bytes(), nil
}
