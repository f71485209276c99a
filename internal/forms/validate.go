package forms

import (
	"strings"

	"msa-backend/agreement/model"
)

// Getter reads a single submitted value; url.Values satisfies it.
type Getter interface {
	Get(key string) string
}

// Validate checks required fields in order and then the date fields. The
// first problem found is returned as a *ValidationError. On success the
// sanitized required and optional values are returned.
func Validate(values Getter) (model.ContentMapping, error) {
	out := make(model.ContentMapping, len(model.RequiredFields)+len(model.OptionalFields)+1)
	for _, field := range model.RequiredFields {
		raw := strings.TrimSpace(values.Get(field))
		if raw == "" {
			return nil, required(field)
		}
		out[field] = Sanitize(raw)
	}
	for _, field := range model.DateFields {
		if !ValidDate(out[field]) {
			return nil, invalidDate(field)
		}
	}
	for _, field := range model.OptionalFields {
		out[field] = Sanitize(values.Get(field))
	}
	return out, nil
}

// Collect sanitizes every known form field that was submitted, valid or not.
// Used to keep the user's input around when validation fails.
func Collect(values Getter) map[string]string {
	out := make(map[string]string)
	for _, group := range [][]string{model.RequiredFields, model.OptionalFields, {model.FieldAribaNetworkID}} {
		for _, field := range group {
			if v := Sanitize(values.Get(field)); v != "" {
				out[field] = v
			}
		}
	}
	return out
}
