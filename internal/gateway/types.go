package gateway

import (
	"encoding/json"
	"fmt"

	"msa-backend/agreement/model"
)

// UserSession is the identity returned by a successful login.
type UserSession struct {
	ID       string
	Username string
	Role     string
	Cookies  map[string]string
}

// DomainRecord is a company record from the ticket system. Values keep
// their JSON types; numbers decode as json.Number.
type DomainRecord map[string]any

// ID returns the record's internal id, or "" when absent.
func (d DomainRecord) ID() string {
	return stringify(d["id"])
}

// NetworkID returns the record's aribaNetworkId, or "".
func (d DomainRecord) NetworkID() string {
	return stringify(d[model.FieldAribaNetworkID])
}

// FormValues projects the record onto the form fields it can prefill.
// Null values are skipped.
func (d DomainRecord) FormValues() map[string]string {
	out := make(map[string]string, len(model.DomainFields))
	for _, key := range model.DomainFields {
		v, ok := d[key]
		if !ok || v == nil {
			continue
		}
		out[key] = stringify(v)
	}
	return out
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	User map[string]any `json:"user"`
}

type roleResponse struct {
	UserRole string `json:"userRole"`
	ID       any    `json:"id"`
	UserID   any    `json:"userId"`
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// firstID mirrors "a or b or c": the first value that is not empty or zero.
func firstID(values ...any) string {
	for _, v := range values {
		s := stringify(v)
		if s == "" || s == "0" || s == "false" {
			continue
		}
		return s
	}
	return ""
}
