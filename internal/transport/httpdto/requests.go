package httpdto

import "encoding/json"

// LoginRequest is used for POST /v1/auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is returned after a successful login
type LoginResponse struct {
	UserID      string `json:"user_id"`
	Role        string `json:"role"`
	AccessToken string `json:"access_token"`
	ExpiresAt   string `json:"expires_at"`
}

// PropertyRequest is the body of POST /itemtypes/property. Form1 is
// the single-value form layout, Form2 the array layout.
type PropertyRequest struct {
	Name   string          `json:"name"`
	Schema map[string]any  `json:"schema"`
	Form1  json.RawMessage `json:"form1"`
	Form2  json.RawMessage `json:"form2"`
}

// PropertyFields is the per-property payload of the property list and
// detail endpoints.
type PropertyFields struct {
	Name   string          `json:"name"`
	Schema map[string]any  `json:"schema"`
	Form   json.RawMessage `json:"form"`
	Forms  json.RawMessage `json:"forms"`
}

// PropertyDetail is returned by GET /itemtypes/property/:id
type PropertyDetail struct {
	ID     uint            `json:"id"`
	Name   string          `json:"name"`
	Schema map[string]any  `json:"schema"`
	Form   json.RawMessage `json:"form"`
	Forms  json.RawMessage `json:"forms"`
}

// MappingRegisterRequest is the body of POST /itemtypes/mapping. The
// mapping field arrives as a JSON-encoded string and is parsed before
// storage.
type MappingRegisterRequest struct {
	ItemTypeID uint   `json:"item_type_id"`
	Mapping    string `json:"mapping"`
}
