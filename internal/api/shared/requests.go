package shared

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Shared across all request types; the validator caches struct metadata.
var validate = validator.New()

// DecodeJSON parses the request body into dst. Handlers translate a failure
// into a 400 with a generic message so malformed payloads never echo back.
func DecodeJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// ValidateRequest applies the struct's validation tags. A request type can
// take over its own validation by implementing Validate.
func ValidateRequest(v interface{}) error {
	if custom, ok := v.(interface{ Validate() error }); ok {
		return custom.Validate()
	}

	return validate.Struct(v)
}
