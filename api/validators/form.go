package validators

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/saracafe/saracafe-backend/pkg/errors"
)

// FormString returns the named multipart form value, trimmed. Missing fields
// come back as empty strings.
func FormString(r *http.Request, name string) string {
	return strings.TrimSpace(r.FormValue(name))
}

// FormStringPtr returns nil when the named field is absent from the form,
// distinguishing "not sent" from "sent empty".
func FormStringPtr(r *http.Request, name string) *string {
	if r.Form == nil || !r.Form.Has(name) {
		return nil
	}
	value := strings.TrimSpace(r.FormValue(name))
	return &value
}

// FormBoolPtr parses an optional boolean field.
func FormBoolPtr(r *http.Request, name string) (*bool, error) {
	raw := FormStringPtr(r, name)
	if raw == nil || *raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseBool(*raw)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, name+" must be a boolean")
	}
	return &value, nil
}

// FormInt64 parses a required integer field.
func FormInt64(r *http.Request, name string) (int64, error) {
	raw := FormString(r, name)
	if raw == "" {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, name+" is required")
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, name+" must be an integer")
	}
	return value, nil
}

// FormInt64Ptr parses an optional integer field.
func FormInt64Ptr(r *http.Request, name string) (*int64, error) {
	raw := FormStringPtr(r, name)
	if raw == nil || *raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseInt(*raw, 10, 64)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, name+" must be an integer")
	}
	return &value, nil
}

// FormDecimalPtr parses an optional decimal field such as a price.
func FormDecimalPtr(r *http.Request, name string) (*decimal.Decimal, error) {
	raw := FormStringPtr(r, name)
	if raw == nil || *raw == "" {
		return nil, nil
	}
	value, err := decimal.NewFromString(*raw)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, name+" must be a decimal number")
	}
	return &value, nil
}

// PathID parses a positive integer path parameter.
func PathID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "id must be a positive integer")
	}
	return id, nil
}
