/*
Package req provides helper functions for HTTP request parsing and data binding.

It binds JSON bodies into typed structs, rejecting wrong content types, unknown
fields, trailing data and oversized bodies before any business logic runs.
*/
package req

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"meettoken/internal/pkg/errs"
)

// MaxJSONBodySize is the maximum accepted size of a JSON request body (16 KiB).
const MaxJSONBodySize int64 = 16 << 10

// BindJSON attempts to bind the JSON data from the HTTP request body to the destination struct dst.
func BindJSON(w http.ResponseWriter, r *http.Request, dst any) *errs.CustomError {
	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "application/json") {
		return errs.NewError(errs.ErrUnsupportedMediaType)
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxJSONBodySize)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return errs.NewError(errs.ErrRequestEntityTooLarge)
		}
		if strings.HasPrefix(err.Error(), "json: unknown field") {
			return errs.NewError(errs.ErrInvalidParams)
		}
		return errs.NewError(errs.ErrInvalidJSONFormat)
	}

	if decoder.More() {
		return errs.NewError(errs.ErrExtraContentInBody)
	}

	return nil
}
