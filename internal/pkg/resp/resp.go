/*
Package resp provides helper functions for constructing and sending HTTP JSON responses.

Successful responses carry the payload as the top-level JSON object; failures carry
an {"error", "code"} object so browser callers can surface the message directly.
*/
package resp

import (
	"encoding/json"
	"net/http"

	"meettoken/internal/pkg/errs"
	"meettoken/internal/pkg/logx"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	// Error is the client-friendly error message.
	Error string `json:"error"`

	// Code is the business error code (see errs package).
	Code int `json:"code"`
}

// RespondJSON is a generic response function used to set the Content-Type and send the JSON payload.
func RespondJSON(w http.ResponseWriter, r *http.Request, httpStatus int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "no-store")

	response, err := json.Marshal(payload)
	if err != nil {
		logx.Ctx(r.Context()).Error().
			Err(err).
			Int("http_status", httpStatus).
			Msg("Error encoding JSON response")

		http.Error(w, "Error encoding JSON response", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(httpStatus)
	_, _ = w.Write(response)
}

// RespondSuccess sends data with HTTP 200 OK.
func RespondSuccess(w http.ResponseWriter, r *http.Request, data any) {
	RespondJSON(w, r, http.StatusOK, data)
}

// RespondError sends an HTTP response containing custom error information.
func RespondError(w http.ResponseWriter, r *http.Request, customErr *errs.CustomError) {
	if customErr == nil {
		customErr = errs.NewError(errs.ErrUnknown)
	}

	RespondJSON(w, r, customErr.Status, ErrorResponse{
		Error: customErr.Message,
		Code:  customErr.Code,
	})
}
