/*
Package errs provides custom error types and application-level error code constants.

This file defines the map from error codes to the CustomError struct, used to standardize
HTTP responses and internal error handling.
*/
package errs

import "net/http"

// errorMap stores the detailed CustomError struct corresponding to every application error code.
// Entries without an explicit Status respond with 400 Bad Request.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:         {Code: ErrInvalidParams, Message: "Invalid request parameters."},
	ErrUnsupportedMediaType:  {Code: ErrUnsupportedMediaType, Message: "Unsupported request format.", Status: http.StatusUnsupportedMediaType},
	ErrInvalidJSONFormat:     {Code: ErrInvalidJSONFormat, Message: "Malformed JSON body."},
	ErrExtraContentInBody:    {Code: ErrExtraContentInBody, Message: "Request contains unexpected data."},
	ErrRequestEntityTooLarge: {Code: ErrRequestEntityTooLarge, Message: "Request size is too large.", Status: http.StatusRequestEntityTooLarge},
	ErrRateLimitExceeded:     {Code: ErrRateLimitExceeded, Message: "Too many requests. Please try again later.", Status: http.StatusTooManyRequests},

	// 2xxx: Token Request Errors
	ErrRoomNameRequired:  {Code: ErrRoomNameRequired, Message: "roomName is required."},
	ErrUserNameRequired:  {Code: ErrUserNameRequired, Message: "userName is required."},
	ErrFieldTooLong:      {Code: ErrFieldTooLong, Message: "%s is too long."},
	ErrInvalidEmail:      {Code: ErrInvalidEmail, Message: "userEmail is not a valid email address."},
	ErrConflictingFields: {Code: ErrConflictingFields, Message: "Conflicting values supplied for %s."},

	// 3xxx: Caller Authentication Errors
	ErrUnauthorized: {Code: ErrUnauthorized, Message: "Please sign in to continue.", Status: http.StatusUnauthorized},

	// 5xxx: Internal System Errors
	ErrUnknown:            {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
	ErrTokenSigningFailed: {Code: ErrTokenSigningFailed, Message: "Failed to generate meeting token.", Status: http.StatusInternalServerError},
}
