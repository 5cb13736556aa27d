/*
Package errs provides custom error types and application-level error code constants.

These error codes are used to clearly identify specific business or system errors
both internally within the server and in communication with clients.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request header Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body JSON format is incorrect (e.g., syntax error).
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates that the request body contained extra content after valid JSON data.
	ErrExtraContentInBody = 1004

	// ErrRequestEntityTooLarge indicates that the request body size exceeded the server limit.
	ErrRequestEntityTooLarge = 1006

	// ErrRateLimitExceeded indicates that the request rate has exceeded the set limit.
	ErrRateLimitExceeded = 1007
)

// 2xxx: Token Request Errors
const (
	// ErrRoomNameRequired indicates that the room name is missing or blank.
	ErrRoomNameRequired = 2101

	// ErrUserNameRequired indicates that the user display name is missing or blank.
	ErrUserNameRequired = 2102

	// ErrFieldTooLong indicates that a request field exceeds its length limit.
	ErrFieldTooLong = 2103

	// ErrInvalidEmail indicates that the supplied email is not a valid address.
	ErrInvalidEmail = 2104

	// ErrConflictingFields indicates that two aliases of the same field carry different values.
	ErrConflictingFields = 2105
)

// 3xxx: Caller Authentication Errors
const (
	// ErrUnauthorized indicates that the caller did not present a valid session token.
	ErrUnauthorized = 3001
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified, general server internal error.
	ErrUnknown = 5000

	// ErrTokenSigningFailed indicates that the cryptographic signing step failed.
	ErrTokenSigningFailed = 5001
)
