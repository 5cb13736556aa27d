package jwt

import "github.com/golang-jwt/jwt"

// CallerClaims are the claims of the session token minted by the claims web app for
// its signed-in users. Only the standard claims and the optional email are read;
// the subject identifies the caller in logs.
type CallerClaims struct {
	jwt.StandardClaims

	// Email is the signed-in user's address, when the web app includes it.
	Email string `json:"email,omitempty"`
}
