package issuer

import "github.com/golang-jwt/jwt"

// Fixed claim values expected by the video platform.
const (
	Audience     = "jitsi"
	Issuer       = "chat"
	RoomWildcard = "*"
)

// Claims is the payload of a meeting token.
type Claims struct {
	jwt.StandardClaims

	Context ClaimsContext `json:"context"`
	Room    string        `json:"room"`
}

// ClaimsContext carries the user identity and the capability grants.
type ClaimsContext struct {
	User     UserClaims    `json:"user"`
	Features FeatureClaims `json:"features"`
}

// UserClaims identifies the participant. The platform expects string booleans.
type UserClaims struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Avatar    string `json:"avatar"`
	Email     string `json:"email"`
	Moderator string `json:"moderator"`
}

// FeatureClaims are the capability grants. Every token grants all of them.
type FeatureClaims struct {
	Livestreaming string `json:"livestreaming"`
	Recording     string `json:"recording"`
	Transcription string `json:"transcription"`
	OutboundCall  string `json:"outbound-call"`
}

func allFeatures() FeatureClaims {
	return FeatureClaims{
		Livestreaming: "true",
		Recording:     "true",
		Transcription: "true",
		OutboundCall:  "true",
	}
}

func boolClaim(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
