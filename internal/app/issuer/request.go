package issuer

import (
	"net/mail"
	"strings"
)

// Field names as they appear in the JSON request and in validation errors.
const (
	FieldRoomName  = "roomName"
	FieldUserName  = "userName"
	FieldUserEmail = "userEmail"
	FieldAvatar    = "avatar"
)

// Length limits, in bytes.
const (
	MaxRoomNameLen  = 256
	MaxUserNameLen  = 256
	MaxUserEmailLen = 320
	MaxAvatarLen    = 2048
)

// TokenRequest asks for one meeting token.
type TokenRequest struct {
	// RoomName is the meeting room the caller wants to join. Required.
	RoomName string

	// UserName is the display name shown in the meeting. Required.
	UserName string

	// UserEmail is optional and is emitted blank when absent.
	UserEmail string

	// Avatar is an optional avatar URL.
	Avatar string

	// IsModerator grants moderator controls in the meeting.
	IsModerator bool
}

// Normalize returns a copy with surrounding whitespace removed from every text field.
func (r TokenRequest) Normalize() TokenRequest {
	r.RoomName = strings.TrimSpace(r.RoomName)
	r.UserName = strings.TrimSpace(r.UserName)
	r.UserEmail = strings.TrimSpace(r.UserEmail)
	r.Avatar = strings.TrimSpace(r.Avatar)
	return r
}

// Validate reports the first field that makes the request unusable.
// Call it on a normalized request.
func (r TokenRequest) Validate() error {
	switch {
	case r.RoomName == "":
		return &ValidationError{Field: FieldRoomName, Reason: ReasonRequired}
	case r.UserName == "":
		return &ValidationError{Field: FieldUserName, Reason: ReasonRequired}
	case len(r.RoomName) > MaxRoomNameLen:
		return &ValidationError{Field: FieldRoomName, Reason: ReasonTooLong}
	case len(r.UserName) > MaxUserNameLen:
		return &ValidationError{Field: FieldUserName, Reason: ReasonTooLong}
	case len(r.UserEmail) > MaxUserEmailLen:
		return &ValidationError{Field: FieldUserEmail, Reason: ReasonTooLong}
	case len(r.Avatar) > MaxAvatarLen:
		return &ValidationError{Field: FieldAvatar, Reason: ReasonTooLong}
	}

	if r.UserEmail != "" && !validEmail(r.UserEmail) {
		return &ValidationError{Field: FieldUserEmail, Reason: ReasonInvalidEmail}
	}

	return nil
}

// validEmail accepts a bare address only, not "Name <addr>" forms.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
