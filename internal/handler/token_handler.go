/*
Package handler provides HTTP handler functions for meeting token issuance.
*/
package handler

import (
	"errors"
	"net/http"
	"strings"

	"meettoken/internal/app/issuer"
	"meettoken/internal/pkg/auth/jwt"
	"meettoken/internal/pkg/errs"
	"meettoken/internal/pkg/logx"
	"meettoken/internal/pkg/metrics"
	"meettoken/internal/pkg/req"
	"meettoken/internal/pkg/resp"
)

// IssueTokenInput accepts every request shape the claims web app has sent over time.
// Aliases of the same field may be combined only when they agree.
type IssueTokenInput struct {
	RoomName *string `json:"roomName"`
	Room     *string `json:"room"`

	UserName      *string `json:"userName"`
	UserNameSnake *string `json:"user_name"`
	Name          *string `json:"name"`

	UserEmail *string `json:"userEmail"`
	Email     *string `json:"email"`

	IsModerator      *bool `json:"isModerator"`
	IsModeratorSnake *bool `json:"is_moderator"`

	Avatar *string `json:"avatar"`
}

// IssueTokenResponse is the success body of every issuance route.
type IssueTokenResponse struct {
	Token     string `json:"token"`
	AppID     string `json:"appId"`
	RoomName  string `json:"roomName"`
	ExpiresAt int64  `json:"expiresAt"`
}

// TokenRequest resolves the aliases into a single issuer.TokenRequest.
func (in IssueTokenInput) TokenRequest() (issuer.TokenRequest, *errs.CustomError) {
	var out issuer.TokenRequest
	var ok bool

	if out.RoomName, ok = pickString(in.RoomName, in.Room); !ok {
		return out, errs.NewError(errs.ErrConflictingFields, issuer.FieldRoomName)
	}
	if out.UserName, ok = pickString(in.UserName, in.UserNameSnake, in.Name); !ok {
		return out, errs.NewError(errs.ErrConflictingFields, issuer.FieldUserName)
	}
	if out.UserEmail, ok = pickString(in.UserEmail, in.Email); !ok {
		return out, errs.NewError(errs.ErrConflictingFields, issuer.FieldUserEmail)
	}
	if in.IsModerator != nil && in.IsModeratorSnake != nil && *in.IsModerator != *in.IsModeratorSnake {
		return out, errs.NewError(errs.ErrConflictingFields, "isModerator")
	}

	switch {
	case in.IsModerator != nil:
		out.IsModerator = *in.IsModerator
	case in.IsModeratorSnake != nil:
		out.IsModerator = *in.IsModeratorSnake
	}

	if in.Avatar != nil {
		out.Avatar = *in.Avatar
	}

	return out, nil
}

// pickString returns the first non-blank alias value.
// It reports false when two non-blank aliases differ after trimming.
func pickString(aliases ...*string) (string, bool) {
	var picked string
	for _, a := range aliases {
		if a == nil {
			continue
		}
		v := strings.TrimSpace(*a)
		if v == "" {
			continue
		}
		if picked != "" && picked != v {
			return "", false
		}
		picked = v
	}
	return picked, true
}

// HandleIssueToken validates the request and responds with a freshly signed meeting token.
func HandleIssueToken(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input IssueTokenInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			metrics.RecordIssue(metrics.OutcomeRejected, false)
			resp.RespondError(w, r, customErr)
			return
		}

		tokenReq, customErr := input.TokenRequest()
		if customErr != nil {
			metrics.RecordIssue(metrics.OutcomeRejected, false)
			resp.RespondError(w, r, customErr)
			return
		}

		ctx := r.Context()
		if caller := jwt.GetCallerFromContext(r); caller != nil {
			ctx = logx.Ctx(ctx).With().Str("caller_id", caller.Subject).Logger().WithContext(ctx)
		}

		issued, err := deps.Issuer.Issue(ctx, tokenReq)
		if err != nil {
			customErr := issueError(err)
			outcome := metrics.OutcomeRejected
			if customErr.Status >= http.StatusInternalServerError {
				outcome = metrics.OutcomeFailed
			}
			metrics.RecordIssue(outcome, tokenReq.IsModerator)
			resp.RespondError(w, r, customErr)
			return
		}

		metrics.RecordIssue(metrics.OutcomeIssued, tokenReq.IsModerator)

		resp.RespondSuccess(w, r, IssueTokenResponse{
			Token:     issued.Token,
			AppID:     issued.AppID,
			RoomName:  issued.RoomName,
			ExpiresAt: issued.ExpiresAt.Unix(),
		})
	}
}

// issueError maps issuer failures onto response codes.
func issueError(err error) *errs.CustomError {
	var vErr *issuer.ValidationError
	switch {
	case errors.As(err, &vErr):
		switch vErr.Reason {
		case issuer.ReasonTooLong:
			return errs.NewError(errs.ErrFieldTooLong, vErr.Field)
		case issuer.ReasonInvalidEmail:
			return errs.NewError(errs.ErrInvalidEmail)
		}
		switch vErr.Field {
		case issuer.FieldRoomName:
			return errs.NewError(errs.ErrRoomNameRequired)
		case issuer.FieldUserName:
			return errs.NewError(errs.ErrUserNameRequired)
		}
		return errs.NewError(errs.ErrInvalidParams)
	case errors.Is(err, issuer.ErrValidation):
		return errs.NewError(errs.ErrInvalidParams)
	case errors.Is(err, issuer.ErrSigning):
		return errs.NewError(errs.ErrTokenSigningFailed, err)
	default:
		return errs.NewError(errs.ErrUnknown, err)
	}
}

// HandleJWKS publishes the public signing key so verifiers can check issued tokens.
func HandleJWKS(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp.RespondSuccess(w, r, deps.JWKS)
	}
}
