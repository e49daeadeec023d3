package application

import (
	"errors"
	"strings"

	"github.com/mahabubulhasibshawon/dairy-admin/internal/domain"
)

const (
	msgSessionExpired = "Your session has expired. Please log in again."
	msgConflict       = "This record already exists."
	msgTryAgain       = "Something went wrong. Please try again."
)

// Present turns an error into the notice shown to the operator. It returns
// nil for a nil error.
func Present(err error) *domain.Notice {
	if err == nil {
		return nil
	}
	var (
		vErr   *domain.ValidationError
		srvErr domain.ServerError
	)
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return &domain.Notice{Kind: domain.NoticeUnauthorized, Title: "Session expired", Message: msgSessionExpired}
	case errors.Is(err, domain.ErrConflict):
		msg := msgConflict
		if errors.As(err, &srvErr) && srvErr.ServerMessage() != "" {
			msg = srvErr.ServerMessage()
		}
		return &domain.Notice{Kind: domain.NoticeConflict, Title: "Already exists", Message: msg}
	case errors.As(err, &vErr):
		fields := make([]string, 0, len(vErr.Fields))
		for _, f := range vErr.Fields {
			fields = append(fields, f.Field)
		}
		return &domain.Notice{Kind: domain.NoticeInvalid, Title: "Check the form", Message: "Please fill in: " + strings.Join(fields, ", ")}
	case errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, domain.ErrFutureDelivery):
		return &domain.Notice{Kind: domain.NoticeInvalid, Title: "Not allowed", Message: err.Error()}
	}
	return &domain.Notice{Kind: domain.NoticeError, Title: "Error", Message: msgTryAgain}
}

func outcome(err error) string {
	if err == nil {
		return "success"
	}
	return string(Present(err).Kind)
}
