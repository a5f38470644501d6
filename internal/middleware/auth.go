package middleware

import (
	"github.com/sidequests/backend/pkg/errorx"
	"github.com/sidequests/backend/pkg/xcontext"
)

// Authenticate rejects requests without a valid access token and records the
// caller id for handlers.
func Authenticate(ctx xcontext.Context) error {
	userID := ctx.GetUserID()
	if userID == "" {
		return errorx.New(errorx.Unauthenticated, "You need to authenticate before")
	}

	xcontext.SetRequestUserID(ctx, userID)
	return nil
}
