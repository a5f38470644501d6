package middleware

import (
	"net/http"
	"time"

	"github.com/sidequests/backend/pkg/router"
	"github.com/sidequests/backend/pkg/xcontext"
)

type AccessTokenResponse interface {
	AccessTokenInfo() string
}

func HandleSetAccessToken() router.MiddlewareFunc {
	return func(ctx xcontext.Context) error {
		tokenResp, ok := xcontext.GetResponse(ctx).(AccessTokenResponse)
		if ok {
			accessToken := tokenResp.AccessTokenInfo()
			http.SetCookie(ctx.Writer(), &http.Cookie{
				Name:     ctx.Configs().Auth.AccessTokenName,
				Value:    accessToken,
				Domain:   "",
				Path:     "/",
				Expires:  time.Now().Add(ctx.Configs().Auth.AccessToken.Expiration),
				Secure:   true,
				HttpOnly: false,
			})
		}

		return nil
	}
}
