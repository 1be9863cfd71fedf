package auth

import (
	"net/http"

	"github.com/Chi-G/JPATHNEC-sub000/handling"
	"github.com/Chi-G/JPATHNEC-sub000/lib"
	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	refreshToken, err := lib.GetCookieValue(lib.RefreshCookieName, r)
	if err != nil || refreshToken == "" {
		gecho.Unauthorized(w, gecho.WithMessage("No refresh token provided"), gecho.Send())
		return
	}

	resp, err := arm.authService.RefreshAccessToken(r.Context(), refreshToken)
	if err != nil {
		lib.ClearCookie(lib.AccessCookieName, w)
		lib.ClearCookie(lib.RefreshCookieName, w)
		handling.HandleError(err, "Your session has expired, please log in again", arm.logger, w)
		return
	}

	lib.SetCookie(lib.RefreshCookieName, resp.RefreshToken, arm.authService.GetRefreshTokenExpiration(), w)
	lib.SetCookie(lib.AccessCookieName, resp.AccessToken, arm.authService.GetAccessTokenExpiration(), w)

	gecho.Success(w,
		gecho.WithMessage("Session refreshed"),
		gecho.WithData(resp.User),
		gecho.Send(),
	)
}
