package auth

import (
	"net/http"

	"github.com/Chi-G/JPATHNEC-sub000/lib"
	"github.com/MonkyMars/gecho"
)

// HandleLogout clears the auth cookies. The access token is best-effort
// blacklisted; a missing or expired token still results in a clean logout.
func (arm *AuthRoutesManager) HandleLogout(w http.ResponseWriter, r *http.Request) {
	claims, err := lib.ExtractClaims(r, arm.authService.GetAccessTokenSecret())
	if err == nil {
		if err := arm.authService.Logout(claims); err != nil {
			arm.logger.Warn("Failed to blacklist token on logout", gecho.Field("error", err))
		}
	}

	lib.ClearCookie(lib.AccessCookieName, w)
	lib.ClearCookie(lib.RefreshCookieName, w)

	gecho.Success(w, gecho.WithMessage("Logged out"), gecho.Send())
}
