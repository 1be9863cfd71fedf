package auth

import (
	"net/http"

	"github.com/Chi-G/JPATHNEC-sub000/handling"
	"github.com/Chi-G/JPATHNEC-sub000/lib"
	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) HandleMe(w http.ResponseWriter, r *http.Request) {
	claims, err := lib.ExtractClaims(r, arm.authService.GetAccessTokenSecret())
	if err != nil {
		handling.HandleError(err, "Please log in to view your account", arm.logger, w)
		return
	}

	user, err := arm.authService.GetUserByID(r.Context(), claims.Sub)
	if err != nil {
		handling.HandleError(err, "Unable to load your account", arm.logger, w)
		return
	}

	gecho.Success(w, gecho.WithData(user), gecho.Send())
}
