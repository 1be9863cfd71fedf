package auth

import (
	"net/http"

	"github.com/Chi-G/JPATHNEC-sub000/handling"
	"github.com/Chi-G/JPATHNEC-sub000/lib"
	"github.com/Chi-G/JPATHNEC-sub000/structs"
	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) HandleRegister(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.RegisterRequest](r)
	if err != nil {
		arm.logger.Warn("Failed to extract register body", gecho.Field("error", err))
		handling.HandleError(err, "Please check your registration details and try again", arm.logger, w)
		return
	}

	user, err := arm.authService.Register(r.Context(), body)
	if err != nil {
		if lib.IsUniqueViolation(err) {
			gecho.Conflict(w, gecho.WithMessage("An account with this email already exists"), gecho.Send())
			return
		}
		handling.HandleError(err, "Unable to create your account", arm.logger, w)
		return
	}

	accessToken, err := arm.authService.GenerateAccessToken(user)
	if err != nil {
		arm.logger.Warn("Failed to generate access token after registration", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Account created, please log in"), gecho.Send())
		return
	}

	refreshToken, err := arm.authService.GenerateRefreshToken(user)
	if err != nil {
		arm.logger.Warn("Failed to generate refresh token after registration", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Account created, please log in"), gecho.Send())
		return
	}

	lib.SetCookie(lib.RefreshCookieName, refreshToken, arm.authService.GetRefreshTokenExpiration(), w)
	lib.SetCookie(lib.AccessCookieName, accessToken, arm.authService.GetAccessTokenExpiration(), w)

	go func() {
		if err := arm.emailService.SendWelcomeEmail(user); err != nil {
			arm.logger.Warn("Failed to send welcome email", gecho.Field("error", err), gecho.Field("user_id", user.Id))
		}
	}()

	gecho.Success(w,
		gecho.WithMessage("Account created"),
		gecho.WithData(user),
		gecho.Send(),
	)
}
