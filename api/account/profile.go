package account

import (
	"net/http"

	"github.com/Chi-G/JPATHNEC-sub000/api/middleware"
	"github.com/Chi-G/JPATHNEC-sub000/handling"
	"github.com/Chi-G/JPATHNEC-sub000/lib"
	"github.com/Chi-G/JPATHNEC-sub000/structs"
	"github.com/MonkyMars/gecho"
)

func (arm *AccountRoutesManager) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Please log in to update your profile"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateProfileRequest](r)
	if err != nil {
		handling.HandleError(err, "Please check your profile details and try again", arm.logger, w)
		return
	}

	user, err := arm.accountService.UpdateProfile(r.Context(), claims.Sub, body.Name, body.Phone)
	if err != nil {
		handling.HandleError(err, "Unable to update your profile", arm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Profile updated"),
		gecho.WithData(user),
		gecho.Send(),
	)
}

func (arm *AccountRoutesManager) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Please log in to change your password"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.ChangePasswordRequest](r)
	if err != nil {
		handling.HandleError(err, "Please check your password details and try again", arm.logger, w)
		return
	}

	if err := arm.authService.ChangePassword(r.Context(), claims.Sub, body.CurrentPassword, body.NewPassword); err != nil {
		handling.HandleError(err, "Unable to change your password", arm.logger, w)
		return
	}

	gecho.Success(w, gecho.WithMessage("Password changed"), gecho.Send())
}

func (arm *AccountRoutesManager) HandleGetDevices(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Please log in to view your devices"), gecho.Send())
		return
	}

	devices, err := arm.accountService.GetDevices(r.Context(), claims.Sub)
	if err != nil {
		handling.HandleError(err, "Unable to load your devices", arm.logger, w)
		return
	}

	gecho.Success(w, gecho.WithData(devices), gecho.Send())
}
