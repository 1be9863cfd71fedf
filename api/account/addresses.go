package account

import (
	"net/http"

	"github.com/Chi-G/JPATHNEC-sub000/api/middleware"
	"github.com/Chi-G/JPATHNEC-sub000/handling"
	"github.com/Chi-G/JPATHNEC-sub000/lib"
	"github.com/Chi-G/JPATHNEC-sub000/structs/tables"
	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (arm *AccountRoutesManager) HandleGetAddresses(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Please log in to manage your addresses"), gecho.Send())
		return
	}

	addresses, err := arm.accountService.GetAddresses(r.Context(), claims.Sub)
	if err != nil {
		handling.HandleError(err, "Unable to load your addresses", arm.logger, w)
		return
	}

	gecho.Success(w, gecho.WithData(addresses), gecho.Send())
}

func (arm *AccountRoutesManager) HandleCreateAddress(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Please log in to manage your addresses"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[tables.Address](r)
	if err != nil {
		handling.HandleError(err, "Please check the address details and try again", arm.logger, w)
		return
	}

	address, err := arm.accountService.CreateAddress(r.Context(), claims.Sub, body)
	if err != nil {
		handling.HandleError(err, "Unable to save this address", arm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Address saved"),
		gecho.WithData(address),
		gecho.Send(),
	)
}

func (arm *AccountRoutesManager) HandleUpdateAddress(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Please log in to manage your addresses"), gecho.Send())
		return
	}

	addressId, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid address id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[tables.Address](r)
	if err != nil {
		handling.HandleError(err, "Please check the address details and try again", arm.logger, w)
		return
	}

	address, err := arm.accountService.UpdateAddress(r.Context(), claims.Sub, addressId, body)
	if err != nil {
		handling.HandleError(err, "Unable to update this address", arm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Address updated"),
		gecho.WithData(address),
		gecho.Send(),
	)
}

func (arm *AccountRoutesManager) HandleDeleteAddress(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Please log in to manage your addresses"), gecho.Send())
		return
	}

	addressId, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid address id"), gecho.Send())
		return
	}

	if err := arm.accountService.DeleteAddress(r.Context(), claims.Sub, addressId); err != nil {
		handling.HandleError(err, "Unable to delete this address", arm.logger, w)
		return
	}

	gecho.Success(w, gecho.WithMessage("Address deleted"), gecho.Send())
}

func (arm *AccountRoutesManager) HandleSetDefaultAddress(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Please log in to manage your addresses"), gecho.Send())
		return
	}

	addressId, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid address id"), gecho.Send())
		return
	}

	if err := arm.accountService.SetDefaultAddress(r.Context(), claims.Sub, addressId); err != nil {
		handling.HandleError(err, "Unable to set this address as default", arm.logger, w)
		return
	}

	gecho.Success(w, gecho.WithMessage("Default address updated"), gecho.Send())
}
