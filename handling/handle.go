package handling

import (
	"errors"
	"net/http"

	"github.com/Chi-G/JPATHNEC-sub000/lib"
	"github.com/MonkyMars/gecho"
)

// HandleError maps service errors onto HTTP responses. Sentinel errors get
// their proper status, anything unknown is logged and becomes a 500.
func HandleError(err error, msg string, logger *gecho.Logger, w http.ResponseWriter) {
	var validationErr *lib.ValidationError
	if errors.As(err, &validationErr) {
		gecho.BadRequest(w,
			gecho.WithMessage("Validation failed"),
			gecho.WithData(validationErr.Errors),
			gecho.Send(),
		)
		return
	}

	switch {
	case errors.Is(err, lib.ErrNotFound):
		gecho.NotFound(w, gecho.WithMessage(msg), gecho.Send())
	case errors.Is(err, lib.ErrConflict):
		gecho.Conflict(w, gecho.WithMessage(msg), gecho.Send())
	case errors.Is(err, lib.ErrInvalidCredentials):
		gecho.Unauthorized(w, gecho.WithMessage("Invalid credentials"), gecho.Send())
	case errors.Is(err, lib.ErrInvalidToken), errors.Is(err, lib.ErrExpiredToken):
		gecho.Unauthorized(w, gecho.WithMessage("Invalid or expired token"), gecho.Send())
	case errors.Is(err, lib.ErrEmptyCart):
		gecho.BadRequest(w, gecho.WithMessage("Your cart is empty"), gecho.Send())
	case errors.Is(err, lib.ErrOutOfStock):
		gecho.Conflict(w, gecho.WithMessage("Insufficient stock for the requested quantity"), gecho.Send())
	case errors.Is(err, lib.ErrInvalidTransition):
		gecho.Conflict(w, gecho.WithMessage(err.Error()), gecho.Send())
	case errors.Is(err, lib.ErrOrderNotCancellable):
		gecho.Conflict(w, gecho.WithMessage("This order can no longer be cancelled"), gecho.Send())
	case errors.Is(err, lib.ErrNothingToReconcile):
		gecho.NotFound(w, gecho.WithMessage("No payment found for this reference"), gecho.Send())
	case errors.Is(err, lib.ErrGateway):
		logger.Error("Payment gateway error", gecho.Field("error", err), gecho.Field("msg", msg))
		gecho.ServiceUnavailable(w, gecho.WithMessage("Payment provider is unavailable, please try again"), gecho.Send())
	default:
		logger.Error("An error occurred", gecho.Field("error", err), gecho.Field("msg", msg), gecho.WithCallerSkip(3))
		gecho.InternalServerError(w, gecho.Send())
	}
}
