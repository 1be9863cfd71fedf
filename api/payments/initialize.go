package payments

import (
	"net/http"

	"github.com/Chi-G/JPATHNEC-sub000/api/middleware"
	"github.com/Chi-G/JPATHNEC-sub000/handling"
	"github.com/Chi-G/JPATHNEC-sub000/lib"
	"github.com/Chi-G/JPATHNEC-sub000/structs"
	"github.com/MonkyMars/gecho"
)

func (prm *PaymentRoutesManager) HandleInitialize(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Please log in to check out"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.InitializePaymentRequest](r)
	if err != nil {
		handling.HandleError(err, "Please check your checkout details and try again", prm.logger, w)
		return
	}

	user, err := prm.authService.GetUserByID(r.Context(), claims.Sub)
	if err != nil {
		handling.HandleError(err, "Unable to load your account", prm.logger, w)
		return
	}

	resp, err := prm.paymentService.InitializePayment(r.Context(), user, body)
	if err != nil {
		handling.HandleError(err, "Unable to start your payment", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Payment initialized"),
		gecho.WithData(resp),
		gecho.Send(),
	)
}
