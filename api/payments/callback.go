package payments

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/Chi-G/JPATHNEC-sub000/handling"
	"github.com/Chi-G/JPATHNEC-sub000/lib"
	"github.com/Chi-G/JPATHNEC-sub000/structs"
	"github.com/MonkyMars/gecho"
)

// HandleCallback receives the browser redirect from the payment gateway.
// Reconciliation runs here so the order is settled even if the customer
// closes the tab before the storefront polls the verify endpoint.
func (prm *PaymentRoutesManager) HandleCallback(w http.ResponseWriter, r *http.Request) {
	reference := r.URL.Query().Get("reference")
	if reference == "" {
		reference = r.URL.Query().Get("trxref")
	}
	if reference == "" {
		prm.redirect(w, r, "failure", "")
		return
	}

	result, err := prm.paymentService.Reconcile(r.Context(), reference)
	if err != nil {
		if !errors.Is(err, lib.ErrNothingToReconcile) {
			prm.logger.Error("Payment callback reconciliation failed",
				gecho.Field("reference", reference),
				gecho.Field("error", err))
		}
		prm.redirect(w, r, "failure", reference)
		return
	}

	if result.Paid {
		prm.redirect(w, r, "success", reference)
		return
	}
	prm.redirect(w, r, "failure", reference)
}

func (prm *PaymentRoutesManager) redirect(w http.ResponseWriter, r *http.Request, outcome, reference string) {
	target := prm.cfg.Server.FrontendURL + "/checkout/" + outcome
	if reference != "" {
		target += "?reference=" + url.QueryEscape(reference)
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// HandleVerify is polled by the storefront after the customer returns
// from the gateway. It retries reconciliation a few times before giving up.
func (prm *PaymentRoutesManager) HandleVerify(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.VerifyPaymentRequest](r)
	if err != nil {
		handling.HandleError(err, "A payment reference is required", prm.logger, w)
		return
	}

	result, err := prm.paymentService.VerifyPayment(r.Context(), body.Reference)
	if err != nil {
		handling.HandleError(err, "Unable to verify this payment", prm.logger, w)
		return
	}

	message := "Payment not completed"
	switch {
	case result.Paid:
		message = "Payment confirmed"
	case result.Pending:
		message = "Payment is still being processed"
	}

	gecho.Success(w,
		gecho.WithMessage(message),
		gecho.WithData(result),
		gecho.Send(),
	)
}
