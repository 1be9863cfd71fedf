package newsletter

import (
	"net/http"
	"net/mail"

	"github.com/Chi-G/JPATHNEC-sub000/handling"
	"github.com/Chi-G/JPATHNEC-sub000/lib"
	"github.com/Chi-G/JPATHNEC-sub000/services"
	"github.com/Chi-G/JPATHNEC-sub000/structs"
	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type NewsletterRoutesManager struct {
	logger            *gecho.Logger
	newsletterService *services.NewsletterService
}

func NewNewsletterRoutesManager(logger *gecho.Logger, newsletterService *services.NewsletterService) *NewsletterRoutesManager {
	return &NewsletterRoutesManager{
		logger:            logger,
		newsletterService: newsletterService,
	}
}

func (nrm *NewsletterRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/newsletter", func(r chi.Router) {
		r.Post("/subscribe", nrm.HandleSubscribe)
		// Unsubscribe links in emails are plain GETs
		r.Get("/unsubscribe", nrm.HandleUnsubscribe)
	})
}

func (nrm *NewsletterRoutesManager) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.NewsletterSubscribeRequest](r)
	if err != nil {
		handling.HandleError(err, "Please enter a valid email address", nrm.logger, w)
		return
	}

	result, err := nrm.newsletterService.Subscribe(r.Context(), body.Email)
	if err != nil {
		handling.HandleError(err, "Unable to subscribe right now", nrm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage(result.Message),
		gecho.WithData(result),
		gecho.Send(),
	)
}

func (nrm *NewsletterRoutesManager) HandleUnsubscribe(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if _, err := mail.ParseAddress(email); err != nil {
		gecho.BadRequest(w, gecho.WithMessage("A valid email address is required"), gecho.Send())
		return
	}

	if err := nrm.newsletterService.Unsubscribe(r.Context(), email); err != nil {
		handling.HandleError(err, "Unable to unsubscribe this address", nrm.logger, w)
		return
	}

	gecho.Success(w, gecho.WithMessage("You have been unsubscribed"), gecho.Send())
}
