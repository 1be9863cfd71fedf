package orders

import (
	"net/http"

	"github.com/Chi-G/JPATHNEC-sub000/api/middleware"
	"github.com/Chi-G/JPATHNEC-sub000/handling"
	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

func (orm *OrderRoutesManager) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Please log in to view your orders"), gecho.Send())
		return
	}

	page, pageSize := handling.ParsePagination(r)

	result, err := orm.orderService.GetOrdersByUserId(r.Context(), claims.Sub, page, pageSize)
	if err != nil {
		handling.HandleError(err, "Unable to load your orders", orm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"orders":     result.Data,
			"pagination": result.Pagination,
		}),
		gecho.Send(),
	)
}

func (orm *OrderRoutesManager) HandleGetOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Please log in to view your orders"), gecho.Send())
		return
	}

	orderNumber := chi.URLParam(r, "orderNumber")
	if orderNumber == "" {
		gecho.BadRequest(w, gecho.WithMessage("Order number is required"), gecho.Send())
		return
	}

	order, err := orm.orderService.GetUserOrder(r.Context(), claims.Sub, orderNumber)
	if err != nil {
		handling.HandleError(err, "Unable to find this order", orm.logger, w)
		return
	}

	gecho.Success(w, gecho.WithData(order), gecho.Send())
}

func (orm *OrderRoutesManager) HandleTrackOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Please log in to track your orders"), gecho.Send())
		return
	}

	orderNumber := chi.URLParam(r, "orderNumber")
	if orderNumber == "" {
		gecho.BadRequest(w, gecho.WithMessage("Order number is required"), gecho.Send())
		return
	}

	tracking, err := orm.orderService.TrackOrder(r.Context(), claims.Sub, orderNumber)
	if err != nil {
		handling.HandleError(err, "Unable to track this order", orm.logger, w)
		return
	}

	gecho.Success(w, gecho.WithData(tracking), gecho.Send())
}

func (orm *OrderRoutesManager) HandleCancelOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Please log in to cancel an order"), gecho.Send())
		return
	}

	orderNumber := chi.URLParam(r, "orderNumber")
	if orderNumber == "" {
		gecho.BadRequest(w, gecho.WithMessage("Order number is required"), gecho.Send())
		return
	}

	order, err := orm.orderService.CancelOrder(r.Context(), claims.Sub, orderNumber)
	if err != nil {
		handling.HandleError(err, "Unable to cancel this order", orm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Your order has been cancelled"),
		gecho.WithData(order),
		gecho.Send(),
	)
}
