package orders

import (
	"net/http"

	"github.com/Chi-G/JPATHNEC-sub000/handling"
	"github.com/Chi-G/JPATHNEC-sub000/lib"
	"github.com/Chi-G/JPATHNEC-sub000/structs"
	"github.com/Chi-G/JPATHNEC-sub000/structs/tables"
	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (orm *OrderRoutesManager) HandleListAllOrders(w http.ResponseWriter, r *http.Request) {
	page, pageSize := handling.ParsePagination(r)

	var status *tables.OrderStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := tables.OrderStatus(raw)
		switch s {
		case tables.OrderStatusPending, tables.OrderStatusProcessing, tables.OrderStatusShipped,
			tables.OrderStatusDelivered, tables.OrderStatusCancelled:
			status = &s
		default:
			gecho.BadRequest(w, gecho.WithMessage("Unknown order status filter"), gecho.Send())
			return
		}
	}

	var paymentStatus *tables.PaymentStatus
	if raw := r.URL.Query().Get("payment_status"); raw != "" {
		p := tables.PaymentStatus(raw)
		switch p {
		case tables.PaymentStatusPending, tables.PaymentStatusPaid,
			tables.PaymentStatusFailed, tables.PaymentStatusRefunded:
			paymentStatus = &p
		default:
			gecho.BadRequest(w, gecho.WithMessage("Unknown payment status filter"), gecho.Send())
			return
		}
	}

	result, err := orm.orderService.GetAllOrders(r.Context(), status, paymentStatus, page, pageSize)
	if err != nil {
		handling.HandleError(err, "Unable to load orders", orm.logger, w)
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

func (orm *OrderRoutesManager) HandleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderId, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid order id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateOrderStatusRequest](r)
	if err != nil {
		handling.HandleError(err, "Please check the status update and try again", orm.logger, w)
		return
	}

	order, err := orm.orderService.UpdateOrderStatus(r.Context(), orderId, body)
	if err != nil {
		handling.HandleError(err, "Unable to update this order", orm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Order status updated"),
		gecho.WithData(order),
		gecho.Send(),
	)
}
