package services

import (
	"context"
	"time"

	"github.com/Chi-G/JPATHNEC-sub000/database"
	"github.com/Chi-G/JPATHNEC-sub000/lib"
	"github.com/Chi-G/JPATHNEC-sub000/structs"
	"github.com/Chi-G/JPATHNEC-sub000/structs/tables"
	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type PaymentService struct {
	logger              *gecho.Logger
	cfg                 *structs.Config
	db                  *database.DB
	gateway             *PaystackClient
	orderService        *OrderService
	cartService         *CartService
	notificationService *NotificationService
}

func NewPaymentService(
	logger *gecho.Logger,
	cfg *structs.Config,
	db *database.DB,
	gateway *PaystackClient,
	orderService *OrderService,
	cartService *CartService,
	notificationService *NotificationService,
) *PaymentService {
	return &PaymentService{
		logger:              logger,
		cfg:                 cfg,
		db:                  db,
		gateway:             gateway,
		orderService:        orderService,
		cartService:         cartService,
		notificationService: notificationService,
	}
}

// InitializePayment turns the user's cart into a pending order and opens a
// hosted checkout session. The order is committed before the gateway call so
// a gateway timeout never loses the order, reconciliation picks it up by
// reference later. On a hard gateway rejection the order is cancelled and
// stock restored.
func (ps *PaymentService) InitializePayment(ctx context.Context, user *tables.User, req *structs.InitializePaymentRequest) (*structs.InitializePaymentResponse, error) {
	reference := lib.GeneratePaymentReference()

	// Phase one: persist the order inside a transaction
	order, err := database.TransactionWithResult(ctx, ps.db, func(tx bun.Tx) (*tables.Order, error) {
		return ps.orderService.CreateOrderFromCart(ctx, tx, user.Id, req, reference)
	})
	if err != nil {
		return nil, err
	}

	// Phase two: open the checkout session, outside any transaction
	session, err := ps.gateway.InitializeTransaction(ctx, user.Email, order.Total, reference, TransactionMetadata{
		UserID:      user.Id.String(),
		OrderNumber: order.OrderNumber,
	})
	if err != nil {
		ps.logger.Error("Gateway initialize failed, cancelling order",
			gecho.Field("error", err),
			gecho.Field("order_number", order.OrderNumber),
			gecho.Field("reference", reference))
		ps.abandonOrder(order)
		return nil, err
	}

	ps.logger.Info("Checkout session opened",
		gecho.Field("order_number", order.OrderNumber),
		gecho.Field("reference", reference),
		gecho.Field("amount", order.Total))

	return &structs.InitializePaymentResponse{
		AuthorizationURL: session.AuthorizationURL,
		AccessCode:       session.AccessCode,
		Reference:        session.Reference,
		OrderNumber:      order.OrderNumber,
	}, nil
}

// abandonOrder cancels an order whose checkout session could not be opened
// and puts the reserved stock back. Best effort, reconciliation remains the
// backstop if this fails.
func (ps *PaymentService) abandonOrder(order *tables.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := database.Transaction(ctx, ps.db, func(tx bun.Tx) error {
		if _, txErr := database.QueryTx[tables.Order](tx).Where("id", order.Id).Update(ctx, map[string]any{
			"status":         tables.OrderStatusCancelled,
			"payment_status": tables.PaymentStatusFailed,
			"updated_at":     time.Now(),
		}); txErr != nil {
			return txErr
		}
		for i := range order.Items {
			if txErr := ps.orderService.productService.RestoreStock(ctx, tx, order.Items[i].ProductId, order.Items[i].Quantity); txErr != nil {
				return txErr
			}
		}
		return nil
	})
	if err != nil {
		ps.logger.Error("Failed to cancel order after gateway failure",
			gecho.Field("error", err),
			gecho.Field("order_id", order.Id))
	}
}

// ReconcileResult is what callback and verify endpoints hand back to the client.
type ReconcileResult struct {
	Order     *tables.Order `json:"order"`
	Reference string        `json:"reference"`
	Paid      bool          `json:"paid"`
	Pending   bool          `json:"pending"`
	Recovered bool          `json:"recovered"`
}

// settlement is the set of local writes a verified gateway state demands.
type settlement struct {
	PaymentStatus tables.PaymentStatus
	Terminal      bool // polling may stop
	ClearCart     bool
}

// settlementFor maps the gateway's transaction status onto the local order.
// The cart is cleared only on a settled charge, an abandoned or still-pending
// checkout keeps the customer's cart intact.
func settlementFor(verified *VerifiedTransaction) settlement {
	switch {
	case verified.IsSuccessful():
		return settlement{PaymentStatus: tables.PaymentStatusPaid, Terminal: true, ClearCart: true}
	case verified.IsTerminalFailure():
		return settlement{PaymentStatus: tables.PaymentStatusFailed, Terminal: true}
	default:
		return settlement{PaymentStatus: tables.PaymentStatusPending}
	}
}

// Reconcile settles the local order against the gateway's authoritative state
// for a payment reference. It is idempotent: the order row is locked by
// reference, an already-paid order is returned unchanged, and replayed
// callbacks become no-ops. When the order row is missing entirely, a recovery
// order is rebuilt from the user's cart using the transaction metadata.
func (ps *PaymentService) Reconcile(ctx context.Context, reference string) (*ReconcileResult, error) {
	verified, err := ps.gateway.VerifyTransaction(ctx, reference)
	if err != nil {
		return nil, err
	}

	result := &ReconcileResult{Reference: reference}

	var firstSettle bool
	err = database.Transaction(ctx, ps.db, func(tx bun.Tx) error {
		order, txErr := database.QueryTx[tables.Order](tx).
			Where("payment_reference", reference).
			ForUpdate().
			First(ctx)
		if txErr != nil {
			return lib.MapDBError(txErr)
		}

		if order == nil {
			// The initialize transaction never committed. Rebuild the order
			// from the user's cart so a settled charge is never orphaned.
			if !verified.IsSuccessful() {
				return lib.ErrNothingToReconcile
			}
			order, txErr = ps.recoverOrder(ctx, tx, verified)
			if txErr != nil {
				return txErr
			}
			result.Recovered = true
		}

		if order.PaymentStatus == tables.PaymentStatusPaid {
			// Replayed callback, nothing to do
			result.Order = order
			result.Paid = true
			return nil
		}

		now := time.Now()
		switch st := settlementFor(verified); st.PaymentStatus {
		case tables.PaymentStatusPaid:
			updates := map[string]any{
				"payment_status": tables.PaymentStatusPaid,
				"payment_method": verified.Channel,
				"updated_at":     now,
			}
			// Paid orders move straight into fulfilment
			if order.Status == tables.OrderStatusPending {
				updates["status"] = tables.OrderStatusProcessing
				order.Status = tables.OrderStatusProcessing
			}
			if _, txErr := database.QueryTx[tables.Order](tx).Where("id", order.Id).Update(ctx, updates); txErr != nil {
				return lib.MapDBError(txErr)
			}
			if st.ClearCart {
				if txErr := ps.cartService.ClearCartTx(ctx, tx, order.UserId); txErr != nil {
					return txErr
				}
			}
			order.PaymentStatus = tables.PaymentStatusPaid
			order.PaymentMethod = verified.Channel
			firstSettle = true
			result.Paid = true
		case tables.PaymentStatusFailed:
			if _, txErr := database.QueryTx[tables.Order](tx).Where("id", order.Id).Update(ctx, map[string]any{
				"payment_status": tables.PaymentStatusFailed,
				"updated_at":     now,
			}); txErr != nil {
				return lib.MapDBError(txErr)
			}
			order.PaymentStatus = tables.PaymentStatusFailed
		default:
			// Charge not settled yet, leave the order and cart untouched
			// so the customer can still complete payment.
			result.Pending = true
		}

		result.Order = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	if firstSettle {
		ps.logger.Info("Payment settled",
			gecho.Field("reference", reference),
			gecho.Field("order_number", result.Order.OrderNumber),
			gecho.Field("amount", verified.Amount),
			gecho.Field("recovered", result.Recovered))
		go ps.notificationService.NotifyOrderConfirmed(result.Order)
	}

	return result, nil
}

// recoverOrder rebuilds a paid order whose row is missing, from the cart the
// customer checked out with. An empty cart means there is nothing left to
// recover from and the charge needs manual follow-up.
func (ps *PaymentService) recoverOrder(ctx context.Context, tx bun.Tx, verified *VerifiedTransaction) (*tables.Order, error) {
	userId, err := uuid.Parse(verified.Metadata.UserID)
	if err != nil {
		ps.logger.Error("Cannot recover order, metadata has no user",
			gecho.Field("reference", verified.Reference))
		return nil, lib.ErrNothingToReconcile
	}

	req := &structs.InitializePaymentRequest{
		PaymentMethod: verified.Channel,
	}

	order, err := ps.orderService.CreateOrderFromCart(ctx, tx, userId, req, verified.Reference)
	if err != nil {
		if err == lib.ErrEmptyCart {
			ps.logger.Error("Settled charge with no order and no cart, manual follow-up needed",
				gecho.Field("reference", verified.Reference),
				gecho.Field("user_id", userId),
				gecho.Field("amount", verified.Amount))
			return nil, lib.ErrNothingToReconcile
		}
		return nil, err
	}

	ps.logger.Warn("Recovery order created",
		gecho.Field("reference", verified.Reference),
		gecho.Field("order_number", order.OrderNumber),
		gecho.Field("user_id", userId))

	return order, nil
}

// VerifyPayment is the frontend polling path after redirect. The gateway can
// lag a settled charge briefly, so a still-pending result is retried a few
// times with backoff before giving up.
func (ps *PaymentService) VerifyPayment(ctx context.Context, reference string) (*ReconcileResult, error) {
	backoff := 500 * time.Millisecond
	var result *ReconcileResult
	var err error

	for attempt := 0; attempt < 3; attempt++ {
		result, err = ps.Reconcile(ctx, reference)
		if err != nil {
			return nil, err
		}
		if !result.Pending {
			return result, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	return result, nil
}
