package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/Chi-G/JPATHNEC-sub000/database"
	"github.com/Chi-G/JPATHNEC-sub000/lib"
	"github.com/Chi-G/JPATHNEC-sub000/structs"
	"github.com/Chi-G/JPATHNEC-sub000/structs/tables"
	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type OrderService struct {
	logger              *gecho.Logger
	cfg                 *structs.Config
	db                  *database.DB
	productService      *ProductService
	cartService         *CartService
	notificationService *NotificationService
}

func NewOrderService(
	logger *gecho.Logger,
	cfg *structs.Config,
	db *database.DB,
	productService *ProductService,
	cartService *CartService,
	notificationService *NotificationService,
) *OrderService {
	return &OrderService{
		logger:              logger,
		cfg:                 cfg,
		db:                  db,
		productService:      productService,
		cartService:         cartService,
		notificationService: notificationService,
	}
}

// CreateOrderFromCart builds an order from the user's locked cart rows inside
// an existing transaction. It snapshots product details into order lines and
// decrements stock. The cart rows are left in place, they are deleted only
// when the payment settles. The caller owns commit/rollback.
func (os *OrderService) CreateOrderFromCart(
	ctx context.Context,
	tx bun.Tx,
	userId uuid.UUID,
	req *structs.InitializePaymentRequest,
	paymentReference string,
) (*tables.Order, error) {
	items, err := os.cartService.GetCartItemsTx(ctx, tx, userId)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, lib.ErrEmptyCart
	}

	productIds := make([]uuid.UUID, 0, len(items))
	for i := range items {
		productIds = append(productIds, items[i].ProductId)
	}

	idValues := make([]any, len(productIds))
	for i, id := range productIds {
		idValues[i] = id
	}
	products, err := database.QueryTx[tables.Product](tx).WhereIn("id", idValues).All(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}

	productMap := make(map[uuid.UUID]*tables.Product, len(products))
	for i := range products {
		productMap[products[i].Id] = &products[i]
	}

	var subtotal int64
	itemCount := 0
	orderItems := make([]tables.OrderItem, 0, len(items))

	for i := range items {
		product, ok := productMap[items[i].ProductId]
		if !ok || !product.IsActive {
			return nil, fmt.Errorf("product %s is no longer available", items[i].ProductId)
		}

		if err := os.productService.DecrementStock(ctx, tx, product.Id, items[i].Quantity); err != nil {
			os.logger.Warn("Stock check failed during checkout",
				gecho.Field("product_id", product.Id),
				gecho.Field("quantity", items[i].Quantity))
			return nil, err
		}

		// Charge the current catalog price, not the add-to-cart snapshot
		lineTotal := int64(items[i].Quantity) * product.Price
		subtotal += lineTotal
		itemCount += items[i].Quantity

		orderItems = append(orderItems, tables.OrderItem{
			ProductId:   product.Id,
			ProductName: product.Name,
			ProductSKU:  product.SKU,
			Size:        items[i].Size,
			Color:       items[i].Color,
			Quantity:    items[i].Quantity,
			UnitPrice:   product.Price,
			TotalPrice:  lineTotal,
		})
	}

	summary := lib.ComputeSummary(itemCount, subtotal, os.cfg.Store)

	billing := req.BillingAddress
	if billing.Line1 == "" {
		billing = req.ShippingAddress
	}

	order := &tables.Order{
		UserId:           userId,
		OrderNumber:      lib.GenerateOrderNumber(),
		Status:           tables.OrderStatusPending,
		PaymentStatus:    tables.PaymentStatusPending,
		Subtotal:         summary.Subtotal,
		Tax:              summary.Tax,
		Shipping:         summary.Shipping,
		Total:            summary.Total,
		ShippingAddress:  req.ShippingAddress,
		BillingAddress:   billing,
		PaymentReference: paymentReference,
		PaymentMethod:    req.PaymentMethod,
	}

	if _, err := tx.NewInsert().Model(order).Exec(ctx); err != nil {
		return nil, lib.MapDBError(err)
	}

	for i := range orderItems {
		orderItems[i].OrderId = order.Id
	}
	if _, err := tx.NewInsert().Model(&orderItems).Exec(ctx); err != nil {
		return nil, lib.MapDBError(err)
	}
	order.Items = orderItems

	os.logger.Info("Order created",
		gecho.Field("order_id", order.Id),
		gecho.Field("order_number", order.OrderNumber),
		gecho.Field("total", order.Total),
		gecho.Field("items", len(orderItems)))

	return order, nil
}

func (os *OrderService) GetOrderById(ctx context.Context, orderId uuid.UUID) (*tables.Order, error) {
	order, err := database.Query[tables.Order](os.db).
		Where("id", orderId).
		WhereNull("deleted_at").
		Relation("Items").
		First(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	if order == nil {
		return nil, lib.ErrNotFound
	}
	return order, nil
}

// GetUserOrder returns an order only when it belongs to the given user.
func (os *OrderService) GetUserOrder(ctx context.Context, userId uuid.UUID, orderNumber string) (*tables.Order, error) {
	order, err := database.Query[tables.Order](os.db).
		Where("order_number", orderNumber).
		Where("user_id", userId).
		WhereNull("deleted_at").
		Relation("Items").
		First(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	if order == nil {
		return nil, lib.ErrNotFound
	}
	return order, nil
}

func (os *OrderService) GetOrderByOrderNumber(ctx context.Context, orderNumber string) (*tables.Order, error) {
	order, err := database.Query[tables.Order](os.db).
		Where("order_number", orderNumber).
		WhereNull("deleted_at").
		Relation("Items").
		First(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	if order == nil {
		return nil, lib.ErrNotFound
	}
	return order, nil
}

// GetOrdersByUserId returns the user's order history, newest first.
func (os *OrderService) GetOrdersByUserId(ctx context.Context, userId uuid.UUID, page, pageSize int) (*database.PaginationResult[tables.Order], error) {
	query := database.Query[tables.Order](os.db).
		Where("user_id", userId).
		WhereNull("deleted_at").
		Relation("Items").
		OrderBy("created_at", database.DESC)

	result, err := database.Paginate(query, ctx, page, pageSize)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	return result, nil
}

// GetAllOrders is the admin listing with optional status filters.
func (os *OrderService) GetAllOrders(ctx context.Context, status *tables.OrderStatus, paymentStatus *tables.PaymentStatus, page, pageSize int) (*database.PaginationResult[tables.Order], error) {
	query := database.Query[tables.Order](os.db).
		WhereNull("deleted_at").
		Relation("Items").
		OrderBy("created_at", database.DESC)

	if status != nil {
		query = query.Where("status", *status)
	}
	if paymentStatus != nil {
		query = query.Where("payment_status", *paymentStatus)
	}

	result, err := database.Paginate(query, ctx, page, pageSize)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	return result, nil
}

// UpdateOrderStatus moves an order along the fulfilment pipeline. Invalid
// transitions are rejected, shipped/delivered timestamps are stamped, and the
// customer is notified asynchronously.
func (os *OrderService) UpdateOrderStatus(ctx context.Context, orderId uuid.UUID, req *structs.UpdateOrderStatusRequest) (*tables.Order, error) {
	order, err := os.GetOrderById(ctx, orderId)
	if err != nil {
		return nil, err
	}

	newStatus := tables.OrderStatus(req.Status)
	if !isValidStatusTransition(order.Status, newStatus) {
		os.logger.Warn("Rejected status transition",
			gecho.Field("order_id", orderId),
			gecho.Field("from", order.Status),
			gecho.Field("to", newStatus))
		return nil, fmt.Errorf("%w: %s to %s", lib.ErrInvalidTransition, order.Status, newStatus)
	}

	now := time.Now()
	updates := map[string]any{
		"status":     newStatus,
		"updated_at": now,
	}
	switch newStatus {
	case tables.OrderStatusShipped:
		updates["shipped_at"] = now
		if req.TrackingNumber != "" {
			updates["tracking_number"] = req.TrackingNumber
		}
	case tables.OrderStatusDelivered:
		updates["delivered_at"] = now
	}

	err = database.Transaction(ctx, os.db, func(tx bun.Tx) error {
		if _, txErr := database.QueryTx[tables.Order](tx).Where("id", orderId).Update(ctx, updates); txErr != nil {
			return txErr
		}

		// Cancelling an unpaid order puts the reserved stock back
		if newStatus == tables.OrderStatusCancelled && order.PaymentStatus != tables.PaymentStatusPaid {
			for i := range order.Items {
				if txErr := os.productService.RestoreStock(ctx, tx, order.Items[i].ProductId, order.Items[i].Quantity); txErr != nil {
					return txErr
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, lib.MapDBError(err)
	}

	oldStatus := order.Status
	order.Status = newStatus
	order.UpdatedAt = now
	if newStatus == tables.OrderStatusShipped {
		order.ShippedAt = &now
		if req.TrackingNumber != "" {
			order.TrackingNumber = req.TrackingNumber
		}
	}
	if newStatus == tables.OrderStatusDelivered {
		order.DeliveredAt = &now
	}

	os.logger.Info("Order status updated",
		gecho.Field("order_id", orderId),
		gecho.Field("old_status", oldStatus),
		gecho.Field("new_status", newStatus))

	go os.notificationService.NotifyOrderStatusChanged(order, req.Location, req.Description)

	return order, nil
}

// CancelOrder lets the customer cancel their own unpaid order.
func (os *OrderService) CancelOrder(ctx context.Context, userId uuid.UUID, orderNumber string) (*tables.Order, error) {
	order, err := os.GetUserOrder(ctx, userId, orderNumber)
	if err != nil {
		return nil, err
	}

	if !order.IsCancellable() {
		return nil, lib.ErrOrderNotCancellable
	}

	return os.UpdateOrderStatus(ctx, order.Id, &structs.UpdateOrderStatusRequest{
		Status: string(tables.OrderStatusCancelled),
	})
}

// OrderTracking is the customer-facing tracking payload.
type OrderTracking struct {
	OrderNumber    string             `json:"order_number"`
	Status         tables.OrderStatus `json:"status"`
	Progress       int                `json:"progress"`
	TrackingNumber string             `json:"tracking_number,omitempty"`
	ShippedAt      *time.Time         `json:"shipped_at,omitempty"`
	DeliveredAt    *time.Time         `json:"delivered_at,omitempty"`
	EstimatedDays  int                `json:"estimated_days,omitempty"`
}

// TrackOrder returns the tracking view for one of the user's orders.
func (os *OrderService) TrackOrder(ctx context.Context, userId uuid.UUID, orderNumber string) (*OrderTracking, error) {
	order, err := os.GetUserOrder(ctx, userId, orderNumber)
	if err != nil {
		return nil, err
	}

	tracking := &OrderTracking{
		OrderNumber:    order.OrderNumber,
		Status:         order.Status,
		Progress:       order.ProgressPercentage(),
		TrackingNumber: order.TrackingNumber,
		ShippedAt:      order.ShippedAt,
		DeliveredAt:    order.DeliveredAt,
	}
	if order.Status == tables.OrderStatusPending || order.Status == tables.OrderStatusProcessing {
		tracking.EstimatedDays = 5
	}
	return tracking, nil
}

// SoftDeleteOrder hides an order without destroying payment history.
func (os *OrderService) SoftDeleteOrder(ctx context.Context, orderId uuid.UUID) error {
	_, err := database.Query[tables.Order](os.db).Where("id", orderId).Update(ctx, map[string]any{
		"deleted_at": time.Now(),
	})
	if err != nil {
		return lib.MapDBError(err)
	}

	os.logger.Info("Order soft deleted", gecho.Field("order_id", orderId))
	return nil
}

// isValidStatusTransition validates if a status transition is allowed
func isValidStatusTransition(current, next tables.OrderStatus) bool {
	transitions := map[tables.OrderStatus][]tables.OrderStatus{
		tables.OrderStatusPending: {
			tables.OrderStatusProcessing,
			tables.OrderStatusCancelled,
		},
		tables.OrderStatusProcessing: {
			tables.OrderStatusShipped,
			tables.OrderStatusCancelled,
		},
		tables.OrderStatusShipped: {
			tables.OrderStatusDelivered,
		},
		tables.OrderStatusDelivered: {},
		tables.OrderStatusCancelled: {},
	}

	allowedNextStates, exists := transitions[current]
	if !exists {
		return false
	}

	return slices.Contains(allowedNextStates, next)
}
