package internal

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/theplant/luhn"

	"github.com/DrGermanius/Shopmart/internal/model"
)

const orderNumberAttempts = 3

var statusMessages = map[string]string{
	model.OrderStatusPending:    "We have received your order.",
	model.OrderStatusConfirmed:  "Your order has been confirmed.",
	model.OrderStatusProcessing: "Your order is being prepared.",
	model.OrderStatusShipped:    "Your order is on its way.",
	model.OrderStatusCancelled:  "Your order has been cancelled.",
	model.OrderStatusDelivered:  "Your order has been delivered.",
}

func (s Service) CreateOrder(ctx context.Context, uid int, in model.CreateOrderInput) (model.Order, error) {
	if err := validate(s.validate, in); err != nil {
		return model.Order{}, err
	}

	ids := make([]int, 0, len(in.Items))
	seen := make(map[int]bool, len(in.Items))
	for _, it := range in.Items {
		if !seen[it.ProductID] {
			seen[it.ProductID] = true
			ids = append(ids, it.ProductID)
		}
	}

	products, err := s.Repository.GetProductsByIDs(ctx, ids)
	if err != nil {
		return model.Order{}, err
	}
	byID := make(map[int]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	now := s.now().UTC()
	o := model.Order{
		UserID:          uid,
		Status:          model.OrderStatusPending,
		PaymentStatus:   model.PaymentStatusPending,
		TotalAmount:     decimal.Zero,
		ShippingAddress: in.ShippingAddress,
		PaymentMethod:   in.PaymentMethod,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	for _, it := range in.Items {
		p, ok := byID[it.ProductID]
		if !ok {
			return model.Order{}, ErrProductNotFound
		}
		total := p.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		o.Items = append(o.Items, model.OrderItem{Product: p, Quantity: it.Quantity, Total: total})
		o.TotalAmount = o.TotalAmount.Add(total)
	}

	for attempt := 1; ; attempt++ {
		o.ID = uuid.NewString()
		o.OrderNumber = newOrderNumber(now)

		err = s.Repository.CreateOrder(ctx, o)
		if errors.Is(err, ErrOrderNumberConflict) && attempt < orderNumberAttempts {
			s.logger.Warnf("CreateOrder: order number %s taken, retrying", o.OrderNumber)
			continue
		}
		if err != nil {
			return model.Order{}, err
		}
		return o, nil
	}
}

func (s Service) GetOrders(ctx context.Context, uid int) ([]model.Order, error) {
	orders, err := s.Repository.GetOrders(ctx, uid)
	if err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return nil, ErrNoRecords
	}
	return orders, nil
}

// GetOrder hides orders of other users behind ErrOrderNotFound.
func (s Service) GetOrder(ctx context.Context, uid int, number string) (model.OrderTracking, error) {
	o, err := s.Repository.GetOrderByNumber(ctx, number)
	if err != nil {
		return model.OrderTracking{}, err
	}

	if o.UserID != uid {
		return model.OrderTracking{}, ErrOrderNotFound
	}
	return trackingView(o), nil
}

// TrackOrder is public, so it never exposes who ordered or where it goes.
func (s Service) TrackOrder(ctx context.Context, ref string) (model.PublicTracking, error) {
	if ref == "" {
		return model.PublicTracking{}, ErrOrderNotFound
	}

	o, err := s.Repository.FindOrder(ctx, ref)
	if err != nil {
		return model.PublicTracking{}, err
	}

	t := trackingView(o)
	return model.PublicTracking{
		Order:              model.NewPublicOrder(o),
		Timeline:           t.Timeline,
		StatusColor:        t.StatusColor,
		PaymentStatusColor: t.PaymentStatusColor,
	}, nil
}

// UpdateOrderStatus accepts any known status; transition legality is the
// caller's business. Merchants only reach orders holding their products.
func (s Service) UpdateOrderStatus(ctx context.Context, uid int, role, number string, in model.StatusUpdateInput) (model.Order, error) {
	ch := model.StatusChange{Status: in.Status, TrackingNumber: in.TrackingNumber}
	switch role {
	case model.RoleAdmin:
	case model.RoleMerchant:
		ch.MerchantID = uid
	default:
		return model.Order{}, ErrForbidden
	}

	if err := validate(s.validate, in); err != nil {
		return model.Order{}, err
	}
	if !IsKnownStatus(in.Status) {
		return model.Order{}, ErrInvalidStatus
	}

	ch.At = s.now().UTC()
	o, err := s.Repository.UpdateOrderStatus(ctx, number, ch)
	if err != nil {
		return model.Order{}, err
	}

	s.statusChanged(ctx, o)
	return o, nil
}

// ApplyShipment is the carrier callback. A late report for an order that was
// cancelled or shipped again under another tracking number changes nothing.
func (s Service) ApplyShipment(ctx context.Context, r model.ShipmentRequest, sh model.Shipment) error {
	if sh.Status != model.ShipmentStatusDelivered {
		return nil
	}

	at := s.now().UTC()
	if sh.DeliveredAt != nil {
		at = sh.DeliveredAt.UTC()
	}

	o, err := s.Repository.MarkDelivered(ctx, r.OrderNumber, r.TrackingNumber, at)
	if errors.Is(err, ErrOrderNotFound) {
		s.logger.Infof("ApplyShipment: order %s is no longer shipped under %s, skipped", r.OrderNumber, r.TrackingNumber)
		return nil
	}
	if err != nil {
		return err
	}

	s.statusChanged(ctx, o)
	return nil
}

// ResumeShipments queues every order still waiting on the carrier, so polling
// survives a restart.
func (s Service) ResumeShipments(ctx context.Context) (int, error) {
	rs, err := s.Repository.GetShippedOrders(ctx)
	if err != nil {
		return 0, err
	}

	s.Carrier.Resume(ctx, rs)
	return len(rs), nil
}

func (s Service) ListProducts(ctx context.Context, merchantID int) ([]model.Product, error) {
	ps, err := s.Repository.ListProducts(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	if ps == nil {
		ps = []model.Product{}
	}
	return ps, nil
}

func (s Service) CreateProduct(ctx context.Context, uid int, in model.ProductInput) (model.Product, error) {
	if err := validate(s.validate, in); err != nil {
		return model.Product{}, err
	}

	p := model.Product{MerchantID: uid, Title: in.Title, Image: in.Image, Price: in.Price}
	id, err := s.Repository.CreateProduct(ctx, p)
	if err != nil {
		return model.Product{}, err
	}
	p.ID = id
	return p, nil
}

// statusChanged fans a status change out to the owner, the broker and the
// carrier poller. Failures here are logged, the update itself already happened.
func (s Service) statusChanged(ctx context.Context, o model.Order) {
	n := model.Notification{
		ID:        uuid.NewString(),
		UserID:    o.UserID,
		Title:     fmt.Sprintf("Order %s %s", o.OrderNumber, o.Status),
		Body:      statusMessages[o.Status],
		CreatedAt: o.UpdatedAt,
	}
	if err := s.Repository.CreateNotification(ctx, n); err != nil {
		s.logger.Errorf("CreateNotification error: %s", err.Error())
	} else {
		s.Hub.Publish(o.UserID, model.Event{Type: model.EventNotification, Payload: n})
	}
	s.Hub.Publish(o.UserID, model.Event{Type: model.EventOrderStatus, Payload: trackingView(o)})

	err := s.Publisher.PublishOrderStatus(ctx, model.OrderStatusEvent{
		OrderID:     o.ID,
		OrderNumber: o.OrderNumber,
		UserID:      o.UserID,
		Status:      o.Status,
		ChangedAt:   o.UpdatedAt,
	})
	if err != nil {
		s.logger.Errorf("PublishOrderStatus error: %s", err.Error())
	}

	if o.Status == model.OrderStatusShipped && o.TrackingNumber != "" {
		s.Carrier.SendToQueue(model.ShipmentRequest{OrderNumber: o.OrderNumber, TrackingNumber: o.TrackingNumber})
	}
}

func trackingView(o model.Order) model.OrderTracking {
	return model.OrderTracking{
		Order:              o,
		Timeline:           DeriveTimeline(o),
		StatusColor:        StatusColor(o.Status),
		PaymentStatusColor: PaymentStatusColor(o.PaymentStatus),
	}
}

// newOrderNumber appends a Luhn check digit to a day prefix and nine random digits.
func newOrderNumber(now time.Time) string {
	base := (now.YearDay()+100)*1e9 + rand.Intn(1e9)
	return strconv.Itoa(base*10 + luhn.CalculateLuhn(base))
}

func ValidOrderNumber(number string) bool {
	n, err := strconv.Atoi(number)
	if err != nil || n <= 0 {
		return false
	}
	return luhn.Valid(n)
}
