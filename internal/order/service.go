package order

import (
	"context"
	"fmt"
	"time"

	"locodhaasu-be/internal/logger"
	"locodhaasu-be/internal/notification"

	"go.uber.org/zap"
)

// AdminContacts is where new-order alerts go.
type AdminContacts struct {
	Phone string
	Email string
}

type ListQuery struct {
	Status string
	Zone   string
	Limit  int
	Offset int
}

type ListResult struct {
	Orders  []*Order `json:"orders"`
	Total   int      `json:"total"`
	Limit   int      `json:"limit"`
	Offset  int      `json:"offset"`
	Message string   `json:"message,omitempty"`
}

type DashboardStats struct {
	TotalOrders     int    `json:"totalOrders"`
	PendingOrders   int    `json:"pendingOrders"`
	CompletedOrders int    `json:"completedOrders"`
	TotalRevenue    string `json:"totalRevenue"`
}

type Service interface {
	Create(ctx context.Context, input CreateOrderInput) (*Order, error)
	List(ctx context.Context, q ListQuery) (*ListResult, error)
	Get(ctx context.Context, orderID string) (*Order, error)
	UpdateStatus(ctx context.Context, orderID string, status Status) error
	Stats(ctx context.Context) (*DashboardStats, error)
}

// service runs the intake and status pipelines. repo may be nil: the store
// is optional and its absence degrades persistence, never order intake.
type service struct {
	repo     Repository
	notifier notification.Notifier
	admin    AdminContacts
}

func NewService(repo Repository, notifier notification.Notifier, admin AdminContacts) Service {
	return &service{
		repo:     repo,
		notifier: notifier,
		admin:    admin,
	}
}

func (s *service) Create(ctx context.Context, input CreateOrderInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateOrder"),
	)

	if input.Customer.Name == "" || input.Customer.Phone == "" || len(input.Items) == 0 {
		log.Warn("order rejected by validation",
			zap.Bool("has_name", input.Customer.Name != ""),
			zap.Bool("has_phone", input.Customer.Phone != ""),
			zap.Int("item_count", len(input.Items)),
		)
		return nil, ErrValidation
	}

	now := time.Now()
	o := &Order{
		OrderID:             GenerateOrderID(),
		Customer:            input.Customer,
		Items:               input.Items,
		Delivery:            input.Delivery,
		Total:               input.Total,
		SpecialInstructions: input.SpecialInstructions,
		OrderStatus:         StatusPending,
		PaymentStatus:       PaymentPending,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	log = log.With(zap.String("order_id", o.OrderID))

	if s.repo == nil {
		log.Warn("order store not configured, order logged only",
			zap.String("customer", o.Customer.Name),
			zap.Float64("total", o.Total),
		)
	} else if err := s.repo.Insert(ctx, o); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	s.notifyNewOrder(ctx, o)

	log.Info("order created",
		zap.String("zone", o.Customer.Zone),
		zap.Float64("total", o.Total),
	)
	return o, nil
}

// notifyNewOrder is the intake fan-out: admin SMS, customer SMS, admin
// email, customer email when on file, then push. Each call contains its
// own failures, so one dead channel never blocks the next.
func (s *service) notifyNewOrder(ctx context.Context, o *Order) {
	itemList := ItemSummary(o.Items)

	s.notifier.SendSMS(ctx, s.admin.Phone, adminOrderSMS(o, itemList))
	s.notifier.SendSMS(ctx, o.Customer.Phone, customerOrderSMS(o))

	subject, html := adminOrderEmail(o)
	s.notifier.SendEmail(ctx, s.admin.Email, subject, html)

	if o.Customer.Email != "" {
		subject, html = customerOrderEmail(o)
		s.notifier.SendEmail(ctx, o.Customer.Email, subject, html)
	}

	s.notifier.SendPush(ctx, "New Order Received",
		fmt.Sprintf("%s ordered %s", o.Customer.Name, itemList), o.OrderID)
}

func (s *service) List(ctx context.Context, q ListQuery) (*ListResult, error) {
	if q.Limit <= 0 {
		q.Limit = 50
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	if s.repo == nil {
		return &ListResult{
			Orders:  []*Order{},
			Total:   0,
			Limit:   q.Limit,
			Offset:  q.Offset,
			Message: "order store not configured",
		}, nil
	}

	fetched, err := s.repo.List(ctx, ListFilter{
		Status: Status(q.Status),
		Zone:   q.Zone,
		Fetch:  q.Limit + q.Offset,
	})
	if err != nil {
		return nil, err
	}

	// total counts the fetched batch, not every matching record. The
	// admin dashboard has always been served this number.
	total := len(fetched)

	start := q.Offset
	if start > len(fetched) {
		start = len(fetched)
	}
	end := start + q.Limit
	if end > len(fetched) {
		end = len(fetched)
	}

	return &ListResult{
		Orders: fetched[start:end],
		Total:  total,
		Limit:  q.Limit,
		Offset: q.Offset,
	}, nil
}

func (s *service) Get(ctx context.Context, orderID string) (*Order, error) {
	if s.repo == nil {
		return nil, ErrOrderNotFound
	}
	return s.repo.GetByID(ctx, orderID)
}

func (s *service) UpdateStatus(ctx context.Context, orderID string, status Status) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateOrderStatus"),
		zap.String("order_id", orderID),
		zap.String("status", string(status)),
	)

	if status == "" {
		return ErrStatusRequired
	}
	if !status.Valid() {
		return ErrInvalidStatus
	}
	if s.repo == nil {
		return ErrStoreNotConfigured
	}

	if err := s.repo.UpdateStatus(ctx, orderID, status, time.Now()); err != nil {
		return err
	}

	// Re-read for customer contact details.
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}

	// pending and cancelled transitions stay silent.
	if _, notify := statusMessages[status]; notify {
		s.notifier.SendSMS(ctx, o.Customer.Phone, statusUpdateSMS(orderID, status))

		if o.Customer.Email != "" {
			subject, html := statusUpdateEmail(orderID, status)
			s.notifier.SendEmail(ctx, o.Customer.Email, subject, html)
		}
	}

	log.Info("order status updated")
	return nil
}

func (s *service) Stats(ctx context.Context) (*DashboardStats, error) {
	if s.repo == nil {
		return &DashboardStats{TotalRevenue: "0.00"}, nil
	}

	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, 1)

	orders, err := s.repo.ListCreatedBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return computeStats(orders), nil
}

func computeStats(orders []*Order) *DashboardStats {
	stats := &DashboardStats{TotalOrders: len(orders)}

	var revenue float64
	for _, o := range orders {
		revenue += o.Total

		switch o.OrderStatus {
		case StatusPending, StatusConfirmed, StatusPreparing:
			stats.PendingOrders++
		case StatusDelivered:
			stats.CompletedOrders++
		}
	}

	stats.TotalRevenue = fmt.Sprintf("%.2f", revenue)
	return stats
}
