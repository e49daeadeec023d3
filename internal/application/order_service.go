package application

import (
	"context"
	"net/url"
	"strconv"

	"github.com/mahabubulhasibshawon/dairy-admin/internal/domain"
)

type OrderFilter struct {
	Date       string
	Status     string
	CustomerID int64
}

type OrderService struct {
	orders resource[domain.Order]
}

func NewOrderService(g *Gateway) *OrderService {
	return &OrderService{orders: newResource[domain.Order](g, "/orders")}
}

func (s *OrderService) List(ctx context.Context, f OrderFilter) ([]domain.Order, error) {
	q := url.Values{}
	if f.Date != "" {
		q.Set("date", f.Date)
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.CustomerID > 0 {
		q.Set("customer_id", strconv.FormatInt(f.CustomerID, 10))
	}
	return s.orders.list(ctx, q)
}

func (s *OrderService) Get(ctx context.Context, id int64) (*domain.Order, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return s.orders.get(ctx, id)
}

func (s *OrderService) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	return s.orders.create(ctx, o)
}

func (s *OrderService) Update(ctx context.Context, id int64, o *domain.Order) (*domain.Order, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return s.orders.update(ctx, id, o)
}

func (s *OrderService) Cancel(ctx context.Context, id int64) (*domain.Order, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return s.orders.patch(ctx, id, map[string]any{"status": "cancelled"})
}
