package application

import (
	"context"
	"net/url"
	"strconv"

	"github.com/mahabubulhasibshawon/dairy-admin/internal/domain"
)

type CustomerFilter struct {
	Search string
	AreaID int64
	Page   int64
}

func (f CustomerFilter) values() url.Values {
	q := url.Values{}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.AreaID > 0 {
		q.Set("area_id", strconv.FormatInt(f.AreaID, 10))
	}
	if f.Page > 0 {
		q.Set("page", strconv.FormatInt(f.Page, 10))
	}
	return q
}

type CustomerService struct {
	customers resource[domain.Customer]
}

func NewCustomerService(g *Gateway) *CustomerService {
	return &CustomerService{customers: newResource[domain.Customer](g, "/customers")}
}

func (s *CustomerService) List(ctx context.Context, f CustomerFilter) ([]domain.Customer, error) {
	return s.customers.list(ctx, f.values())
}

func (s *CustomerService) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return s.customers.get(ctx, id)
}

func (s *CustomerService) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	return s.customers.create(ctx, c)
}

func (s *CustomerService) Update(ctx context.Context, id int64, c *domain.Customer) (*domain.Customer, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return s.customers.update(ctx, id, c)
}

func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	if err := requireID(id); err != nil {
		return err
	}
	return s.customers.remove(ctx, id)
}

// Wallet lists the wallet ledger of a customer, newest first as the API sends it.
func (s *CustomerService) Wallet(ctx context.Context, id int64) ([]domain.WalletTransaction, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	var out []domain.WalletTransaction
	if err := s.customers.g.api.Get(ctx, s.customers.itemPath(id)+"/wallet", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type SubscriptionService struct {
	subs resource[domain.Subscription]
}

func NewSubscriptionService(g *Gateway) *SubscriptionService {
	return &SubscriptionService{subs: newResource[domain.Subscription](g, "/subscriptions")}
}

func (s *SubscriptionService) List(ctx context.Context, customerID int64, status string) ([]domain.Subscription, error) {
	q := url.Values{}
	if customerID > 0 {
		q.Set("customer_id", strconv.FormatInt(customerID, 10))
	}
	if status != "" {
		q.Set("status", status)
	}
	return s.subs.list(ctx, q)
}

func (s *SubscriptionService) Get(ctx context.Context, id int64) (*domain.Subscription, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return s.subs.get(ctx, id)
}

func (s *SubscriptionService) Create(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error) {
	return s.subs.create(ctx, sub)
}

func (s *SubscriptionService) Update(ctx context.Context, id int64, sub *domain.Subscription) (*domain.Subscription, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return s.subs.update(ctx, id, sub)
}

func (s *SubscriptionService) Delete(ctx context.Context, id int64) error {
	if err := requireID(id); err != nil {
		return err
	}
	return s.subs.remove(ctx, id)
}

// SetStatus pauses, resumes or cancels a subscription.
func (s *SubscriptionService) SetStatus(ctx context.Context, id int64, status string) (*domain.Subscription, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	switch status {
	case "active", "paused", "cancelled":
	default:
		return nil, &domain.ValidationError{Fields: []domain.FieldError{{Field: "status", Rule: "oneof"}}}
	}
	return s.subs.patch(ctx, id, map[string]any{"status": status})
}

type TrialService struct {
	trials resource[domain.Trial]
}

func NewTrialService(g *Gateway) *TrialService {
	return &TrialService{trials: newResource[domain.Trial](g, "/trials")}
}

func (s *TrialService) List(ctx context.Context, customerID int64) ([]domain.Trial, error) {
	q := url.Values{}
	if customerID > 0 {
		q.Set("customer_id", strconv.FormatInt(customerID, 10))
	}
	return s.trials.list(ctx, q)
}

func (s *TrialService) Create(ctx context.Context, t *domain.Trial) (*domain.Trial, error) {
	return s.trials.create(ctx, t)
}

func (s *TrialService) Update(ctx context.Context, id int64, t *domain.Trial) (*domain.Trial, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return s.trials.update(ctx, id, t)
}

func (s *TrialService) Delete(ctx context.Context, id int64) error {
	if err := requireID(id); err != nil {
		return err
	}
	return s.trials.remove(ctx, id)
}
