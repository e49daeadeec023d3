package application

import (
	"context"
	"net/url"

	"github.com/mahabubulhasibshawon/dairy-admin/internal/domain"
)

type ComplaintService struct {
	complaints resource[domain.Complaint]
}

func NewComplaintService(g *Gateway) *ComplaintService {
	return &ComplaintService{complaints: newResource[domain.Complaint](g, "/complaints")}
}

func (s *ComplaintService) List(ctx context.Context, status string) ([]domain.Complaint, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	return s.complaints.list(ctx, q)
}

func (s *ComplaintService) Get(ctx context.Context, id int64) (*domain.Complaint, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return s.complaints.get(ctx, id)
}

// Update changes status and resolution; the rest of the complaint belongs to
// the customer.
func (s *ComplaintService) Update(ctx context.Context, id int64, c *domain.Complaint) (*domain.Complaint, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return s.complaints.update(ctx, id, &domain.Complaint{Status: c.Status, Resolution: c.Resolution})
}
