package application

import (
	"context"
	"errors"
	"math"

	"github.com/mahabubulhasibshawon/dairy-admin/internal/domain"
	"github.com/mahabubulhasibshawon/dairy-admin/internal/ports"
)

const (
	defaultActivityLimit = 20
	maxActivityLimit     = 100
)

type ActivityPage struct {
	Activities  []*domain.Activity `json:"activities"`
	Total       int64              `json:"total"`
	CurrentPage int64              `json:"current_page"`
	PerPage     int64              `json:"per_page"`
	TotalInPage int64              `json:"total_in_page"`
	LastPage    int64              `json:"last_page"`
}

// ActivityService pages through the mutation journal.
type ActivityService struct {
	journal ports.JournalPort
}

func NewActivityService(journal ports.JournalPort) *ActivityService {
	return &ActivityService{journal: journal}
}

func (s *ActivityService) List(ctx context.Context, limit, page int64) (*ActivityPage, error) {
	if s.journal == nil {
		return nil, errors.New("activity journal is not configured")
	}
	switch {
	case limit < 1:
		limit = defaultActivityLimit
	case limit > maxActivityLimit:
		limit = maxActivityLimit
	}
	if page < 1 {
		page = 1
	}
	items, total, err := s.journal.ListActivity(ctx, limit, page)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*domain.Activity{}
	}
	return &ActivityPage{
		Activities:  items,
		Total:       total,
		CurrentPage: page,
		PerPage:     limit,
		TotalInPage: int64(len(items)),
		LastPage:    int64(math.Ceil(float64(total) / float64(limit))),
	}, nil
}
