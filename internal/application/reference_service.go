package application

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mahabubulhasibshawon/dairy-admin/internal/domain"
)

// ReferenceService loads the lookup lists that add/edit forms need.
type ReferenceService struct {
	customers *CustomerService
	catalogue *CatalogueService
	areas     *AreaService
}

func NewReferenceService(customers *CustomerService, catalogue *CatalogueService, areas *AreaService) *ReferenceService {
	return &ReferenceService{customers: customers, catalogue: catalogue, areas: areas}
}

// Load fetches customers, products and areas in parallel. The first failure
// cancels the others.
func (s *ReferenceService) Load(ctx context.Context) (*domain.ReferenceData, error) {
	var out domain.ReferenceData
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := s.customers.List(ctx, CustomerFilter{})
		out.Customers = list
		return err
	})
	g.Go(func() error {
		list, err := s.catalogue.ListProducts(ctx)
		out.Products = list
		return err
	})
	g.Go(func() error {
		list, err := s.areas.ListAreas(ctx)
		out.Areas = list
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
