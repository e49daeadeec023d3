package application

import (
	"context"

	"github.com/mahabubulhasibshawon/dairy-admin/internal/domain"
)

// AreaService manages hubs, areas and subareas. Lists are cached as reference
// data.
type AreaService struct {
	g        *Gateway
	hubs     resource[domain.Hub]
	areas    resource[domain.Area]
	subareas resource[domain.Subarea]
}

func NewAreaService(g *Gateway) *AreaService {
	return &AreaService{
		g:        g,
		hubs:     newResource[domain.Hub](g, "/hubs"),
		areas:    newResource[domain.Area](g, "/areas"),
		subareas: newResource[domain.Subarea](g, "/subareas"),
	}
}

func (s *AreaService) ListHubs(ctx context.Context) ([]domain.Hub, error) {
	return cachedList(ctx, s.g, "hubs", func(ctx context.Context) ([]domain.Hub, error) {
		return s.hubs.list(ctx, nil)
	})
}

func (s *AreaService) ListAreas(ctx context.Context) ([]domain.Area, error) {
	return cachedList(ctx, s.g, "areas", func(ctx context.Context) ([]domain.Area, error) {
		return s.areas.list(ctx, nil)
	})
}

func (s *AreaService) ListSubareas(ctx context.Context) ([]domain.Subarea, error) {
	return cachedList(ctx, s.g, "subareas", func(ctx context.Context) ([]domain.Subarea, error) {
		return s.subareas.list(ctx, nil)
	})
}

func (s *AreaService) CreateHub(ctx context.Context, h *domain.Hub) (*domain.Hub, error) {
	return invalidating(ctx, s.g, func() (*domain.Hub, error) { return s.hubs.create(ctx, h) })
}

func (s *AreaService) UpdateHub(ctx context.Context, id int64, h *domain.Hub) (*domain.Hub, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return invalidating(ctx, s.g, func() (*domain.Hub, error) { return s.hubs.update(ctx, id, h) })
}

func (s *AreaService) DeleteHub(ctx context.Context, id int64) error {
	return s.removeRef(ctx, id, s.hubs.remove)
}

func (s *AreaService) CreateArea(ctx context.Context, a *domain.Area) (*domain.Area, error) {
	return invalidating(ctx, s.g, func() (*domain.Area, error) { return s.areas.create(ctx, a) })
}

func (s *AreaService) UpdateArea(ctx context.Context, id int64, a *domain.Area) (*domain.Area, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return invalidating(ctx, s.g, func() (*domain.Area, error) { return s.areas.update(ctx, id, a) })
}

func (s *AreaService) DeleteArea(ctx context.Context, id int64) error {
	return s.removeRef(ctx, id, s.areas.remove)
}

func (s *AreaService) CreateSubarea(ctx context.Context, a *domain.Subarea) (*domain.Subarea, error) {
	return invalidating(ctx, s.g, func() (*domain.Subarea, error) { return s.subareas.create(ctx, a) })
}

func (s *AreaService) UpdateSubarea(ctx context.Context, id int64, a *domain.Subarea) (*domain.Subarea, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return invalidating(ctx, s.g, func() (*domain.Subarea, error) { return s.subareas.update(ctx, id, a) })
}

func (s *AreaService) DeleteSubarea(ctx context.Context, id int64) error {
	return s.removeRef(ctx, id, s.subareas.remove)
}

func (s *AreaService) removeRef(ctx context.Context, id int64, remove func(context.Context, int64) error) error {
	if err := requireID(id); err != nil {
		return err
	}
	if err := remove(ctx, id); err != nil {
		return err
	}
	s.g.invalidateRefs(ctx)
	return nil
}

func invalidating[T any](ctx context.Context, g *Gateway, write func() (*T, error)) (*T, error) {
	out, err := write()
	if err != nil {
		return nil, err
	}
	g.invalidateRefs(ctx)
	return out, nil
}

type PartnerService struct {
	partners resource[domain.DeliveryPartner]
}

func NewPartnerService(g *Gateway) *PartnerService {
	return &PartnerService{partners: newResource[domain.DeliveryPartner](g, "/delivery_boys")}
}

func (s *PartnerService) List(ctx context.Context) ([]domain.DeliveryPartner, error) {
	return s.partners.list(ctx, nil)
}

func (s *PartnerService) Create(ctx context.Context, p *domain.DeliveryPartner) (*domain.DeliveryPartner, error) {
	return s.partners.create(ctx, p)
}

func (s *PartnerService) Update(ctx context.Context, id int64, p *domain.DeliveryPartner) (*domain.DeliveryPartner, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return s.partners.update(ctx, id, p)
}

func (s *PartnerService) Delete(ctx context.Context, id int64) error {
	if err := requireID(id); err != nil {
		return err
	}
	return s.partners.remove(ctx, id)
}
