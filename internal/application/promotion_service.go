package application

import (
	"context"

	"github.com/mahabubulhasibshawon/dairy-admin/internal/domain"
)

type CouponService struct {
	coupons resource[domain.Coupon]
}

func NewCouponService(g *Gateway) *CouponService {
	return &CouponService{coupons: newResource[domain.Coupon](g, "/coupons")}
}

func (s *CouponService) List(ctx context.Context) ([]domain.Coupon, error) {
	return s.coupons.list(ctx, nil)
}

func (s *CouponService) Create(ctx context.Context, c *domain.Coupon) (*domain.Coupon, error) {
	return s.coupons.create(ctx, c)
}

func (s *CouponService) Update(ctx context.Context, id int64, c *domain.Coupon) (*domain.Coupon, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return s.coupons.update(ctx, id, c)
}

func (s *CouponService) Delete(ctx context.Context, id int64) error {
	if err := requireID(id); err != nil {
		return err
	}
	return s.coupons.remove(ctx, id)
}

// OfferService manages offers; offers carry a banner so writes are multipart.
type OfferService struct {
	offers resource[domain.Offer]
}

func NewOfferService(g *Gateway) *OfferService {
	return &OfferService{offers: newResource[domain.Offer](g, "/offers")}
}

func (s *OfferService) List(ctx context.Context) ([]domain.Offer, error) {
	return s.offers.list(ctx, nil)
}

func (s *OfferService) Create(ctx context.Context, o *domain.Offer, banner *domain.FilePart) (*domain.Offer, error) {
	return s.offers.createForm(ctx, o, banner)
}

func (s *OfferService) Update(ctx context.Context, id int64, o *domain.Offer, banner *domain.FilePart) (*domain.Offer, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return s.offers.updateForm(ctx, id, o, banner)
}

func (s *OfferService) Delete(ctx context.Context, id int64) error {
	if err := requireID(id); err != nil {
		return err
	}
	return s.offers.remove(ctx, id)
}
