package application

import (
	"context"
	"fmt"

	"github.com/mahabubulhasibshawon/dairy-admin/internal/domain"
)

// CatalogueService manages products and their variants. Product lists are
// served from the reference cache and every change drops it.
type CatalogueService struct {
	g        *Gateway
	products resource[domain.Product]
}

func NewCatalogueService(g *Gateway) *CatalogueService {
	return &CatalogueService{g: g, products: newResource[domain.Product](g, "/products")}
}

func (s *CatalogueService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return cachedList(ctx, s.g, "products", func(ctx context.Context) ([]domain.Product, error) {
		return s.products.list(ctx, nil)
	})
}

func (s *CatalogueService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return s.products.get(ctx, id)
}

func (s *CatalogueService) CreateProduct(ctx context.Context, p *domain.Product, image *domain.FilePart) (*domain.Product, error) {
	out, err := s.products.createForm(ctx, p, image)
	if err == nil {
		s.g.invalidateRefs(ctx)
	}
	return out, err
}

func (s *CatalogueService) UpdateProduct(ctx context.Context, id int64, p *domain.Product, image *domain.FilePart) (*domain.Product, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	out, err := s.products.updateForm(ctx, id, p, image)
	if err == nil {
		s.g.invalidateRefs(ctx)
	}
	return out, err
}

func (s *CatalogueService) DeleteProduct(ctx context.Context, id int64) error {
	if err := requireID(id); err != nil {
		return err
	}
	err := s.products.remove(ctx, id)
	if err == nil {
		s.g.invalidateRefs(ctx)
	}
	return err
}

func (s *CatalogueService) variants(productID int64) resource[domain.Variant] {
	return newResource[domain.Variant](s.g, fmt.Sprintf("/products/%d/variants", productID))
}

func (s *CatalogueService) ListVariants(ctx context.Context, productID int64) ([]domain.Variant, error) {
	if err := requireID(productID); err != nil {
		return nil, err
	}
	return s.variants(productID).list(ctx, nil)
}

func (s *CatalogueService) CreateVariant(ctx context.Context, productID int64, v *domain.Variant) (*domain.Variant, error) {
	if err := requireID(productID); err != nil {
		return nil, err
	}
	v.ProductID = productID
	out, err := s.variants(productID).create(ctx, v)
	if err == nil {
		s.g.invalidateRefs(ctx)
	}
	return out, err
}

func (s *CatalogueService) UpdateVariant(ctx context.Context, productID, id int64, v *domain.Variant) (*domain.Variant, error) {
	if err := requireID(productID); err != nil {
		return nil, err
	}
	if err := requireID(id); err != nil {
		return nil, err
	}
	v.ProductID = productID
	out, err := s.variants(productID).update(ctx, id, v)
	if err == nil {
		s.g.invalidateRefs(ctx)
	}
	return out, err
}

func (s *CatalogueService) DeleteVariant(ctx context.Context, productID, id int64) error {
	if err := requireID(productID); err != nil {
		return err
	}
	if err := requireID(id); err != nil {
		return err
	}
	err := s.variants(productID).remove(ctx, id)
	if err == nil {
		s.g.invalidateRefs(ctx)
	}
	return err
}
