package ports

import (
	"context"
	"net/url"
	"time"

	"github.com/mahabubulhasibshawon/dairy-admin/internal/domain"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=ports

// BackendPort is the REST API the back office drives. A nil out discards the
// response body.
type BackendPort interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Patch(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
	PostMultipart(ctx context.Context, path string, form *domain.Form, out any) error
	PutMultipart(ctx context.Context, path string, form *domain.Form, out any) error
}

type TokenStorePort interface {
	GetToken(ctx context.Context, sessionID string) (string, error)
	SetToken(ctx context.Context, sessionID, token string, ttl time.Duration) error
	DeleteToken(ctx context.Context, sessionID string) error
}

type CachePort interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value interface{}) error
	DeleteByPrefix(ctx context.Context, prefix string) error
	Ping(ctx context.Context) error
}

type JournalPort interface {
	Record(ctx context.Context, a *domain.Activity) error
	ListActivity(ctx context.Context, limit, page int64) ([]*domain.Activity, int64, error)
}
