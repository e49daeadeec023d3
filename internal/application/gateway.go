package application

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/mahabubulhasibshawon/dairy-admin/internal/domain"
	"github.com/mahabubulhasibshawon/dairy-admin/internal/ports"
	"github.com/mahabubulhasibshawon/dairy-admin/pkg/auth"
)

const refPrefix = "ref:"

// Gateway is shared by every screen service: it issues API calls, records
// mutations in the journal and reads cached reference lists. Cache and
// journal may be nil.
type Gateway struct {
	api     ports.BackendPort
	cache   ports.CachePort
	journal ports.JournalPort
	logger  *zap.Logger
	now     func() time.Time
}

func NewGateway(api ports.BackendPort, cache ports.CachePort, journal ports.JournalPort, logger *zap.Logger) *Gateway {
	return &Gateway{api: api, cache: cache, journal: journal, logger: logger, now: time.Now}
}

func (g *Gateway) mutate(ctx context.Context, method, path string, call func() error) error {
	err := call()
	g.record(ctx, method, path, err)
	return err
}

func (g *Gateway) record(ctx context.Context, method, path string, callErr error) {
	if g.journal == nil {
		return
	}
	session, _ := auth.SessionFromContext(ctx)
	a := &domain.Activity{
		SessionID: session.ID,
		Operator:  session.Username,
		Method:    method,
		Path:      path,
		Outcome:   outcome(callErr),
		CreatedAt: g.now().UTC(),
	}
	if err := g.journal.Record(ctx, a); err != nil {
		g.logger.Warn("failed to journal mutation", zap.String("method", method), zap.String("path", path), zap.Error(err))
	}
}

func (g *Gateway) invalidateRefs(ctx context.Context) {
	if g.cache == nil {
		return
	}
	if err := g.cache.DeleteByPrefix(ctx, refPrefix); err != nil {
		g.logger.Warn("failed to invalidate reference cache", zap.Error(err))
	}
}

// cachedList serves a reference list from the cache, filling it on a miss.
func cachedList[T any](ctx context.Context, g *Gateway, key string, fetch func(context.Context) ([]T, error)) ([]T, error) {
	if g.cache != nil {
		if data, err := g.cache.Get(ctx, refPrefix+key); err == nil {
			var out []T
			if err := json.Unmarshal(data, &out); err == nil {
				return out, nil
			}
		}
	}
	out, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	if g.cache != nil {
		if err := g.cache.Set(ctx, refPrefix+key, out); err != nil {
			g.logger.Warn("failed to cache reference list", zap.String("key", key), zap.Error(err))
		}
	}
	return out, nil
}

// resource is one REST collection with the usual screen operations. Every
// mutation is followed by a fresh read of the entity.
type resource[T any] struct {
	g    *Gateway
	path string
}

func newResource[T any](g *Gateway, path string) resource[T] {
	return resource[T]{g: g, path: path}
}

func (r resource[T]) itemPath(id int64) string {
	return r.path + "/" + strconv.FormatInt(id, 10)
}

func (r resource[T]) list(ctx context.Context, query url.Values) ([]T, error) {
	var out []T
	if err := r.g.api.Get(ctx, r.path, query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r resource[T]) get(ctx context.Context, id int64) (*T, error) {
	var out T
	if err := r.g.api.Get(ctx, r.itemPath(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r resource[T]) create(ctx context.Context, v *T) (*T, error) {
	if err := check(v); err != nil {
		return nil, err
	}
	var raw json.RawMessage
	err := r.g.mutate(ctx, http.MethodPost, r.path, func() error {
		return r.g.api.Post(ctx, r.path, v, &raw)
	})
	if err != nil {
		return nil, err
	}
	return r.refetchCreated(ctx, raw)
}

func (r resource[T]) createForm(ctx context.Context, v *T, image *domain.FilePart) (*T, error) {
	if err := check(v); err != nil {
		return nil, err
	}
	form, err := formOf(v, image)
	if err != nil {
		return nil, err
	}
	var raw json.RawMessage
	err = r.g.mutate(ctx, http.MethodPost, r.path, func() error {
		return r.g.api.PostMultipart(ctx, r.path, form, &raw)
	})
	if err != nil {
		return nil, err
	}
	return r.refetchCreated(ctx, raw)
}

func (r resource[T]) refetchCreated(ctx context.Context, raw json.RawMessage) (*T, error) {
	var created struct {
		ID int64 `json:"id"`
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &created); err != nil {
			return nil, fmt.Errorf("%w: decode created %s: %v", domain.ErrRequestFailed, r.path, err)
		}
	}
	if created.ID == 0 {
		return nil, fmt.Errorf("%w: %s returned no id", domain.ErrRequestFailed, r.path)
	}
	return r.get(ctx, created.ID)
}

func (r resource[T]) update(ctx context.Context, id int64, v *T) (*T, error) {
	if err := check(v); err != nil {
		return nil, err
	}
	path := r.itemPath(id)
	err := r.g.mutate(ctx, http.MethodPut, path, func() error {
		return r.g.api.Put(ctx, path, v, nil)
	})
	if err != nil {
		return nil, err
	}
	return r.get(ctx, id)
}

func (r resource[T]) updateForm(ctx context.Context, id int64, v *T, image *domain.FilePart) (*T, error) {
	if err := check(v); err != nil {
		return nil, err
	}
	form, err := formOf(v, image)
	if err != nil {
		return nil, err
	}
	path := r.itemPath(id)
	err = r.g.mutate(ctx, http.MethodPut, path, func() error {
		return r.g.api.PutMultipart(ctx, path, form, nil)
	})
	if err != nil {
		return nil, err
	}
	return r.get(ctx, id)
}

func (r resource[T]) patch(ctx context.Context, id int64, fields map[string]any) (*T, error) {
	path := r.itemPath(id)
	err := r.g.mutate(ctx, http.MethodPatch, path, func() error {
		return r.g.api.Patch(ctx, path, fields, nil)
	})
	if err != nil {
		return nil, err
	}
	return r.get(ctx, id)
}

func (r resource[T]) remove(ctx context.Context, id int64) error {
	path := r.itemPath(id)
	return r.g.mutate(ctx, http.MethodDelete, path, func() error {
		return r.g.api.Delete(ctx, path, nil)
	})
}

// formOf flattens the scalar JSON fields of v into multipart fields.
func formOf(v any, image *domain.FilePart) (*domain.Form, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	form := &domain.Form{Fields: make(map[string]string, len(fields))}
	for k, val := range fields {
		switch x := val.(type) {
		case string:
			form.Fields[k] = x
		case float64:
			form.Fields[k] = strconv.FormatFloat(x, 'f', -1, 64)
		case bool:
			form.Fields[k] = strconv.FormatBool(x)
		}
	}
	if image != nil {
		if image.Field == "" {
			image.Field = "image"
		}
		form.Files = append(form.Files, *image)
	}
	return form, nil
}

func requireID(id int64) error {
	if id <= 0 {
		return &domain.ValidationError{Fields: []domain.FieldError{{Field: "id", Rule: "required"}}}
	}
	return nil
}
