package application

import (
	"context"
	"encoding/json"
	"net/url"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"go.uber.org/zap"

	"github.com/mahabubulhasibshawon/dairy-admin/internal/ports"
)

var ist = time.FixedZone("IST", 5*3600+1800)

// fixedNow is late on 16 Oct 2026 in IST.
var fixedNow = time.Date(2026, 10, 16, 23, 30, 0, 0, ist)

func newTestGateway(t *testing.T) (*Gateway, *ports.MockBackendPort) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := ports.NewMockBackendPort(ctrl)
	g := NewGateway(api, nil, nil, zap.NewNop())
	g.now = func() time.Time { return fixedNow }
	return g, api
}

// replyGet copies v into the out argument of a Get call.
func replyGet(v any) func(context.Context, string, url.Values, any) error {
	return func(_ context.Context, _ string, _ url.Values, out any) error {
		return copyJSON(v, out)
	}
}

// replyPost copies v into the out argument of a Post/Put call.
func replyPost(v any) func(context.Context, string, any, any) error {
	return func(_ context.Context, _ string, _ any, out any) error {
		if out == nil {
			return nil
		}
		return copyJSON(v, out)
	}
}

func copyJSON(from, to any) error {
	data, err := json.Marshal(from)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, to)
}
