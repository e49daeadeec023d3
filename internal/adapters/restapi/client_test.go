package restapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mahabubulhasibshawon/dairy-admin/internal/domain"
	"github.com/mahabubulhasibshawon/dairy-admin/internal/ports"
	"github.com/mahabubulhasibshawon/dairy-admin/pkg/auth"
)

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *ports.MockTokenStorePort) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	ctrl := gomock.NewController(t)
	tokens := ports.NewMockTokenStorePort(ctrl)
	return NewClient(srv.URL+"/api/v1", 5*time.Second, tokens, zap.NewNop()), tokens
}

func sessionCtx() context.Context {
	return auth.WithSession(context.Background(), auth.Session{ID: "sess-1", Username: "ops"})
}

func TestClient_Get_InjectsBearerAndQuery(t *testing.T) {
	client, tokens := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/customers", r.URL.Path)
		assert.Equal(t, "baner", r.URL.Query().Get("search"))
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[{"id":7,"name":"Asha","phone":"9876543210","address":"Baner","area_id":3,"active":true}]`))
	})
	tokens.EXPECT().GetToken(gomock.Any(), "sess-1").Return("tok-123", nil)

	var out []domain.Customer
	err := client.Get(sessionCtx(), "/customers", url.Values{"search": {"baner"}}, &out)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(7), out[0].ID)
}

func TestClient_NoSession_NoHeader(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ops", body["username"])
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`{"token":"abc"}`))
	})

	var out struct {
		Token string `json:"token"`
	}
	err := client.Post(context.Background(), "/admin/login", map[string]string{"username": "ops"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "abc", out.Token)
}

func TestClient_MissingTokenSendsWithoutHeader(t *testing.T) {
	client, tokens := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	})
	tokens.EXPECT().GetToken(gomock.Any(), "sess-1").Return("", domain.ErrNotFound)

	assert.NoError(t, client.Delete(sessionCtx(), "/coupons/4", nil))
}

func TestClient_Unauthorized_DropsToken(t *testing.T) {
	client, tokens := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"token expired"}`))
	})
	gomock.InOrder(
		tokens.EXPECT().GetToken(gomock.Any(), "sess-1").Return("tok-123", nil),
		tokens.EXPECT().DeleteToken(gomock.Any(), "sess-1").Return(nil),
	)

	err := client.Put(sessionCtx(), "/subscriptions/1", map[string]any{"price": 120}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "token expired", apiErr.Message)
}

func TestClient_ErrorClasses(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
		msg    string
	}{
		{"conflict", http.StatusConflict, `{"error":"coupon code exists"}`, domain.ErrConflict, "coupon code exists"},
		{"validation", http.StatusUnprocessableEntity, `{"detail":"phone invalid"}`, domain.ErrRequestFailed, "phone invalid"},
		{"server error", http.StatusInternalServerError, "upstream down", domain.ErrRequestFailed, "upstream down"},
		{"not found", http.StatusNotFound, "", domain.ErrRequestFailed, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, tokens := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			tokens.EXPECT().GetToken(gomock.Any(), "sess-1").Return("tok", nil)

			err := client.Post(sessionCtx(), "/coupons", map[string]string{"code": "MILK10"}, nil)
			assert.ErrorIs(t, err, tt.want)
			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.msg, apiErr.Message)
		})
	}
}

func TestClient_ConflictLongMultibyteMessage(t *testing.T) {
	long := strings.Repeat("दूध", 40)
	client, tokens := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": long})
	})
	tokens.EXPECT().GetToken(gomock.Any(), "sess-1").Return("tok", nil)

	err := client.Get(sessionCtx(), "/customers", nil, nil)
	assert.ErrorIs(t, err, domain.ErrConflict)

	var srvErr domain.ServerError
	require.True(t, errors.As(err, &srvErr))
	msg := srvErr.ServerMessage()
	assert.True(t, utf8.ValidString(msg))
	assert.LessOrEqual(t, len(msg), maxMessageLen)
	assert.True(t, strings.HasPrefix(long, msg))
	assert.NotEmpty(t, msg)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short"))
	assert.Equal(t, "ok", truncate("o\xffk"))
	cut := truncate(strings.Repeat("a", maxMessageLen-1) + "दूध")
	assert.Equal(t, strings.Repeat("a", maxMessageLen-1), cut)
	assert.True(t, utf8.ValidString(cut))
}

func TestClient_TransportFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := NewClient("http://127.0.0.1:1", time.Second, ports.NewMockTokenStorePort(ctrl), zap.NewNop())

	err := client.Get(context.Background(), "/products", nil, nil)
	assert.ErrorIs(t, err, domain.ErrRequestFailed)
}

func TestClient_UndecodableBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	})
	var out []domain.Product
	err := client.Get(context.Background(), "/products", nil, &out)
	assert.ErrorIs(t, err, domain.ErrRequestFailed)
}

func TestClient_PathWithQueryKeepsIt(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/deliveries/modify", r.URL.Path)
		assert.Equal(t, "admin", r.URL.Query().Get("modifier"))
		w.WriteHeader(http.StatusOK)
	})
	assert.NoError(t, client.Post(context.Background(), "/deliveries/modify?modifier=admin", map[string]int{"quantity": 2}, nil))
}

func TestClient_PostMultipart(t *testing.T) {
	client, tokens := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Cow Milk", r.FormValue("name"))
		f, hdr, err := r.FormFile("image")
		require.NoError(t, err)
		defer f.Close()
		data, _ := io.ReadAll(f)
		assert.Equal(t, "milk.png", hdr.Filename)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data)
		_, _ = w.Write([]byte(`{"id":11,"name":"Cow Milk","category":"milk","active":true}`))
	})
	tokens.EXPECT().GetToken(gomock.Any(), "sess-1").Return("tok", nil)

	var out domain.Product
	err := client.PostMultipart(sessionCtx(), "/products", &domain.Form{
		Fields: map[string]string{"name": "Cow Milk"},
		Files:  []domain.FilePart{{Field: "image", Filename: "milk.png", Data: []byte{0x89, 'P', 'N', 'G'}}},
	}, &out)
	require.NoError(t, err)
	assert.Equal(t, int64(11), out.ID)
}
