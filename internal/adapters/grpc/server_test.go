package grpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/mahabubulhasibshawon/dairy-admin/internal/adapters/redis"
	"github.com/mahabubulhasibshawon/dairy-admin/internal/application"
	"github.com/mahabubulhasibshawon/dairy-admin/internal/domain"
	"github.com/mahabubulhasibshawon/dairy-admin/internal/ports"
	"github.com/mahabubulhasibshawon/dairy-admin/pkg/auth"
)

const bufSize = 1024 * 1024

var ist = time.FixedZone("IST", 5*3600+1800)

type testEnv struct {
	client  *Client
	api     *ports.MockBackendPort
	journal *ports.MockJournalPort
	mr      *miniredis.Miniredis
}

func setupTestServer(t *testing.T) *testEnv {
	t.Helper()
	lis := bufconn.Listen(bufSize)
	ctrl := gomock.NewController(t)
	api := ports.NewMockBackendPort(ctrl)
	journal := ports.NewMockJournalPort(ctrl)
	journal.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(mr.Addr(), "", "", 0)
	t.Cleanup(func() { rdb.Close() })

	logger := zap.NewNop()
	gateway := application.NewGateway(api, redis.NewCache(rdb, time.Minute), journal, logger)
	authService := application.NewAuthService(api, redis.NewTokenStore(rdb), auth.NewSigner("test-secret"), logger)
	srv := NewServer(NewServices(gateway, authService, journal, ist), logger)

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(LoggingInterceptor(logger), AuthInterceptor(authService)))
	RegisterAdminServiceServer(grpcServer, srv)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Printf("Server failed: %v", err)
		}
	}()
	t.Cleanup(grpcServer.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet", grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("Failed to dial bufnet: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return &testEnv{client: NewClient(conn), api: api, journal: journal, mr: mr}
}

// login opens a session and returns a context carrying its token.
func (e *testEnv) login(t *testing.T) context.Context {
	t.Helper()
	e.api.EXPECT().Post(gomock.Any(), "/admin/login", gomock.Any(), gomock.Any()).
		DoAndReturn(replyPost(map[string]string{"token": "api-token"}))
	resp, err := e.client.Call(context.Background(), "Login", map[string]any{
		"data": map[string]any{"username": "ops@dairy.in", "password": "securepass"},
	})
	require.NoError(t, err)
	require.Equal(t, "success", str(resp, "type"))
	token := resp.Fields["data"].GetStructValue().Fields["access_token"].GetStringValue()
	require.NotEmpty(t, token)
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+token)
}

func str(s *structpb.Struct, key string) string {
	return s.Fields[key].GetStringValue()
}

func num(s *structpb.Struct, key string) float64 {
	return s.Fields[key].GetNumberValue()
}

func dataOf(s *structpb.Struct) *structpb.Struct {
	return s.Fields["data"].GetStructValue()
}

func replyPost(v any) func(context.Context, string, any, any) error {
	return func(_ context.Context, _ string, _ any, out any) error {
		if out == nil {
			return nil
		}
		return copyJSON(v, out)
	}
}

func replyGet(v any) func(context.Context, string, url.Values, any) error {
	return func(_ context.Context, _ string, _ url.Values, out any) error {
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

func TestAuthGate(t *testing.T) {
	env := setupTestServer(t)

	t.Run("NoToken", func(t *testing.T) {
		_, err := env.client.Call(context.Background(), "ListCustomers", nil)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("GarbageToken", func(t *testing.T) {
		ctx := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer nope")
		_, err := env.client.Call(ctx, "ListCustomers", nil)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("BadCredentials", func(t *testing.T) {
		env.api.EXPECT().Post(gomock.Any(), "/admin/login", gomock.Any(), gomock.Any()).Return(domain.ErrUnauthorized)
		resp, err := env.client.Call(context.Background(), "Login", map[string]any{
			"data": map[string]any{"username": "ops@dairy.in", "password": "wrong"},
		})
		require.NoError(t, err)
		assert.Equal(t, "error", str(resp, "type"))
		assert.Equal(t, float64(400), num(resp, "code"))
		assert.Equal(t, "Invalid credentials", str(resp, "message"))
	})

	t.Run("LoginThenLogout", func(t *testing.T) {
		ctx := env.login(t)

		env.api.EXPECT().Get(gomock.Any(), "/customers", gomock.Any(), gomock.Any()).
			DoAndReturn(replyGet([]domain.Customer{{ID: 1, Name: "Asha"}}))
		resp, err := env.client.Call(ctx, "ListCustomers", nil)
		require.NoError(t, err)
		assert.Equal(t, "success", str(resp, "type"))
		assert.Len(t, resp.Fields["data"].GetListValue().GetValues(), 1)

		resp, err = env.client.Call(ctx, "Logout", nil)
		require.NoError(t, err)
		assert.Equal(t, "success", str(resp, "type"))

		_, err = env.client.Call(ctx, "ListCustomers", nil)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})
}

func TestLoginFailures(t *testing.T) {
	env := setupTestServer(t)
	creds := map[string]any{"data": map[string]any{"username": "ops@dairy.in", "password": "securepass"}}

	t.Run("EmptyCredentials", func(t *testing.T) {
		resp, err := env.client.Call(context.Background(), "Login", map[string]any{
			"data": map[string]any{"username": "ops@dairy.in"},
		})
		require.NoError(t, err)
		assert.Equal(t, float64(400), num(resp, "code"))
		assert.Equal(t, "Invalid credentials", str(resp, "message"))
	})

	t.Run("BackendConflict", func(t *testing.T) {
		env.api.EXPECT().Post(gomock.Any(), "/admin/login", gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("post /admin/login: %w", domain.ErrConflict))
		resp, err := env.client.Call(context.Background(), "Login", creds)
		require.NoError(t, err)
		assert.Equal(t, "conflict", str(resp, "type"))
		assert.Equal(t, float64(409), num(resp, "code"))
	})

	t.Run("TokenStoreDown", func(t *testing.T) {
		env.api.EXPECT().Post(gomock.Any(), "/admin/login", gomock.Any(), gomock.Any()).
			DoAndReturn(replyPost(map[string]string{"token": "api-token"}))
		env.mr.SetError("LOADING redis is loading")
		defer env.mr.SetError("")

		resp, err := env.client.Call(context.Background(), "Login", creds)
		require.NoError(t, err)
		assert.Equal(t, "error", str(resp, "type"))
		assert.Equal(t, "Something went wrong. Please try again.", str(resp, "message"))
		assert.NotEqual(t, "Invalid credentials", str(resp, "message"))
	})
}

func TestBackendUnauthorizedEndsCall(t *testing.T) {
	env := setupTestServer(t)
	ctx := env.login(t)

	env.api.EXPECT().Get(gomock.Any(), "/coupons", nil, gomock.Any()).Return(domain.ErrUnauthorized)

	_, err := env.client.Call(ctx, "ListCoupons", nil)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestSubscriptionPriceRoundTrip(t *testing.T) {
	env := setupTestServer(t)
	ctx := env.login(t)

	stored := &domain.Subscription{ID: 5, CustomerID: 1, VariantID: 7, Quantity: 1, Price: 100, Frequency: "daily", StartDate: "2026-10-01"}
	env.api.EXPECT().Put(gomock.Any(), "/subscriptions/5", gomock.Any(), nil).
		DoAndReturn(func(_ context.Context, _ string, body, _ any) error {
			return copyJSON(body, stored)
		})
	env.api.EXPECT().Get(gomock.Any(), "/subscriptions/5", nil, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ url.Values, out any) error {
			return copyJSON(stored, out)
		}).Times(2)

	resp, err := env.client.Call(ctx, "UpdateSubscription", map[string]any{
		"id": 5,
		"data": map[string]any{
			"customer_id": 1, "variant_id": 7, "quantity": 1, "price": 120,
			"frequency": "daily", "start_date": "2026-10-01",
		},
	})
	require.NoError(t, err)
	require.Equal(t, "success", str(resp, "type"))
	assert.Equal(t, float64(120), num(dataOf(resp), "price"))

	resp, err = env.client.Call(ctx, "GetSubscription", map[string]any{"id": 5})
	require.NoError(t, err)
	assert.Equal(t, float64(120), num(dataOf(resp), "price"))
}

func TestErrorBodies(t *testing.T) {
	env := setupTestServer(t)
	ctx := env.login(t)

	customer := map[string]any{"name": "Asha", "phone": "9876543210", "address": "12 MG Road", "area_id": 3}

	t.Run("Conflict", func(t *testing.T) {
		env.api.EXPECT().Post(gomock.Any(), "/customers", gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("post /customers: %w", domain.ErrConflict))
		resp, err := env.client.Call(ctx, "CreateCustomer", map[string]any{"data": customer})
		require.NoError(t, err)
		assert.Equal(t, "conflict", str(resp, "type"))
		assert.Equal(t, float64(409), num(resp, "code"))
		assert.Equal(t, "conflict", str(resp.Fields["notice"].GetStructValue(), "kind"))
	})

	t.Run("MissingRequiredField", func(t *testing.T) {
		resp, err := env.client.Call(ctx, "CreateCustomer", map[string]any{
			"data": map[string]any{"name": "Asha", "address": "12 MG Road", "area_id": 3},
		})
		require.NoError(t, err)
		assert.Equal(t, "error", str(resp, "type"))
		assert.Equal(t, float64(422), num(resp, "code"))
		assert.Contains(t, str(resp, "message"), "phone")
	})

	t.Run("MissingData", func(t *testing.T) {
		resp, err := env.client.Call(ctx, "CreateCustomer", nil)
		require.NoError(t, err)
		assert.Equal(t, float64(422), num(resp, "code"))
	})

	t.Run("ServerError", func(t *testing.T) {
		env.api.EXPECT().Delete(gomock.Any(), "/customers/9", nil).Return(errors.New("boom"))
		resp, err := env.client.Call(ctx, "DeleteCustomer", map[string]any{"id": 9})
		require.NoError(t, err)
		assert.Equal(t, "error", str(resp, "type"))
		assert.Equal(t, "Something went wrong. Please try again.", str(resp, "message"))
	})

	t.Run("UnknownMethod", func(t *testing.T) {
		_, err := env.client.Call(ctx, "DropDatabase", nil)
		assert.Equal(t, codes.Unimplemented, status.Code(err))
	})
}

func sheetFor(date string) []domain.DriverSheet {
	return []domain.DriverSheet{{
		DeliveryBoy: domain.DeliveryBoy{ID: 1, Name: "Ravi"},
		Deliveries: []domain.SheetEntry{{
			Customer: domain.Customer{ID: 3, Name: "Asha"},
			Delivery: domain.Delivery{ID: 11, Date: date, Status: domain.StatusPending, Items: []domain.DeliveryItem{
				{ID: 21, VariantID: 5, ProductName: "Cow Milk", VariantName: "500ml", OrderedQuantity: 2, Rate: 30, Status: domain.StatusPending},
			}},
		}},
	}}
}

func TestDeliveryActionRouting(t *testing.T) {
	env := setupTestServer(t)
	ctx := env.login(t)

	now := time.Now().In(ist)
	today := now.Format("2006-01-02")
	future := now.AddDate(0, 0, 2).Format("2006-01-02")

	t.Run("TodayGoesToDeliveries", func(t *testing.T) {
		env.api.EXPECT().Get(gomock.Any(), "/delivery_boys/delivery_sheets", url.Values{"date": {today}}, gomock.Any()).
			DoAndReturn(replyGet(sheetFor(today))).Times(2)
		env.api.EXPECT().Put(gomock.Any(), "/deliveries", domain.StatusChange{DeliveryID: 11, ItemID: 21, Date: today, Status: domain.StatusDelivered}, nil).Return(nil)

		resp, err := env.client.Call(ctx, "ApplyDeliveryAction", map[string]any{
			"id": 11, "date": today, "action": "deliver", "data": map[string]any{"item_id": 21},
		})
		require.NoError(t, err)
		assert.Equal(t, "success", str(resp, "type"))
	})

	t.Run("FutureDeliverRefused", func(t *testing.T) {
		env.api.EXPECT().Get(gomock.Any(), "/delivery_boys/delivery_sheets", url.Values{"date": {future}}, gomock.Any()).
			DoAndReturn(replyGet(sheetFor(future)))

		resp, err := env.client.Call(ctx, "ApplyDeliveryAction", map[string]any{"id": 11, "date": future, "action": "deliver"})
		require.NoError(t, err)
		assert.Equal(t, float64(422), num(resp, "code"))
	})

	t.Run("FutureCancelGoesToModify", func(t *testing.T) {
		env.api.EXPECT().Get(gomock.Any(), "/delivery_boys/delivery_sheets", url.Values{"date": {future}}, gomock.Any()).
			DoAndReturn(replyGet(sheetFor(future))).Times(2)
		env.api.EXPECT().Post(gomock.Any(), "/deliveries/modify?modifier=admin", domain.StatusChange{DeliveryID: 11, Date: future, Status: domain.StatusCancelled}, nil).Return(nil)

		resp, err := env.client.Call(ctx, "ApplyDeliveryAction", map[string]any{"id": 11, "date": future, "action": "cancel"})
		require.NoError(t, err)
		assert.Equal(t, "success", str(resp, "type"))
	})

	t.Run("PickupSummary", func(t *testing.T) {
		env.api.EXPECT().Get(gomock.Any(), "/delivery_boys/delivery_sheets", url.Values{"date": {today}}, gomock.Any()).
			DoAndReturn(replyGet(sheetFor(today)))

		resp, err := env.client.Call(ctx, "GetPickupSummary", map[string]any{"date": today})
		require.NoError(t, err)
		rows := resp.Fields["data"].GetListValue().GetValues()
		require.Len(t, rows, 1)
		assert.Equal(t, float64(2), num(rows[0].GetStructValue(), "total"))
	})
}

func TestListActivity(t *testing.T) {
	env := setupTestServer(t)
	ctx := env.login(t)

	env.journal.EXPECT().ListActivity(gomock.Any(), int64(10), int64(1)).
		Return([]*domain.Activity{{ID: 1, Method: "PUT", Path: "/deliveries", Outcome: "success"}}, int64(11), nil)

	resp, err := env.client.Call(ctx, "ListActivity", map[string]any{"query": map[string]any{"limit": 10}})
	require.NoError(t, err)
	assert.Equal(t, float64(2), num(dataOf(resp), "last_page"))
}
