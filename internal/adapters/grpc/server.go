package grpc

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/mahabubulhasibshawon/dairy-admin/internal/application"
	"github.com/mahabubulhasibshawon/dairy-admin/internal/domain"
	"github.com/mahabubulhasibshawon/dairy-admin/internal/ports"
)

// Services are the back-office operations the server exposes.
type Services struct {
	Auth          *application.AuthService
	Customers     *application.CustomerService
	Subscriptions *application.SubscriptionService
	Trials        *application.TrialService
	Orders        *application.OrderService
	Catalogue     *application.CatalogueService
	Coupons       *application.CouponService
	Offers        *application.OfferService
	Complaints    *application.ComplaintService
	Areas         *application.AreaService
	Partners      *application.PartnerService
	Reference     *application.ReferenceService
	Sheets        *application.DeliverySheetService
	Activity      *application.ActivityService
}

func NewServices(g *application.Gateway, authService *application.AuthService, journal ports.JournalPort, loc *time.Location) Services {
	customers := application.NewCustomerService(g)
	catalogue := application.NewCatalogueService(g)
	areas := application.NewAreaService(g)
	return Services{
		Auth:          authService,
		Customers:     customers,
		Subscriptions: application.NewSubscriptionService(g),
		Trials:        application.NewTrialService(g),
		Orders:        application.NewOrderService(g),
		Catalogue:     catalogue,
		Coupons:       application.NewCouponService(g),
		Offers:        application.NewOfferService(g),
		Complaints:    application.NewComplaintService(g),
		Areas:         areas,
		Partners:      application.NewPartnerService(g),
		Reference:     application.NewReferenceService(customers, catalogue, areas),
		Sheets:        application.NewDeliverySheetService(g, loc),
		Activity:      application.NewActivityService(journal),
	}
}

// handler runs one method and returns the success message and payload.
type handler func(ctx context.Context, req *request) (string, any, error)

type Server struct {
	svc      Services
	logger   *zap.Logger
	handlers map[string]handler
}

func NewServer(svc Services, logger *zap.Logger) *Server {
	s := &Server{svc: svc, logger: logger}
	s.handlers = s.routes()
	return s
}

// Methods lists every method name the server answers, sorted.
func (s *Server) Methods() []string {
	names := make([]string, 0, len(s.handlers)+1)
	names = append(names, methodLogin)
	for name := range s.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Server) Handle(ctx context.Context, method string, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := decodeRequest(in)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if method == methodLogin {
		return s.login(ctx, req)
	}
	h, ok := s.handlers[method]
	if !ok {
		return nil, status.Errorf(codes.Unimplemented, "method %s not implemented", method)
	}
	msg, data, err := h(ctx, req)
	if err != nil {
		s.logger.Warn("call failed", zap.String("method", method), zap.Error(err))
		return failure(err)
	}
	return success(msg, data)
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) login(ctx context.Context, req *request) (*structpb.Struct, error) {
	var creds credentials
	if err := req.decodeData(&creds); err != nil {
		return failure(err)
	}
	token, op, err := s.svc.Auth.Login(ctx, creds.Username, creds.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return noticeBody(400, &domain.Notice{Kind: domain.NoticeError, Title: "Login failed", Message: "Invalid credentials"})
		}
		s.logger.Warn("login failed", zap.String("operator", creds.Username), zap.Error(err))
		return failure(err)
	}
	return success("Logged in", map[string]any{
		"token_type":   "Bearer",
		"access_token": token,
		"expires_in":   int64(s.svc.Auth.SessionTTL().Seconds()),
		"operator":     op,
	})
}
