package grpc

import (
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/mahabubulhasibshawon/dairy-admin/internal/application"
	"github.com/mahabubulhasibshawon/dairy-admin/internal/domain"
)

// request is the decoded form of every AdminService call.
type request struct {
	ID       int64           `json:"id"`
	ParentID int64           `json:"parent_id"`
	Date     string          `json:"date"`
	Query    query           `json:"query"`
	Data     json.RawMessage `json:"data"`
	Action   string          `json:"action"`
	Image    *imagePart      `json:"image"`
}

// query carries list filters and paging.
type query struct {
	Search     string `json:"search"`
	AreaID     int64  `json:"area_id"`
	CustomerID int64  `json:"customer_id"`
	Status     string `json:"status"`
	Date       string `json:"date"`
	Page       int64  `json:"page"`
	Limit      int64  `json:"limit"`
}

// imagePart is an uploaded file; data is base64 on the wire.
type imagePart struct {
	Field    string `json:"field"`
	Filename string `json:"filename"`
	Data     []byte `json:"data"`
}

func (p *imagePart) filePart() *domain.FilePart {
	if p == nil || len(p.Data) == 0 {
		return nil
	}
	return &domain.FilePart{Field: p.Field, Filename: p.Filename, Data: p.Data}
}

func decodeRequest(in *structpb.Struct) (*request, error) {
	var req request
	if in == nil {
		return &req, nil
	}
	raw, err := json.Marshal(in.AsMap())
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}
	return &req, nil
}

// decodeData unmarshals the request's data object into v.
func (r *request) decodeData(v any) error {
	if len(r.Data) == 0 || string(r.Data) == "null" {
		return &domain.ValidationError{Fields: []domain.FieldError{{Field: "data", Rule: "required"}}}
	}
	if err := json.Unmarshal(r.Data, v); err != nil {
		return &domain.ValidationError{Fields: []domain.FieldError{{Field: "data", Rule: err.Error()}}}
	}
	return nil
}

// toValue turns any JSON-encodable value into a protobuf value.
func toValue(v any) (*structpb.Value, error) {
	if v == nil {
		return structpb.NewNullValue(), nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}
	return structpb.NewValue(generic)
}

func body(code int, typ, message string, data, notice *structpb.Value) *structpb.Struct {
	out := &structpb.Struct{Fields: map[string]*structpb.Value{
		"code":    structpb.NewNumberValue(float64(code)),
		"type":    structpb.NewStringValue(typ),
		"message": structpb.NewStringValue(message),
		"data":    data,
	}}
	if notice != nil {
		out.Fields["notice"] = notice
	}
	return out
}

func success(message string, data any) (*structpb.Struct, error) {
	dv, err := toValue(data)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	return body(200, "success", message, dv, nil), nil
}

// failure renders err as a response body, or as Unauthenticated when the
// operator has to log in again.
func failure(err error) (*structpb.Struct, error) {
	notice := application.Present(err)
	if notice.Kind == domain.NoticeUnauthorized {
		return nil, status.Error(codes.Unauthenticated, notice.Message)
	}
	return noticeBody(statusCode(err, notice), notice)
}

func noticeBody(code int, notice *domain.Notice) (*structpb.Struct, error) {
	typ := "error"
	if notice.Kind == domain.NoticeConflict {
		typ = "conflict"
	}
	nv, err := toValue(map[string]string{"kind": string(notice.Kind), "title": notice.Title, "message": notice.Message})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	return body(code, typ, notice.Message, structpb.NewNullValue(), nv), nil
}

func statusCode(err error, notice *domain.Notice) int {
	var vErr *domain.ValidationError
	switch {
	case notice.Kind == domain.NoticeConflict:
		return 409
	case errors.As(err, &vErr), errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, domain.ErrFutureDelivery):
		return 422
	case errors.Is(err, domain.ErrNotFound):
		return 404
	case errors.Is(err, domain.ErrRequestFailed):
		return 502
	}
	return 400
}
