package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/mahabubulhasibshawon/dairy-admin/internal/domain"
	"github.com/mahabubulhasibshawon/dairy-admin/internal/ports"
	"github.com/mahabubulhasibshawon/dairy-admin/pkg/auth"
)

const maxBodySize = 10 << 20

// Client talks to the dairy REST API on behalf of the operator session found
// in the request context.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  ports.TokenStorePort
	logger  *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, tokens ports.TokenStorePort, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		tokens: tokens,
		logger: logger,
	}
}

var _ ports.BackendPort = (*Client)(nil)

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, "", out)
}

func (c *Client) PostMultipart(ctx context.Context, path string, form *domain.Form, out any) error {
	return c.doMultipart(ctx, http.MethodPost, path, form, out)
}

func (c *Client) PutMultipart(ctx context.Context, path string, form *domain.Form, out any) error {
	return c.doMultipart(ctx, http.MethodPut, path, form, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	if body == nil {
		return c.do(ctx, method, path, nil, nil, "", out)
	}
	data, err := json.Marshal(body)
	if err != nil {
		return &APIError{Method: method, Path: path, Message: err.Error(), kind: domain.ErrRequestFailed}
	}
	return c.do(ctx, method, path, nil, bytes.NewReader(data), "application/json", out)
}

func (c *Client) doMultipart(ctx context.Context, method, path string, form *domain.Form, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := writeForm(w, form); err != nil {
		return &APIError{Method: method, Path: path, Message: err.Error(), kind: domain.ErrRequestFailed}
	}
	return c.do(ctx, method, path, nil, &buf, w.FormDataContentType(), out)
}

func writeForm(w *multipart.Writer, form *domain.Form) error {
	if form != nil {
		for k, v := range form.Fields {
			if err := w.WriteField(k, v); err != nil {
				return err
			}
		}
		for _, f := range form.Files {
			part, err := w.CreateFormFile(f.Field, f.Filename)
			if err != nil {
				return err
			}
			if _, err := part.Write(f.Data); err != nil {
				return err
			}
		}
	}
	return w.Close()
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	target, err := c.resolve(path, query)
	if err != nil {
		return &APIError{Method: method, Path: path, Message: err.Error(), kind: domain.ErrRequestFailed}
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return &APIError{Method: method, Path: path, Message: err.Error(), kind: domain.ErrRequestFailed}
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	session, hasSession := auth.SessionFromContext(ctx)
	if hasSession {
		token, err := c.tokens.GetToken(ctx, session.ID)
		switch {
		case err == nil:
			req.Header.Set("Authorization", "Bearer "+token)
		case !errors.Is(err, domain.ErrNotFound):
			return &APIError{Method: method, Path: path, Message: "token store: " + err.Error(), kind: domain.ErrRequestFailed}
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("api request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return &APIError{Method: method, Path: path, Message: err.Error(), kind: domain.ErrRequestFailed}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return &APIError{Method: method, Path: path, StatusCode: resp.StatusCode, Message: err.Error(), kind: domain.ErrRequestFailed}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    serverMessage(data),
			kind:       classify(resp.StatusCode),
		}
		if resp.StatusCode == http.StatusUnauthorized && hasSession {
			if err := c.tokens.DeleteToken(ctx, session.ID); err != nil {
				c.logger.Error("failed to drop rejected token", zap.String("session", session.ID), zap.Error(err))
			}
		}
		c.logger.Info("api request rejected",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message))
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &APIError{Method: method, Path: path, StatusCode: resp.StatusCode, Message: fmt.Sprintf("decode response: %v", err), kind: domain.ErrRequestFailed}
	}
	return nil
}

func (c *Client) resolve(path string, query url.Values) (string, error) {
	u, err := url.Parse(c.baseURL + "/" + strings.TrimLeft(path, "/"))
	if err != nil {
		return "", err
	}
	if len(query) > 0 {
		q := u.Query()
		for k, vs := range query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}
