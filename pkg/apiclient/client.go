// Package apiclient cliente HTTP de la API del catálogo: altas multipart y listados.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/jhoicas/couponhub-api/internal/application/dto"
	"github.com/jhoicas/couponhub-api/pkg/validate"
)

// Doer lo que el cliente necesita de *http.Client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// APIError respuesta no-2xx de la API.
type APIError struct {
	Status  int
	Message string
	Fields  validate.FieldErrors
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: HTTP %d: %s", e.Status, e.Message)
}

// Client cliente de la API. Sin reintentos ni timeouts propios: manda el ctx del llamador.
type Client struct {
	baseURL string
	http    Doer
	token   string
}

// Option configura el cliente.
type Option func(*Client)

// WithHTTPClient reemplaza http.DefaultClient.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) { c.http = d }
}

// WithToken agrega Authorization: Bearer <token> a cada petición.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New construye el cliente. baseURL sin barra final, ej. http://localhost:8080.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{baseURL: strings.TrimRight(baseURL, "/"), http: http.DefaultClient}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken cambia el token (tras login).
func (c *Client) SetToken(token string) { c.token = token }

// CreateStore POST /api/createstore. logo vacío = sin parte logo.
func (c *Client) CreateStore(ctx context.Context, in dto.CreateStoreRequest, logo []byte) (*dto.CreateStoreResponse, error) {
	var out dto.CreateStoreResponse
	if err := c.postMultipart(ctx, "/api/createstore", in, logo, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCategory POST /api/createcategory.
func (c *Client) CreateCategory(ctx context.Context, in dto.CreateCategoryRequest, logo []byte) (*dto.CreateCategoryResponse, error) {
	var out dto.CreateCategoryResponse
	if err := c.postMultipart(ctx, "/api/createcategory", in, logo, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCoupon POST /api/createcoupon.
func (c *Client) CreateCoupon(ctx context.Context, in dto.CreateCouponRequest, logo []byte) (*dto.CreateCouponResponse, error) {
	var out dto.CreateCouponResponse
	if err := c.postMultipart(ctx, "/api/createcoupon", in, logo, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetStores GET /api/getstores.
func (c *Client) GetStores(ctx context.Context) ([]dto.OptionResponse, error) {
	var out dto.StoreListResponse
	if err := c.get(ctx, "/api/getstores", &out); err != nil {
		return nil, err
	}
	return out.Stores, nil
}

// GetCategories GET /api/getcategories.
func (c *Client) GetCategories(ctx context.Context) ([]dto.OptionResponse, error) {
	var out dto.CategoryListResponse
	if err := c.get(ctx, "/api/getcategories", &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

// Login POST /api/auth/login; guarda el token para las siguientes peticiones.
func (c *Client) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	raw, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("api: codificar login: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/login", bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("api: crear request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	var out dto.LoginResponse
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out, nil
}

// postMultipart envía la parte logo (solo si hay bytes) y la parte data con el JSON de in.
func (c *Client) postMultipart(ctx context.Context, path string, in any, logo []byte, out any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("api: codificar data: %w", err)
	}
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if len(logo) > 0 {
		part, err := mw.CreateFormFile("logo", "logo.jpg")
		if err != nil {
			return fmt.Errorf("api: parte logo: %w", err)
		}
		if _, err := part.Write(logo); err != nil {
			return fmt.Errorf("api: parte logo: %w", err)
		}
	}
	if err := mw.WriteField("data", string(data)); err != nil {
		return fmt.Errorf("api: parte data: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("api: cerrar multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &body)
	if err != nil {
		return fmt.Errorf("api: crear request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("api: crear request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("api: leer respuesta: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var body dto.ErrorResponse
		if json.Unmarshal(raw, &body) == nil && body.Error != "" {
			apiErr.Message = body.Error
			apiErr.Fields = body.Fields
		}
		return apiErr
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("api: decodificar respuesta: %w", err)
	}
	return nil
}
