package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/couponhub-api/internal/application/auth"
	"github.com/jhoicas/couponhub-api/internal/application/catalog"
	"github.com/jhoicas/couponhub-api/internal/domain"
	"github.com/jhoicas/couponhub-api/internal/domain/entity"
	apphttp "github.com/jhoicas/couponhub-api/internal/interfaces/http"
)

// memCatalog base de datos en memoria con las mismas reglas que PostgreSQL:
// slug único y conexiones solo hacia ids existentes.
type memCatalog struct {
	mu         sync.Mutex
	stores     []entity.Store
	categories []entity.Category
	coupons    []entity.Coupon
	users      map[string]*entity.User
	listErr    error
}

func newMemCatalog() *memCatalog {
	return &memCatalog{users: map[string]*entity.User{}}
}

func (m *memCatalog) seedCategories(names ...string) {
	for _, n := range names {
		m.categories = append(m.categories, entity.Category{ID: int64(len(m.categories) + 1), Name: n, Slug: catalog.Slugify(n)})
	}
}

func (m *memCatalog) storeExists(id int64) bool {
	for _, s := range m.stores {
		if s.ID == id {
			return true
		}
	}
	return false
}

func (m *memCatalog) categoryExists(id int64) bool {
	for _, c := range m.categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

func allExist(ids []int64, exists func(int64) bool) bool {
	for _, id := range ids {
		if !exists(id) {
			return false
		}
	}
	return true
}

type memStores struct{ *memCatalog }

func (r memStores) Create(_ context.Context, s *entity.Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.stores {
		if existing.Name == s.Name {
			return domain.ErrDuplicate
		}
	}
	if !allExist(s.CategoryIDs, r.categoryExists) || !allExist(s.SimilarStoreIDs, r.storeExists) {
		return domain.ErrRelatedNotFound
	}
	s.ID = int64(len(r.stores) + 1)
	s.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	r.stores = append(r.stores, *s)
	return nil
}

func (r memStores) ListSummaries(context.Context) ([]entity.Summary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]entity.Summary, 0, len(r.stores))
	for _, s := range r.stores {
		out = append(out, entity.Summary{ID: s.ID, Name: s.Name})
	}
	return out, nil
}

type memCategories struct{ *memCatalog }

func (r memCategories) Create(_ context.Context, c *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.categories {
		if existing.Name == c.Name {
			return domain.ErrDuplicate
		}
	}
	if !allExist(c.StoreIDs, r.storeExists) || !allExist(c.SimilarCategoryIDs, r.categoryExists) {
		return domain.ErrRelatedNotFound
	}
	c.ID = int64(len(r.categories) + 1)
	r.categories = append(r.categories, *c)
	return nil
}

func (r memCategories) ListSummaries(context.Context) ([]entity.Summary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Summary, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, entity.Summary{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

type memCoupons struct{ *memCatalog }

func (r memCoupons) Create(_ context.Context, c *entity.Coupon) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.coupons {
		if existing.StoreID == c.StoreID && existing.Title == c.Title {
			return domain.ErrDuplicate
		}
	}
	if !r.storeExists(c.StoreID) || !allExist(c.CategoryIDs, r.categoryExists) {
		return domain.ErrRelatedNotFound
	}
	c.ID = int64(len(r.coupons) + 1)
	r.coupons = append(r.coupons, *c)
	return nil
}

type memUsers struct{ *memCatalog }

func (r memUsers) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.users[u.Email] = u
	return nil
}

func (r memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r memUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[email], nil
}

// stubUploader devuelve https://img.test/<folder>/<n>.jpg salvo que se fije err o empty.
type stubUploader struct {
	mu      sync.Mutex
	err     error
	empty   bool
	folders []string
	data    [][]byte
}

func (u *stubUploader) Upload(_ context.Context, data []byte, folder string) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.folders = append(u.folders, folder)
	u.data = append(u.data, data)
	if u.err != nil {
		return "", u.err
	}
	if u.empty {
		return "", nil
	}
	return fmt.Sprintf("https://img.test/%s/%d.jpg", folder, len(u.folders)), nil
}

func newTestServer(t *testing.T, db *memCatalog, up *stubUploader) *fiber.App {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	apphttp.Router(app, apphttp.RouterDeps{
		StoreUC:    catalog.NewStoreUseCase(memStores{db}, up, nil),
		CategoryUC: catalog.NewCategoryUseCase(memCategories{db}, up, nil),
		CouponUC:   catalog.NewCouponUseCase(memCoupons{db}, up, nil),
		AuthUC:     auth.NewAuthUseCase(memUsers{db}, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		JWTSecret:  testJWTSecret,
	})
	return app
}

// multipartBody arma el cuerpo como lo envía el panel: parte logo (opcional) + parte data JSON.
func multipartBody(t *testing.T, data any, logo []byte) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if logo != nil {
		part, err := mw.CreateFormFile("logo", "logo.jpg")
		require.NoError(t, err)
		_, err = part.Write(logo)
		require.NoError(t, err)
	}
	if data != nil {
		raw, err := json.Marshal(data)
		require.NoError(t, err)
		require.NoError(t, mw.WriteField("data", string(raw)))
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func postMultipart(t *testing.T, app *fiber.App, path, authHeader string, data any, logo []byte) (*http.Response, map[string]any) {
	t.Helper()
	body, contentType := multipartBody(t, data, logo)
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func getJSON(t *testing.T, app *fiber.App, path string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}
