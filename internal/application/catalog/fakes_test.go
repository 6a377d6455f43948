package catalog_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jhoicas/couponhub-api/internal/domain"
	"github.com/jhoicas/couponhub-api/internal/domain/entity"
)

type fakeStoreRepo struct {
	mu      sync.Mutex
	created []*entity.Store
	err     error
	list    []entity.Summary
}

func (r *fakeStoreRepo) Create(_ context.Context, s *entity.Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for _, existing := range r.created {
		if existing.Name == s.Name {
			return domain.ErrDuplicate
		}
	}
	s.ID = int64(len(r.created) + 1)
	s.CreatedAt = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	r.created = append(r.created, s)
	return nil
}

func (r *fakeStoreRepo) ListSummaries(context.Context) ([]entity.Summary, error) {
	return r.list, r.err
}

type fakeCategoryRepo struct {
	created []*entity.Category
	err     error
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	if r.err != nil {
		return r.err
	}
	c.ID = int64(len(r.created) + 1)
	r.created = append(r.created, c)
	return nil
}

func (r *fakeCategoryRepo) ListSummaries(context.Context) ([]entity.Summary, error) {
	return nil, r.err
}

type fakeCouponRepo struct {
	created []*entity.Coupon
	err     error
}

func (r *fakeCouponRepo) Create(_ context.Context, c *entity.Coupon) error {
	if r.err != nil {
		return r.err
	}
	c.ID = int64(len(r.created) + 1)
	r.created = append(r.created, c)
	return nil
}

// fakeUploader registra las llamadas y devuelve url/err configurados.
type fakeUploader struct {
	url     string
	err     error
	calls   int
	folder  string
	payload []byte
}

func (u *fakeUploader) Upload(_ context.Context, data []byte, folder string) (string, error) {
	u.calls++
	u.folder = folder
	u.payload = data
	return u.url, u.err
}

var errHostCaido = errors.New("host de imágenes caído")
