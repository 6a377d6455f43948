package admin

import (
	"context"
	"sync"

	"github.com/jhoicas/couponhub-api/internal/application/dto"
)

// OptionSource origen de los listados {id, name}; *apiclient.Client lo implementa.
type OptionSource interface {
	GetStores(ctx context.Context) ([]dto.OptionResponse, error)
	GetCategories(ctx context.Context) ([]dto.OptionResponse, error)
}

// OptionsCache guarda los listados hasta que un alta exitosa lo invalida.
type OptionsCache struct {
	src OptionSource

	mu         sync.Mutex
	stores     []Option
	categories []Option
}

var _ Invalidator = (*OptionsCache)(nil)

// NewOptionsCache construye la caché vacía.
func NewOptionsCache(src OptionSource) *OptionsCache {
	return &OptionsCache{src: src}
}

// Stores opciones de tiendas; consulta la API solo si no hay copia vigente.
func (c *OptionsCache) Stores(ctx context.Context) ([]Option, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stores == nil {
		list, err := c.src.GetStores(ctx)
		if err != nil {
			return nil, err
		}
		c.stores = OptionsFrom(list)
	}
	return append([]Option(nil), c.stores...), nil
}

// Categories opciones de categorías.
func (c *OptionsCache) Categories(ctx context.Context) ([]Option, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.categories == nil {
		list, err := c.src.GetCategories(ctx)
		if err != nil {
			return nil, err
		}
		c.categories = OptionsFrom(list)
	}
	return append([]Option(nil), c.categories...), nil
}

// Invalidate descarta ambos listados.
func (c *OptionsCache) Invalidate() {
	c.mu.Lock()
	c.stores = nil
	c.categories = nil
	c.mu.Unlock()
}
