package catalog

import (
	"context"

	"github.com/jhoicas/couponhub-api/internal/application/dto"
	"github.com/jhoicas/couponhub-api/internal/application/ports"
	"github.com/jhoicas/couponhub-api/internal/domain/entity"
	"github.com/jhoicas/couponhub-api/internal/domain/repository"
	"github.com/jhoicas/couponhub-api/pkg/logger"
	"github.com/jhoicas/couponhub-api/pkg/validate"
)

// StoreUseCase alta y listado de tiendas.
type StoreUseCase struct {
	repo     repository.StoreRepository
	uploader ports.ImageUploader
	log      *logger.Logger
}

// NewStoreUseCase construye el caso de uso. uploader puede ser nil si no hay host configurado.
func NewStoreUseCase(repo repository.StoreRepository, uploader ports.ImageUploader, log *logger.Logger) *StoreUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &StoreUseCase{repo: repo, uploader: uploader, log: log.Component("catalog.store")}
}

// Create valida la entrada, sube el logo (si viene) y persiste la tienda con sus conexiones.
// Si la subida falla no se escribe nada en la base de datos.
func (uc *StoreUseCase) Create(ctx context.Context, in dto.CreateStoreRequest, logo []byte) (*dto.StoreResponse, error) {
	in.Normalize()
	if errs := validate.Struct(in); errs != nil {
		return nil, errs
	}
	categoryIDs, err := parseIDs("categories", in.Categories)
	if err != nil {
		return nil, err
	}
	similarIDs, err := parseIDs("similarStores", in.SimilarStores)
	if err != nil {
		return nil, err
	}

	faq := make([]entity.FAQItem, 0, len(in.FAQ))
	for _, item := range in.FAQ {
		faq = append(faq, entity.FAQItem{Question: sanitize(item.Question), Answer: sanitize(item.Answer)})
	}

	store := &entity.Store{
		Name:            in.Name,
		Slug:            Slugify(in.Name),
		Title:           in.Title,
		RefLink:         in.RefLink,
		AddToHomePage:   in.AddToHomePage == dto.HomePageYes,
		AverageDiscount: optionalPlain(in.AverageDiscount),
		BestOffer:       optionalPlain(in.BestOffer),
		Description:     optionalText(in.Description),
		Hint:            optionalText(in.Hint),
		MoreAbout:       optionalText(in.MoreAbout),
		FAQ:             faq,
		CategoryIDs:     categoryIDs,
		SimilarStoreIDs: similarIDs,
	}

	if len(logo) > 0 {
		url, err := uploadLogo(ctx, uc.uploader, logo, StoreImageFolder)
		if err != nil {
			uc.log.Error().Err(err).Str("store", in.Name).Msg("subida de logo de tienda")
			return nil, err
		}
		store.LogoURL = &url
	}

	if err := uc.repo.Create(ctx, store); err != nil {
		// El logo ya subido queda huérfano: no hay borrado compensatorio.
		uc.log.Warn().Err(err).Str("store", in.Name).Bool("logo_subido", store.LogoURL != nil).Msg("crear tienda")
		return nil, err
	}
	uc.log.Info().Int64("store_id", store.ID).Str("store", store.Name).Msg("tienda creada")
	return toStoreResponse(store), nil
}

// ListOptions lista id/nombre de todas las tiendas (alimenta los multi-select).
func (uc *StoreUseCase) ListOptions(ctx context.Context) ([]dto.OptionResponse, error) {
	list, err := uc.repo.ListSummaries(ctx)
	if err != nil {
		return nil, err
	}
	return toOptions(list), nil
}

func toStoreResponse(s *entity.Store) *dto.StoreResponse {
	if s == nil {
		return nil
	}
	faq := make([]dto.FAQItem, 0, len(s.FAQ))
	for _, item := range s.FAQ {
		faq = append(faq, dto.FAQItem{Question: item.Question, Answer: item.Answer})
	}
	return &dto.StoreResponse{
		ID:              s.ID,
		Name:            s.Name,
		Slug:            s.Slug,
		Title:           s.Title,
		LogoURL:         s.LogoURL,
		RefLink:         s.RefLink,
		AddToHomePage:   s.AddToHomePage,
		AverageDiscount: s.AverageDiscount,
		BestOffer:       s.BestOffer,
		Description:     s.Description,
		Hint:            s.Hint,
		MoreAbout:       s.MoreAbout,
		FAQ:             faq,
		Categories:      nonNil(s.CategoryIDs),
		SimilarStores:   nonNil(s.SimilarStoreIDs),
		CreatedAt:       s.CreatedAt,
	}
}

func toOptions(list []entity.Summary) []dto.OptionResponse {
	out := make([]dto.OptionResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.OptionResponse{ID: s.ID, Name: s.Name})
	}
	return out
}

func nonNil(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}
