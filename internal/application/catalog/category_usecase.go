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

// CategoryUseCase alta y listado de categorías.
type CategoryUseCase struct {
	repo     repository.CategoryRepository
	uploader ports.ImageUploader
	log      *logger.Logger
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, uploader ports.ImageUploader, log *logger.Logger) *CategoryUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CategoryUseCase{repo: repo, uploader: uploader, log: log.Component("catalog.category")}
}

// Create mismo flujo que StoreUseCase.Create: validar, subir logo, persistir con conexiones.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest, logo []byte) (*dto.CategoryResponse, error) {
	in.Normalize()
	if errs := validate.Struct(in); errs != nil {
		return nil, errs
	}
	storeIDs, err := parseIDs("stores", in.Stores)
	if err != nil {
		return nil, err
	}
	similarIDs, err := parseIDs("similarCategories", in.SimilarCategories)
	if err != nil {
		return nil, err
	}

	category := &entity.Category{
		Name:               in.Name,
		Slug:               Slugify(in.Name),
		Description:        optionalText(in.Description),
		StoreIDs:           storeIDs,
		SimilarCategoryIDs: similarIDs,
	}

	if len(logo) > 0 {
		url, err := uploadLogo(ctx, uc.uploader, logo, CategoryImageFolder)
		if err != nil {
			uc.log.Error().Err(err).Str("category", in.Name).Msg("subida de logo de categoría")
			return nil, err
		}
		category.LogoURL = &url
	}

	if err := uc.repo.Create(ctx, category); err != nil {
		uc.log.Warn().Err(err).Str("category", in.Name).Msg("crear categoría")
		return nil, err
	}
	uc.log.Info().Int64("category_id", category.ID).Str("category", category.Name).Msg("categoría creada")
	return &dto.CategoryResponse{
		ID:                category.ID,
		Name:              category.Name,
		Slug:              category.Slug,
		Description:       category.Description,
		LogoURL:           category.LogoURL,
		Stores:            nonNil(category.StoreIDs),
		SimilarCategories: nonNil(category.SimilarCategoryIDs),
		CreatedAt:         category.CreatedAt,
	}, nil
}

// ListOptions lista id/nombre de todas las categorías.
func (uc *CategoryUseCase) ListOptions(ctx context.Context) ([]dto.OptionResponse, error) {
	list, err := uc.repo.ListSummaries(ctx)
	if err != nil {
		return nil, err
	}
	return toOptions(list), nil
}
