package catalog

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/couponhub-api/internal/application/dto"
	"github.com/jhoicas/couponhub-api/internal/application/ports"
	"github.com/jhoicas/couponhub-api/internal/domain"
	"github.com/jhoicas/couponhub-api/internal/domain/entity"
	"github.com/jhoicas/couponhub-api/internal/domain/repository"
	"github.com/jhoicas/couponhub-api/pkg/logger"
	"github.com/jhoicas/couponhub-api/pkg/validate"
)

const dueDateLayout = "2006-01-02"

// CouponUseCase alta de cupones asociados a una tienda y a categorías.
type CouponUseCase struct {
	repo     repository.CouponRepository
	uploader ports.ImageUploader
	log      *logger.Logger
}

// NewCouponUseCase construye el caso de uso.
func NewCouponUseCase(repo repository.CouponRepository, uploader ports.ImageUploader, log *logger.Logger) *CouponUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CouponUseCase{repo: repo, uploader: uploader, log: log.Component("catalog.coupon")}
}

// Create valida, sube el logo opcional y persiste el cupón.
func (uc *CouponUseCase) Create(ctx context.Context, in dto.CreateCouponRequest, logo []byte) (*dto.CouponResponse, error) {
	in.Normalize()
	if errs := validate.Struct(in); errs != nil {
		return nil, errs
	}
	storeID, err := strconv.ParseInt(in.Store, 10, 64)
	if err != nil || storeID <= 0 {
		return nil, fmt.Errorf("%w: store inválido %q", domain.ErrInvalidInput, in.Store)
	}
	categoryIDs, err := parseIDs("categories", in.Categories)
	if err != nil {
		return nil, err
	}

	coupon := &entity.Coupon{
		StoreID:     storeID,
		Title:       in.Title,
		Type:        in.Type,
		Description: optionalText(in.Description),
		RefLink:     optionalPlain(in.RefLink),
		IsVerified:  in.IsVerified,
		CategoryIDs: categoryIDs,
	}
	if in.Type == entity.CouponTypeCode {
		coupon.Code = optionalPlain(in.Code)
	}
	if in.Discount != "" {
		d, err := decimal.NewFromString(in.Discount)
		if err != nil {
			return nil, fmt.Errorf("%w: discount %q", domain.ErrInvalidInput, in.Discount)
		}
		coupon.Discount = decimal.NewNullDecimal(d)
	}
	if in.DueDate != "" {
		due, err := time.Parse(dueDateLayout, in.DueDate)
		if err != nil {
			return nil, fmt.Errorf("%w: due_date %q", domain.ErrInvalidInput, in.DueDate)
		}
		coupon.DueDate = &due
	}

	if len(logo) > 0 {
		url, err := uploadLogo(ctx, uc.uploader, logo, CouponImageFolder)
		if err != nil {
			uc.log.Error().Err(err).Str("coupon", in.Title).Msg("subida de logo de cupón")
			return nil, err
		}
		coupon.LogoURL = &url
	}

	if err := uc.repo.Create(ctx, coupon); err != nil {
		uc.log.Warn().Err(err).Str("coupon", in.Title).Int64("store_id", storeID).Msg("crear cupón")
		return nil, err
	}
	return &dto.CouponResponse{
		ID:          coupon.ID,
		StoreID:     coupon.StoreID,
		Title:       coupon.Title,
		Type:        coupon.Type,
		Code:        coupon.Code,
		Description: coupon.Description,
		Discount:    coupon.Discount,
		DueDate:     coupon.DueDate,
		RefLink:     coupon.RefLink,
		IsVerified:  coupon.IsVerified,
		LogoURL:     coupon.LogoURL,
		Categories:  nonNil(coupon.CategoryIDs),
		CreatedAt:   coupon.CreatedAt,
	}, nil
}
