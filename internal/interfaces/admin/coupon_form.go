package admin

import (
	"context"

	"github.com/jhoicas/couponhub-api/internal/application/dto"
	"github.com/jhoicas/couponhub-api/internal/domain/entity"
	"github.com/jhoicas/couponhub-api/pkg/validate"
)

// CouponCreator envía el alta de cupón.
type CouponCreator interface {
	CreateCoupon(ctx context.Context, in dto.CreateCouponRequest, logo []byte) (*dto.CreateCouponResponse, error)
}

// CouponForm estado del formulario "Create Coupon".
type CouponForm struct {
	Title       string
	Type        string // code | deal
	Code        string
	Description string
	Discount    string
	DueDate     string // 2006-01-02
	RefLink     string
	IsVerified  bool
	Categories  *MultiSelect
	Logo        SelectedImage

	store        string
	storeOptions []Option
	client       CouponCreator
	lifecycle
}

// NewCouponForm construye el formulario; stores alimenta el selector de tienda.
func NewCouponForm(client CouponCreator, stores, categories []Option, n Notifier, invalidators ...Invalidator) *CouponForm {
	f := &CouponForm{
		Categories:   NewMultiSelect(categories),
		storeOptions: append([]Option(nil), stores...),
		client:       client,
		lifecycle: lifecycle{
			notifier:     n,
			invalidators: invalidators,
			successMsg:   "Coupon created successfully.",
			idleLabel:    "Create Coupon",
		},
	}
	f.Reset()
	return f
}

// Reset vuelve todos los campos a su valor por defecto.
func (f *CouponForm) Reset() {
	f.Title, f.Code, f.Description = "", "", ""
	f.Type = entity.CouponTypeDeal
	f.Discount, f.DueDate, f.RefLink = "", "", ""
	f.IsVerified = false
	f.store = ""
	f.Categories.Reset()
	f.Logo.Clear()
}

// SetStore elige la tienda del cupón entre las opciones.
func (f *CouponForm) SetStore(id string) error {
	for _, o := range f.storeOptions {
		if o.ID == id {
			f.store = id
			return nil
		}
	}
	return ErrUnknownOption
}

// Store id de la tienda elegida ("" si ninguna).
func (f *CouponForm) Store() string { return f.store }

// SelectLogo procesa el archivo elegido.
func (f *CouponForm) SelectLogo(raw []byte) error {
	img, err := SelectImage(raw)
	if err != nil {
		return err
	}
	f.Logo = img
	return nil
}

// RemoveLogo quita la imagen y su vista previa.
func (f *CouponForm) RemoveLogo() { f.Logo.Clear() }

// Request valores actuales como cuerpo "data".
func (f *CouponForm) Request() dto.CreateCouponRequest {
	return dto.CreateCouponRequest{
		Title:       f.Title,
		Type:        f.Type,
		Code:        f.Code,
		Description: f.Description,
		Discount:    f.Discount,
		DueDate:     f.DueDate,
		RefLink:     f.RefLink,
		IsVerified:  f.IsVerified,
		Store:       f.store,
		Categories:  f.Categories.Values(),
	}
}

// FieldErrors validación en vivo.
func (f *CouponForm) FieldErrors() validate.FieldErrors {
	in := f.Request()
	in.Normalize()
	return validate.Struct(in)
}

// Submit envía el formulario.
func (f *CouponForm) Submit(ctx context.Context) error {
	in := f.Request()
	in.Normalize()
	logo := f.Logo.Encoded
	return f.submit(ctx, validate.Struct(in) == nil,
		func(ctx context.Context) (bool, error) {
			out, err := f.client.CreateCoupon(ctx, in, logo)
			if err != nil {
				return false, err
			}
			return out.Success, nil
		},
		f.Reset,
		f.Logo.ClearPreview,
	)
}
