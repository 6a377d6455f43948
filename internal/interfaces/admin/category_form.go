package admin

import (
	"context"

	"github.com/jhoicas/couponhub-api/internal/application/dto"
	"github.com/jhoicas/couponhub-api/pkg/validate"
)

// CategoryCreator envía el alta de categoría.
type CategoryCreator interface {
	CreateCategory(ctx context.Context, in dto.CreateCategoryRequest, logo []byte) (*dto.CreateCategoryResponse, error)
}

// CategoryForm estado del formulario "Create Category".
type CategoryForm struct {
	Name              string
	Description       string
	Stores            *MultiSelect
	SimilarCategories *MultiSelect
	Logo              SelectedImage

	client CategoryCreator
	lifecycle
}

// NewCategoryForm construye el formulario vacío.
func NewCategoryForm(client CategoryCreator, stores, similarCategories []Option, n Notifier, invalidators ...Invalidator) *CategoryForm {
	f := &CategoryForm{
		Stores:            NewMultiSelect(stores),
		SimilarCategories: NewMultiSelect(similarCategories),
		client:            client,
		lifecycle: lifecycle{
			notifier:     n,
			invalidators: invalidators,
			successMsg:   "Category created successfully.",
			idleLabel:    "Create Category",
		},
	}
	f.Reset()
	return f
}

// Reset vuelve todos los campos a su valor por defecto.
func (f *CategoryForm) Reset() {
	f.Name, f.Description = "", ""
	f.Stores.Reset()
	f.SimilarCategories.Reset()
	f.Logo.Clear()
}

// SelectLogo procesa el archivo elegido.
func (f *CategoryForm) SelectLogo(raw []byte) error {
	img, err := SelectImage(raw)
	if err != nil {
		return err
	}
	f.Logo = img
	return nil
}

// RemoveLogo quita la imagen y su vista previa.
func (f *CategoryForm) RemoveLogo() { f.Logo.Clear() }

// Request valores actuales como cuerpo "data".
func (f *CategoryForm) Request() dto.CreateCategoryRequest {
	return dto.CreateCategoryRequest{
		Name:              f.Name,
		Description:       f.Description,
		Stores:            f.Stores.Values(),
		SimilarCategories: f.SimilarCategories.Values(),
	}
}

// FieldErrors validación en vivo.
func (f *CategoryForm) FieldErrors() validate.FieldErrors {
	in := f.Request()
	in.Normalize()
	return validate.Struct(in)
}

// Submit envía el formulario.
func (f *CategoryForm) Submit(ctx context.Context) error {
	in := f.Request()
	in.Normalize()
	logo := f.Logo.Encoded
	return f.submit(ctx, validate.Struct(in) == nil,
		func(ctx context.Context) (bool, error) {
			out, err := f.client.CreateCategory(ctx, in, logo)
			if err != nil {
				return false, err
			}
			return out.Success, nil
		},
		f.Reset,
		f.Logo.ClearPreview,
	)
}
