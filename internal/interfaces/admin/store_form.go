package admin

import (
	"context"

	"github.com/jhoicas/couponhub-api/internal/application/dto"
	"github.com/jhoicas/couponhub-api/pkg/validate"
)

// StoreCreator envía el alta de tienda; *apiclient.Client lo implementa.
type StoreCreator interface {
	CreateStore(ctx context.Context, in dto.CreateStoreRequest, logo []byte) (*dto.CreateStoreResponse, error)
}

// StoreForm estado del formulario "Create Store".
type StoreForm struct {
	Name            string
	Title           string
	RefLink         string
	AddToHomePage   string // yes | no
	AverageDiscount string
	BestOffer       string
	Description     string
	Hint            string
	MoreAbout       string
	FAQ             FAQList
	Categories      *MultiSelect
	SimilarStores   *MultiSelect
	Logo            SelectedImage

	client StoreCreator
	lifecycle
}

// NewStoreForm construye el formulario con sus valores por defecto.
// Las listas de opciones se copian; invalidators se recargan tras un alta exitosa.
func NewStoreForm(client StoreCreator, categories, similarStores []Option, n Notifier, invalidators ...Invalidator) *StoreForm {
	f := &StoreForm{
		Categories:    NewMultiSelect(categories),
		SimilarStores: NewMultiSelect(similarStores),
		client:        client,
		lifecycle: lifecycle{
			notifier:     n,
			invalidators: invalidators,
			successMsg:   "Store created successfully.",
			idleLabel:    "Create Store",
		},
	}
	f.Reset()
	return f
}

// Reset vuelve todos los campos a su valor por defecto, imagen incluida.
func (f *StoreForm) Reset() {
	f.Name, f.Title, f.RefLink = "", "", ""
	f.AddToHomePage = dto.HomePageNo
	f.AverageDiscount, f.BestOffer = "", ""
	f.Description, f.Hint, f.MoreAbout = "", "", ""
	f.FAQ.Reset()
	f.Categories.Reset()
	f.SimilarStores.Reset()
	f.Logo.Clear()
}

// SelectLogo procesa el archivo elegido. Si falla, la imagen anterior se mantiene.
func (f *StoreForm) SelectLogo(raw []byte) error {
	img, err := SelectImage(raw)
	if err != nil {
		return err
	}
	f.Logo = img
	return nil
}

// RemoveLogo quita la imagen y su vista previa.
func (f *StoreForm) RemoveLogo() { f.Logo.Clear() }

// Request valores actuales como cuerpo "data" del multipart.
func (f *StoreForm) Request() dto.CreateStoreRequest {
	return dto.CreateStoreRequest{
		Name:            f.Name,
		Title:           f.Title,
		RefLink:         f.RefLink,
		AddToHomePage:   f.AddToHomePage,
		AverageDiscount: f.AverageDiscount,
		BestOffer:       f.BestOffer,
		Description:     f.Description,
		Hint:            f.Hint,
		MoreAbout:       f.MoreAbout,
		FAQ:             f.FAQ.Items(),
		Categories:      f.Categories.Values(),
		SimilarStores:   f.SimilarStores.Values(),
	}
}

// FieldErrors validación en vivo con el mismo esquema que el servidor.
func (f *StoreForm) FieldErrors() validate.FieldErrors {
	in := f.Request()
	in.Normalize()
	return validate.Struct(in)
}

// Submit envía el formulario. Ver lifecycle.submit para el reseteo según el resultado.
func (f *StoreForm) Submit(ctx context.Context) error {
	in := f.Request()
	in.Normalize()
	logo := f.Logo.Encoded
	return f.submit(ctx, validate.Struct(in) == nil,
		func(ctx context.Context) (bool, error) {
			out, err := f.client.CreateStore(ctx, in, logo)
			if err != nil {
				return false, err
			}
			return out.Success, nil
		},
		f.Reset,
		f.Logo.ClearPreview,
	)
}
