package catalog

import (
	"context"
	"fmt"
	"html"
	"strconv"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/couponhub-api/internal/application/ports"
	"github.com/jhoicas/couponhub-api/internal/domain"
)

// Carpetas del host de imágenes por tipo de entidad.
const (
	StoreImageFolder    = "store_images"
	CategoryImageFolder = "category_images"
	CouponImageFolder   = "coupon_images"
)

// textPolicy quita las etiquetas del texto libre (descripciones, FAQ) antes de persistir.
var textPolicy = bluemonday.StrictPolicy()

// sanitize deja texto plano: bluemonday escapa las entidades al quitar etiquetas y aquí se
// deshacen, de modo que "AT&T" o "Tom's" se guardan tal cual se escribieron.
func sanitize(s string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
}

// optionalText devuelve nil para texto vacío (columna NULL).
func optionalText(s string) *string {
	s = sanitize(s)
	if s == "" {
		return nil
	}
	return &s
}

func optionalPlain(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// parseIDs convierte la selección del multi-select en ids únicos, conservando el orden de la primera aparición.
func parseIDs(field string, raw []string) ([]int64, error) {
	ids := make([]int64, 0, len(raw))
	seen := make(map[int64]struct{}, len(raw))
	for _, r := range raw {
		id, err := strconv.ParseInt(strings.TrimSpace(r), 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("%w: %s contiene un id inválido %q", domain.ErrInvalidInput, field, r)
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify genera el identificador de URL de un nombre: "Café Ñandú" -> "cafe-nandu".
func Slugify(name string) string {
	plain, _, err := transform.String(stripMarks, name)
	if err != nil {
		plain = name
	}
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(plain) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimRight(b.String(), "-")
	if slug == "" {
		// Nombres sin caracteres latinos conservan su forma en minúsculas.
		return strings.ToLower(strings.TrimSpace(name))
	}
	return slug
}

// uploadLogo sube el logo y exige una URL no vacía; cualquier fallo aborta la creación.
func uploadLogo(ctx context.Context, up ports.ImageUploader, data []byte, folder string) (string, error) {
	if up == nil {
		return "", fmt.Errorf("%w: host de imágenes no configurado", domain.ErrImageUpload)
	}
	url, err := up.Upload(ctx, data, folder)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrImageUpload, err)
	}
	if strings.TrimSpace(url) == "" {
		return "", fmt.Errorf("%w: el host no devolvió URL", domain.ErrImageUpload)
	}
	return url, nil
}
