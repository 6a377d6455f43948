package admin

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"net/http"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Dimensiones del logo enviado al servidor.
const (
	LogoSize    = 400
	JPEGQuality = 100
)

// ErrUnsupportedImage el archivo no es JPEG, PNG, GIF ni WebP.
var ErrUnsupportedImage = errors.New("formato de imagen no soportado")

// SelectedImage imagen elegida en el formulario.
// Preview es un data: URL del archivo original; Encoded el JPEG redimensionado que se sube.
type SelectedImage struct {
	Preview string
	Encoded []byte
}

// IsEmpty true si no hay nada que subir.
func (s SelectedImage) IsEmpty() bool { return len(s.Encoded) == 0 }

// Clear quita la imagen por completo (botón quitar o envío exitoso).
func (s *SelectedImage) Clear() {
	s.Preview = ""
	s.Encoded = nil
}

// ClearPreview quita solo la vista previa; los bytes codificados se conservan.
func (s *SelectedImage) ClearPreview() { s.Preview = "" }

// Retained true tras un envío fallido: el próximo intento vuelve a subir una imagen que ya
// no se ve. La vista debe mostrar un indicador con la opción de quitarla.
func (s SelectedImage) Retained() bool { return len(s.Encoded) > 0 && s.Preview == "" }

// SelectImage arma la vista previa con los bytes originales y re-codifica la imagen
// a JPEG con el lado mayor en LogoSize, manteniendo la proporción.
func SelectImage(raw []byte) (SelectedImage, error) {
	if len(raw) == 0 {
		return SelectedImage{}, ErrUnsupportedImage
	}
	preview := "data:" + http.DetectContentType(raw) + ";base64," + base64.StdEncoding.EncodeToString(raw)

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return SelectedImage{}, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	encoded, err := encodeLogo(src)
	if err != nil {
		return SelectedImage{}, err
	}
	return SelectedImage{Preview: preview, Encoded: encoded}, nil
}

func encodeLogo(src image.Image) ([]byte, error) {
	b := src.Bounds()
	w, h := fitBox(b.Dx(), b.Dy(), LogoSize)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("codificar JPEG: %w", err)
	}
	return buf.Bytes(), nil
}

// fitBox escala (w, h) para que el lado mayor mida size. Ningún lado queda en cero.
func fitBox(w, h, size int) (int, int) {
	if w <= 0 || h <= 0 {
		return size, size
	}
	if w >= h {
		nh := h * size / w
		if nh < 1 {
			nh = 1
		}
		return size, nh
	}
	nw := w * size / h
	if nw < 1 {
		nw = 1
	}
	return nw, size
}
