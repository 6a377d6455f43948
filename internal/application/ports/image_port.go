package ports

import "context"

// ImageUploader puerto de salida hacia el host externo de imágenes (Cloudinary, disco local).
// Devuelve una URL pública estable o un error; "sin imagen" nunca llega a este puerto.
type ImageUploader interface {
	Upload(ctx context.Context, data []byte, folder string) (string, error)
}
