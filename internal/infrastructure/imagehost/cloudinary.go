package imagehost

import (
	"bytes"
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	cldconfig "github.com/cloudinary/cloudinary-go/v2/config"

	"github.com/jhoicas/couponhub-api/internal/application/ports"
)

// Verificar en tiempo de compilación que Cloudinary implementa ImageUploader.
var _ ports.ImageUploader = (*Cloudinary)(nil)

// CloudinaryConfig credenciales de la cuenta.
type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	BaseURL   string // vacío = API pública; los tests apuntan a httptest
}

// Cloudinary adaptador de subida firmada sobre el SDK oficial.
type Cloudinary struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinary construye el adaptador. Las credenciales se exigen al subir, no aquí.
func NewCloudinary(cfg CloudinaryConfig) (*Cloudinary, error) {
	conf, err := cldconfig.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: configuración: %w", err)
	}
	if cfg.BaseURL != "" {
		conf.API.UploadPrefix = cfg.BaseURL
	}
	cld, err := cloudinary.NewFromConfiguration(*conf)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: cliente: %w", err)
	}
	return &Cloudinary{cld: cld}, nil
}

// Upload sube los bytes a la carpeta indicada y devuelve secure_url.
func (c *Cloudinary) Upload(ctx context.Context, data []byte, folder string) (string, error) {
	conf := c.cld.Config
	if conf.Cloud.CloudName == "" || conf.Cloud.APIKey == "" || conf.Cloud.APISecret == "" {
		return "", fmt.Errorf("cloudinary: credenciales no configuradas")
	}

	res, err := c.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		Folder:       folder,
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary: subida fallida: %w", err)
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("cloudinary: %s", res.Error.Message)
	}
	if res.SecureURL == "" {
		return "", fmt.Errorf("cloudinary: respuesta sin secure_url")
	}
	return res.SecureURL, nil
}
