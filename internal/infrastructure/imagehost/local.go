package imagehost

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/couponhub-api/internal/application/ports"
)

var _ ports.ImageUploader = (*LocalDisk)(nil)

// PublicPrefix ruta bajo la que el servidor HTTP expone los archivos de LocalDisk.
const PublicPrefix = "/uploads"

// LocalDisk guarda las imágenes en disco (desarrollo). El servidor las sirve en PublicPrefix.
type LocalDisk struct {
	dir     string
	baseURL string
}

// NewLocalDisk dir es la raíz en disco; baseURL el origen público (ej. http://localhost:8080).
func NewLocalDisk(dir, baseURL string) *LocalDisk {
	return &LocalDisk{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

// Dir devuelve la raíz en disco.
func (l *LocalDisk) Dir() string { return l.dir }

// Upload escribe <dir>/<folder>/<uuid>.jpg y devuelve su URL pública.
func (l *LocalDisk) Upload(_ context.Context, data []byte, folder string) (string, error) {
	folder = filepath.Base(filepath.Clean("/" + folder))
	if folder == "/" || folder == "." {
		return "", fmt.Errorf("local: carpeta inválida")
	}
	target := filepath.Join(l.dir, folder)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return "", fmt.Errorf("local: crear carpeta: %w", err)
	}
	name := uuid.New().String() + ".jpg"
	if err := os.WriteFile(filepath.Join(target, name), data, 0o644); err != nil {
		return "", fmt.Errorf("local: escribir imagen: %w", err)
	}
	return fmt.Sprintf("%s%s/%s/%s", l.baseURL, PublicPrefix, folder, name), nil
}
