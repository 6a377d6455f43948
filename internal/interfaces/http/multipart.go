package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	formFieldLogo = "logo"
	formFieldData = "data"
)

var errMissingData = errors.New(msgMissingPayload)

// decodeMultipart lee la parte "data" (JSON) en dst y devuelve los bytes de la parte "logo", si vino.
// Un logo ausente o vacío devuelve nil: el alta sigue sin imagen.
func decodeMultipart(c *fiber.Ctx, dst any) ([]byte, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, fmt.Errorf("multipart body required: %w", err)
	}
	values := form.Value[formFieldData]
	if len(values) == 0 || strings.TrimSpace(values[0]) == "" {
		return nil, errMissingData
	}
	if err := json.Unmarshal([]byte(values[0]), dst); err != nil {
		return nil, fmt.Errorf("invalid data JSON: %w", err)
	}

	files := form.File[formFieldLogo]
	if len(files) == 0 || files[0].Size == 0 {
		return nil, nil
	}
	f, err := files[0].Open()
	if err != nil {
		return nil, fmt.Errorf("read logo: %w", err)
	}
	defer f.Close()
	logo, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read logo: %w", err)
	}
	return logo, nil
}
