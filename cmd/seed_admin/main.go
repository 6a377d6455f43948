// seed_admin crea la primera cuenta con rol admin. La API solo registra cuentas con rol user.
//
// Uso: go run ./cmd/seed_admin <email> <password> [nombre]
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jhoicas/couponhub-api/internal/application/auth"
	"github.com/jhoicas/couponhub-api/internal/application/dto"
	"github.com/jhoicas/couponhub-api/internal/domain"
	"github.com/jhoicas/couponhub-api/internal/infrastructure/postgres"
	"github.com/jhoicas/couponhub-api/pkg/config"
	"github.com/jhoicas/couponhub-api/pkg/validate"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "uso: seed_admin <email> <password> [nombre]")
		os.Exit(2)
	}
	in := dto.RegisterRequest{Email: os.Args[1], Password: os.Args[2]}
	if len(os.Args) > 3 {
		in.Name = strings.Join(os.Args[3:], " ")
	}
	if errs := validate.Struct(in); errs != nil {
		fmt.Fprintf(os.Stderr, "Datos inválidos: %v\n", errs)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "Migraciones: %v\n", err)
		os.Exit(1)
	}

	uc := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	user, err := uc.CreateAdmin(ctx, in)
	if errors.Is(err, domain.ErrEmailAlreadyExists) {
		fmt.Fprintf(os.Stderr, "Ya existe una cuenta con el email %s\n", in.Email)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear admin: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Admin creado: %s (%s)\n", user.Email, user.ID)
}
