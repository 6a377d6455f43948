package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/couponhub-api/internal/application/auth"
	"github.com/jhoicas/couponhub-api/internal/application/dto"
	"github.com/jhoicas/couponhub-api/internal/domain"
	"github.com/jhoicas/couponhub-api/internal/domain/entity"
	"github.com/jhoicas/couponhub-api/pkg/jwt"
)

type memUsers struct {
	byEmail map[string]*entity.User
}

func newMemUsers() *memUsers { return &memUsers{byEmail: map[string]*entity.User{}} }

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	if _, ok := m.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	m.byEmail[u.Email] = u
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return m.byEmail[email], nil
}

var jwtCfg = auth.JWTConfig{Secret: "secret", ExpMinutes: 10, Issuer: "test"}

func TestRegisterUser_SiempreRolUser(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemUsers(), jwtCfg)

	out, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{Email: " Ana@Example.com ", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, out.Role)
	assert.Equal(t, "ana@example.com", out.Email)
	assert.Equal(t, "ana@example.com", out.Name)
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemUsers(), jwtCfg)
	in := dto.RegisterRequest{Email: "ana@example.com", Password: "password1"}

	_, err := uc.RegisterUser(context.Background(), in)
	require.NoError(t, err)
	_, err = uc.RegisterUser(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_AdminRecibeTokenConRol(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemUsers(), jwtCfg)
	_, err := uc.CreateAdmin(context.Background(), dto.RegisterRequest{Email: "admin@example.com", Password: "password1", Name: "Quick Saver"})
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "admin@example.com", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)

	userID, role, err := jwt.Parse("secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_Errores(t *testing.T) {
	repo := newMemUsers()
	uc := auth.NewAuthUseCase(repo, jwtCfg)
	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{Email: "ana@example.com", Password: "password1"})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@example.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "ana@example.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	repo.byEmail["ana@example.com"].Status = "suspended"
	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "ana@example.com", Password: "password1"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
