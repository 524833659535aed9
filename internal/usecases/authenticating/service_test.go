package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/salon-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/salon-manager-api/internal/config"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"github.com/vfg2006/salon-manager-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) (*Service, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)

	return NewService(repo, &config.Config{SecretKey: "test-secret"}), repo
}

func activeUser(t *testing.T, password string) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &domain.User{
		ID:              "user-1",
		EstablishmentID: "est-1",
		Name:            "Maria",
		Email:           "maria@salao.com",
		PasswordHash:    string(hash),
		Role:            domain.RoleEstablishment,
		Active:          true,
	}
}

func TestService_LoginAndValidateToken(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestService(t)

	repo.EXPECT().GetUserByEmail(ctx, "maria@salao.com").Return(activeUser(t, "Senha@123"), nil)

	token, err := service.LoginUser(ctx, " Maria@Salao.com ", "Senha@123")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "est-1", claims.EstablishmentID)
	assert.Equal(t, domain.RoleEstablishment, claims.UserRole)
}

func TestService_LoginUser_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("senha incorreta", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().GetUserByEmail(ctx, "maria@salao.com").Return(activeUser(t, "Senha@123"), nil)

		_, err := service.LoginUser(ctx, "maria@salao.com", "outra")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.True(t, IsCredentialsError(err))

		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, apiErrors.ErrInvalidCredentials, authErr.Code)
		assert.Equal(t, "user-1", authErr.UserID)
	})

	t.Run("usuário desativado", func(t *testing.T) {
		service, repo := newTestService(t)
		user := activeUser(t, "Senha@123")
		user.Active = false
		repo.EXPECT().GetUserByEmail(ctx, "maria@salao.com").Return(user, nil)

		_, err := service.LoginUser(ctx, "maria@salao.com", "Senha@123")
		assert.ErrorIs(t, err, ErrUserDisabled)
	})

	t.Run("usuário inexistente", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().GetUserByEmail(ctx, "x@salao.com").Return(nil, nil)

		_, err := service.LoginUser(ctx, "x@salao.com", "Senha@123")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("falha no banco", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().GetUserByEmail(ctx, "x@salao.com").Return(nil, errors.New("conexão recusada"))

		_, err := service.LoginUser(ctx, "x@salao.com", "Senha@123")
		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, authErr.Code)
	})
}

func TestService_ValidateToken_Expired(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestService(t)
	service.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }

	repo.EXPECT().GetUserByEmail(ctx, "maria@salao.com").Return(activeUser(t, "Senha@123"), nil)

	token, err := service.LoginUser(ctx, "maria@salao.com", "Senha@123")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestService_ValidateToken_WrongSecret(t *testing.T) {
	service, _ := newTestService(t)
	other := NewService(nil, &config.Config{SecretKey: "outro-segredo"})

	token, err := generateJWT(&domain.User{ID: "user-1"}, "outro-segredo", time.Now())
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_CreateUser(t *testing.T) {
	ctx := context.Background()
	establishment := domain.Scope{EstablishmentID: "est-1", Role: domain.RoleAdmin}

	t.Run("usuário herda o estabelecimento do escopo", func(t *testing.T) {
		service, repo := newTestService(t)

		repo.EXPECT().GetUserByEmail(ctx, "joao@salao.com").Return(nil, nil)
		repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
			assert.Equal(t, "est-1", user.EstablishmentID)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Senha@123")))
			user.ID = "user-2"
			return user, nil
		})

		user, err := service.CreateUser(ctx, establishment, &domain.User{
			Name:            "João",
			Email:           "Joao@salao.com",
			PasswordHash:    "Senha@123",
			EstablishmentID: "est-2",
		})
		require.NoError(t, err)
		assert.Equal(t, "user-2", user.ID)
		assert.Equal(t, domain.RoleEstablishment, user.Role)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("somente super admin cria super admin", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.CreateUser(ctx, establishment, &domain.User{
			Name: "X", Email: "x@salao.com", PasswordHash: "Senha@123", Role: domain.RoleSuperAdmin,
		})
		assert.ErrorIs(t, err, ErrInsufficientPrivilege)
	})

	t.Run("senha fraca", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.CreateUser(ctx, establishment, &domain.User{Name: "X", Email: "x@salao.com", PasswordHash: "fraca"})
		assert.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("email já cadastrado", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().GetUserByEmail(ctx, "maria@salao.com").Return(&domain.User{ID: "user-1"}, nil)

		_, err := service.CreateUser(ctx, establishment, &domain.User{Name: "Maria", Email: "maria@salao.com", PasswordHash: "Senha@123"})
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})
}

func TestService_ListUsers(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestService(t)

	repo.EXPECT().ListUsers(ctx, "est-1").Return([]*domain.User{{ID: "user-1"}}, nil)
	repo.EXPECT().ListUsers(ctx, "").Return([]*domain.User{{ID: "user-1"}, {ID: "user-9"}}, nil)

	users, err := service.ListUsers(ctx, domain.Scope{EstablishmentID: "est-1", Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.Len(t, users, 1)

	users, err = service.ListUsers(ctx, domain.Scope{Role: domain.RoleSuperAdmin})
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		password string
		wantErr  bool
	}{
		{"Senha@123", false},
		{"curta1!", true},
		{"semmaiuscula1!", true},
		{"SEMMINUSCULA1!", true},
		{"SemNumero!!", true},
		{"SemEspecial12", true},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			err := ValidatePasswordStrength(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
