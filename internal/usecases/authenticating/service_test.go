package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webyte/ploutos-ledger-api/infrastructure/repository/mocks"
	"github.com/webyte/ploutos-ledger-api/internal/config"
	"github.com/webyte/ploutos-ledger-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{Secret: "segredo-de-teste"},
	}
}

func hashDe(t *testing.T, senha string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockUserRepository(ctrl)
	service := NewService(repo, testConfig())

	repo.EXPECT().GetUserByUsername("caderno").Return(&domain.User{
		ID:           1,
		Username:     "caderno",
		PasswordHash: hashDe(t, "caderno2025"),
		Role:         domain.RoleUser,
		Active:       true,
	}, nil)

	result, err := service.LoginUser("caderno", "caderno2025")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, domain.RoleUser, result.Role)
	assert.Equal(t, "caderno", result.Username)

	// O token gerado deve ser aceito pelo próprio serviço
	claims, err := service.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, "caderno", claims.Username)
}

func TestLoginUserSenhaErrada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockUserRepository(ctrl)
	service := NewService(repo, testConfig())

	repo.EXPECT().GetUserByUsername("caderno").Return(&domain.User{
		ID:           1,
		Username:     "caderno",
		PasswordHash: hashDe(t, "caderno2025"),
		Active:       true,
	}, nil)

	_, err := service.LoginUser("caderno", "errada")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUserInexistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockUserRepository(ctrl)
	service := NewService(repo, testConfig())

	repo.EXPECT().GetUserByUsername("fantasma").Return(nil, nil)

	_, err := service.LoginUser("fantasma", "qualquer")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUserDesativado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockUserRepository(ctrl)
	service := NewService(repo, testConfig())

	repo.EXPECT().GetUserByUsername("caderno").Return(&domain.User{
		ID:           1,
		Username:     "caderno",
		PasswordHash: hashDe(t, "caderno2025"),
		Active:       false,
	}, nil)

	_, err := service.LoginUser("caderno", "caderno2025")
	assert.ErrorIs(t, err, ErrUserDisabled)
}

func TestCreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockUserRepository(ctrl)
	service := NewService(repo, testConfig())

	repo.EXPECT().GetUserByUsername("novo").Return(nil, nil)
	repo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *domain.User) (*domain.User, error) {
		// A senha nunca é armazenada em claro
		assert.NotEqual(t, "senha-forte", u.PasswordHash)
		assert.Equal(t, domain.RoleUser, u.Role)
		assert.True(t, u.Active)
		u.ID = 7
		return u, nil
	})

	user, err := service.CreateUser(&domain.User{Username: " novo ", PasswordHash: "senha-forte"})
	require.NoError(t, err)
	assert.Equal(t, 7, user.ID)
	assert.Equal(t, "novo", user.Username)
	assert.Empty(t, user.PasswordHash)
}

func TestCreateUserDuplicado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockUserRepository(ctrl)
	service := NewService(repo, testConfig())

	repo.EXPECT().GetUserByUsername("caderno").Return(&domain.User{ID: 1, Username: "caderno"}, nil)

	_, err := service.CreateUser(&domain.User{Username: "caderno", PasswordHash: "senha-forte"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestValidateTokenInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockUserRepository(ctrl), testConfig())

	_, err := service.ValidateToken("nao-é-um-jwt")
	assert.Error(t, err)
}
