package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/Kingcorpe/practice-manager-api/infrastructure/repository/mocks"
	"github.com/Kingcorpe/practice-manager-api/internal/config"
	"github.com/Kingcorpe/practice-manager-api/internal/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{Secret: "test-secret"},
	}
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestLoginUserIssuesValidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockRepo, testConfig())

	mockRepo.EXPECT().GetUserByEmail("casey@example.com").Return(&domain.User{
		ID:           7,
		Name:         "Casey",
		Lastname:     "Tran",
		Email:        "casey@example.com",
		Active:       true,
		RoleID:       2,
		PasswordHash: hashOf(t, "Sup3r$trong"),
	}, nil)

	token, err := service.LoginUser("Casey@Example.com", "Sup3r$trong")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, 2, claims.UserRoleID)
}

func TestLoginUserFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockRepo, testConfig())

	t.Run("missing credentials", func(t *testing.T) {
		_, err := service.LoginUser("", "")
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByEmail("nobody@example.com").Return(nil, nil)
		_, err := service.LoginUser("nobody@example.com", "whatever")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("disabled account", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByEmail("off@example.com").Return(&domain.User{
			ID:           3,
			Active:       false,
			PasswordHash: hashOf(t, "Sup3r$trong"),
		}, nil)
		_, err := service.LoginUser("off@example.com", "Sup3r$trong")
		assert.ErrorIs(t, err, ErrUserDisabled)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByEmail("casey@example.com").Return(&domain.User{
			ID:           7,
			Active:       true,
			PasswordHash: hashOf(t, "Sup3r$trong"),
		}, nil)
		_, err := service.LoginUser("casey@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestValidateTokenRejectsForeignSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	issuing := NewService(mockRepo, testConfig())
	verifying := NewService(mockRepo, &config.Config{Auth: config.Auth{Secret: "other-secret"}})

	mockRepo.EXPECT().GetUserByEmail(gomock.Any()).Return(&domain.User{
		ID:           1,
		Active:       true,
		PasswordHash: hashOf(t, "Sup3r$trong"),
	}, nil)

	token, err := issuing.LoginUser("a@example.com", "Sup3r$trong")
	assert.NoError(t, err)

	_, err = verifying.ValidateToken(token)
	assert.Error(t, err)
}

func TestCreateUserLowercasesEmailAndDefaultsRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockRepo, testConfig())

	mockRepo.EXPECT().GetUserByEmail("new.advisor@example.com").Return(nil, nil)
	mockRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *domain.User) (*domain.User, error) {
		assert.Equal(t, "new.advisor@example.com", u.Email)
		assert.Equal(t, 3, u.RoleID)
		assert.False(t, u.Active)
		return u, nil
	})

	_, err := service.CreateUser(&domain.User{
		Name:         "New",
		Lastname:     "Advisor",
		Email:        "  New.Advisor@Example.COM ",
		PasswordHash: "Sup3r$trong",
	})

	assert.NoError(t, err)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockRepo, testConfig())

	mockRepo.EXPECT().GetUserByEmail("taken@example.com").Return(&domain.User{ID: 1}, nil)

	_, err := service.CreateUser(&domain.User{
		Name:         "A",
		Lastname:     "B",
		Email:        "taken@example.com",
		PasswordHash: "Sup3r$trong",
	})

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestValidatePasswordStrength(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockRepo, testConfig())

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "all classes present", password: "Sup3r$trong", valid: true},
		{name: "too short", password: "S3$a", valid: false},
		{name: "no uppercase", password: "sup3r$trong", valid: false},
		{name: "no lowercase", password: "SUP3R$TRONG", valid: false},
		{name: "no number", password: "Super$trong", valid: false},
		{name: "no special character", password: "Sup3rStrong", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrWeakPassword)
			}
		})
	}
}

func TestGenerateStrongPasswordRequiresAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockRepo, testConfig())

	mockRepo.EXPECT().GetUserByID(5).Return(&domain.User{ID: 5, RoleID: 2}, nil)

	_, err := service.GenerateStrongPassword(5, 9)
	assert.ErrorIs(t, err, ErrNoAdminPrivileges)
}

func TestGenerateStrongPasswordResetsTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockRepo, testConfig())

	mockRepo.EXPECT().GetUserByID(1).Return(&domain.User{ID: 1, RoleID: 1}, nil)
	mockRepo.EXPECT().GetUserByID(9).Return(&domain.User{ID: 9, RoleID: 3}, nil)
	mockRepo.EXPECT().UpdateUser(gomock.Any()).DoAndReturn(func(u *domain.User) error {
		assert.NotEmpty(t, u.PasswordHash)
		return nil
	})

	password, err := service.GenerateStrongPassword(1, 9)

	assert.NoError(t, err)
	assert.NoError(t, service.ValidatePasswordStrength(password))
}
