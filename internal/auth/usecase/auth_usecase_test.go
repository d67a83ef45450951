package usecase

import (
	"path/filepath"
	"testing"
	"time"

	"fintrack-backend/internal/apperr"
	"fintrack-backend/internal/auth/domain"
	authdto "fintrack-backend/internal/auth/dto"
	"fintrack-backend/internal/auth/repository"
	"fintrack-backend/internal/auth/token"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestUsecase(t *testing.T) AuthUsecase {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}))

	tokens := token.NewService([]byte("test-secret"), time.Hour)
	return NewAuthUsecase(repository.NewUserRepository(db), tokens)
}

func registerReq(email string) *authdto.RegisterRequest {
	return &authdto.RegisterRequest{
		Name:                 "Alice",
		Email:                email,
		Password:             "secret1",
		PasswordConfirmation: "secret1",
	}
}

func TestRegister(t *testing.T) {
	uc := newTestUsecase(t)

	resp, err := uc.Register(registerReq("alice@x.com"))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice@x.com", resp.User.Email)
	// The raw password is never retained
	assert.NotEqual(t, "secret1", resp.User.Password)

	// The issued token identifies the new account
	user, err := uc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, user.ID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc := newTestUsecase(t)

	_, err := uc.Register(registerReq("alice@x.com"))
	require.NoError(t, err)

	_, err = uc.Register(registerReq("alice@x.com"))
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestLogin(t *testing.T) {
	uc := newTestUsecase(t)
	_, err := uc.Register(registerReq("alice@x.com"))
	require.NoError(t, err)

	resp, err := uc.Login(&authdto.LoginRequest{Email: "alice@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc := newTestUsecase(t)
	_, err := uc.Register(registerReq("alice@x.com"))
	require.NoError(t, err)

	_, err = uc.Login(&authdto.LoginRequest{Email: "alice@x.com", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindAuthentication, apperr.KindOf(err))
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc := newTestUsecase(t)

	_, err := uc.Login(&authdto.LoginRequest{Email: "nobody@x.com", Password: "secret1"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindAuthentication, apperr.KindOf(err))
}

func TestLogout_InvalidatesToken(t *testing.T) {
	uc := newTestUsecase(t)
	resp, err := uc.Register(registerReq("alice@x.com"))
	require.NoError(t, err)

	uc.Logout(resp.Token)

	_, err = uc.ValidateToken(resp.Token)
	require.Error(t, err)

	// Logging out twice is not an error
	uc.Logout(resp.Token)
}

func TestRefresh_SupersedesOldToken(t *testing.T) {
	uc := newTestUsecase(t)
	resp, err := uc.Register(registerReq("alice@x.com"))
	require.NoError(t, err)

	fresh, err := uc.Refresh(resp.Token)
	require.NoError(t, err)

	user, err := uc.ValidateToken(fresh)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, user.ID)

	_, err = uc.ValidateToken(resp.Token)
	require.Error(t, err)
}

func TestUpdateProfile_Name(t *testing.T) {
	uc := newTestUsecase(t)
	resp, err := uc.Register(registerReq("alice@x.com"))
	require.NoError(t, err)

	name := "Alice B"
	user, err := uc.UpdateProfile(resp.User.ID, &authdto.UpdateProfileRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alice B", user.Name)
}

func TestUpdateProfile_PasswordRequiresCurrent(t *testing.T) {
	uc := newTestUsecase(t)
	resp, err := uc.Register(registerReq("alice@x.com"))
	require.NoError(t, err)

	newPass := "secret2"
	wrong := "nope"
	_, err = uc.UpdateProfile(resp.User.ID, &authdto.UpdateProfileRequest{
		Password:             &newPass,
		PasswordConfirmation: &newPass,
		CurrentPassword:      &wrong,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindAuthentication, apperr.KindOf(err))
	assert.Equal(t, "Current password is incorrect", err.Error())

	current := "secret1"
	_, err = uc.UpdateProfile(resp.User.ID, &authdto.UpdateProfileRequest{
		Password:             &newPass,
		PasswordConfirmation: &newPass,
		CurrentPassword:      &current,
	})
	require.NoError(t, err)

	// Old password no longer verifies
	_, err = uc.Login(&authdto.LoginRequest{Email: "alice@x.com", Password: "secret1"})
	require.Error(t, err)
	_, err = uc.Login(&authdto.LoginRequest{Email: "alice@x.com", Password: "secret2"})
	require.NoError(t, err)
}

func TestUpdateProfile_EmailTakenByOther(t *testing.T) {
	uc := newTestUsecase(t)
	alice, err := uc.Register(registerReq("alice@x.com"))
	require.NoError(t, err)
	_, err = uc.Register(registerReq("bob@x.com"))
	require.NoError(t, err)

	taken := "bob@x.com"
	_, err = uc.UpdateProfile(alice.User.ID, &authdto.UpdateProfileRequest{Email: &taken})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestUpdateProfile_KeepOwnEmail(t *testing.T) {
	uc := newTestUsecase(t)
	alice, err := uc.Register(registerReq("alice@x.com"))
	require.NoError(t, err)

	same := "alice@x.com"
	_, err = uc.UpdateProfile(alice.User.ID, &authdto.UpdateProfileRequest{Email: &same})
	require.NoError(t, err)
}
