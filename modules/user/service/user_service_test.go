package service

import (
	"context"
	"io"
	"testing"
	"time"

	"myevent-api/core/cache"
	"myevent-api/core/errors"
	"myevent-api/core/utils"
	"myevent-api/modules/user/dto"
	"myevent-api/modules/user/entity"
	"myevent-api/modules/user/repository"

	"github.com/google/uuid"
)

type fakeRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: map[uuid.UUID]*entity.User{}}
}

func (r *fakeRepo) CreateUser(_ context.Context, u *entity.User) (*entity.User, error) {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return nil, repository.ErrDuplicateEmail
		}
	}
	cp := *u
	cp.ID = uuid.New()
	r.users[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *fakeRepo) GetUserByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeRepo) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) UpdateProfile(_ context.Context, u *entity.User) error {
	stored := r.users[u.ID]
	stored.FullName = u.FullName
	stored.Nickname = u.Nickname
	stored.UpdatedAt = u.UpdatedAt
	return nil
}

func (r *fakeRepo) UpdateImage(_ context.Context, id uuid.UUID, imageURL *string, at time.Time) error {
	r.users[id].ImageURL = imageURL
	r.users[id].UpdatedAt = at
	return nil
}

func (r *fakeRepo) DeactivateUser(_ context.Context, id uuid.UUID, at time.Time) (bool, error) {
	u, ok := r.users[id]
	if !ok || !u.Active {
		return false, nil
	}
	u.Active = false
	u.ImageURL = nil
	u.UpdatedAt = at
	return true, nil
}

type fakeUploader struct {
	deleted []string
}

func (f *fakeUploader) Upload(_ context.Context, folder, filename, _ string, _ io.Reader, _ int64) (string, error) {
	return "https://cdn.test/" + folder + "/" + filename, nil
}

func (f *fakeUploader) Delete(_ context.Context, url string) error {
	f.deleted = append(f.deleted, url)
	return nil
}

func newTestService(t *testing.T) (*UserService, *fakeRepo, *cache.MemoryCache, *fakeUploader) {
	t.Helper()
	repo := newFakeRepo()
	store := cache.NewMemoryCache(nil)
	up := &fakeUploader{}
	svc := NewUserService(repo, utils.NewTokenManager("test-secret", time.Hour), store, up, nil)
	return svc, repo, store, up
}

func register(t *testing.T, svc *UserService) *dto.UserResponse {
	t.Helper()
	user, appErr := svc.Register(context.Background(), &dto.RegisterRequest{
		FullName: "Ana Torres",
		Email:    "Ana@Example.com",
		Password: "secreto123",
		Nickname: "ana",
	})
	if appErr != nil {
		t.Fatalf("Register: %v", appErr)
	}
	return user
}

func TestRegister(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	user := register(t, svc)

	if user.Email != "ana@example.com" {
		t.Errorf("email = %q, want lower-cased", user.Email)
	}
	if user.Role != "usuario" || !user.Active {
		t.Errorf("role = %q active = %v", user.Role, user.Active)
	}

	_, appErr := svc.Register(context.Background(), &dto.RegisterRequest{
		FullName: "Otra Ana",
		Email:    "ana@example.com",
		Password: "secreto123",
	})
	if appErr == nil || appErr.Code != errors.ErrAlreadyExists {
		t.Fatalf("duplicate email: got %v", appErr)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	_, appErr := svc.Register(context.Background(), &dto.RegisterRequest{FullName: "Al", Email: "nope", Password: "123"})
	if appErr == nil || appErr.Code != errors.ErrInvalidInput {
		t.Fatalf("got %v", appErr)
	}
}

func TestLogin(t *testing.T) {
	svc, repo, _, _ := newTestService(t)
	user := register(t, svc)

	tests := []struct {
		name     string
		email    string
		password string
		code     errors.ErrorCode
	}{
		{"wrong password", "ana@example.com", "otra-clave", errors.ErrInvalidCredentials},
		{"unknown email", "nadie@example.com", "secreto123", errors.ErrInvalidCredentials},
		{"missing fields", "", "", errors.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, appErr := svc.Login(context.Background(), &dto.LoginRequest{Email: tt.email, Password: tt.password})
			if appErr == nil || appErr.Code != tt.code {
				t.Fatalf("got %v, want %s", appErr, tt.code)
			}
		})
	}

	session, appErr := svc.Login(context.Background(), &dto.LoginRequest{Email: "ANA@example.com ", Password: "secreto123"})
	if appErr != nil {
		t.Fatalf("Login: %v", appErr)
	}
	if session.Token == "" || session.User.ID != user.ID || session.ExpiresIn != 3600 {
		t.Errorf("session = %+v", session)
	}

	repo.users[user.ID].Active = false
	if _, appErr := svc.Login(context.Background(), &dto.LoginRequest{Email: "ana@example.com", Password: "secreto123"}); appErr == nil || appErr.Message != "Usuario inactivo" {
		t.Errorf("inactive user: got %v", appErr)
	}
}

func TestLogoutBlacklistsToken(t *testing.T) {
	svc, _, store, _ := newTestService(t)
	register(t, svc)
	session, _ := svc.Login(context.Background(), &dto.LoginRequest{Email: "ana@example.com", Password: "secreto123"})

	if appErr := svc.Logout(context.Background(), session.Token); appErr != nil {
		t.Fatalf("Logout: %v", appErr)
	}
	revoked, _ := store.IsTokenBlacklisted(context.Background(), session.Token)
	if !revoked {
		t.Error("token should be blacklisted after logout")
	}

	if appErr := svc.Logout(context.Background(), "garbage"); appErr == nil {
		t.Error("invalid token should fail")
	}
}

func TestCheckStatus(t *testing.T) {
	svc, repo, _, _ := newTestService(t)
	user := register(t, svc)

	status, appErr := svc.CheckStatus(context.Background(), user.ID)
	if appErr != nil || !status.Active || status.Role != "usuario" {
		t.Fatalf("status = %+v err = %v", status, appErr)
	}

	if _, appErr := svc.CheckStatus(context.Background(), uuid.New()); appErr == nil || appErr.Code != errors.ErrNotFound {
		t.Errorf("unknown user: got %v", appErr)
	}

	repo.users[user.ID].Active = false
	if _, appErr := svc.CheckStatus(context.Background(), user.ID); appErr == nil || appErr.Code != errors.ErrUnauthorized {
		t.Errorf("inactive user: got %v", appErr)
	}
}

func TestUpdateProfileReissuesToken(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	user := register(t, svc)

	nick := "anita"
	session, appErr := svc.UpdateProfile(context.Background(), user.ID, &dto.UpdateProfileRequest{Nickname: &nick})
	if appErr != nil {
		t.Fatalf("UpdateProfile: %v", appErr)
	}
	if session.User.FullName != "Ana Torres" {
		t.Errorf("full name changed to %q", session.User.FullName)
	}

	claims, err := utils.NewTokenManager("test-secret", time.Hour).ValidateAndParseToken(session.Token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Nickname == nil || *claims.Nickname != "anita" {
		t.Errorf("token nickname = %v", claims.Nickname)
	}

	if _, appErr := svc.UpdateProfile(context.Background(), user.ID, &dto.UpdateProfileRequest{}); appErr == nil || appErr.Code != errors.ErrInvalidInput {
		t.Errorf("empty update: got %v", appErr)
	}
}

func TestDeletePhotoRemovesStoredObject(t *testing.T) {
	svc, repo, _, up := newTestService(t)
	user := register(t, svc)
	old := "https://cdn.test/perfiles/old.png"
	repo.users[user.ID].ImageURL = &old

	session, appErr := svc.DeletePhoto(context.Background(), user.ID)
	if appErr != nil {
		t.Fatalf("DeletePhoto: %v", appErr)
	}
	if session.User.ImageURL != nil || repo.users[user.ID].ImageURL != nil {
		t.Error("image url should be cleared")
	}
	if len(up.deleted) != 1 || up.deleted[0] != old {
		t.Errorf("deleted = %v", up.deleted)
	}
}

func TestDeleteAccount(t *testing.T) {
	svc, repo, store, _ := newTestService(t)
	user := register(t, svc)
	session, _ := svc.Login(context.Background(), &dto.LoginRequest{Email: "ana@example.com", Password: "secreto123"})

	if appErr := svc.DeleteAccount(context.Background(), user.ID, session.Token); appErr != nil {
		t.Fatalf("DeleteAccount: %v", appErr)
	}
	if repo.users[user.ID].Active {
		t.Error("user should be deactivated")
	}
	if revoked, _ := store.IsTokenBlacklisted(context.Background(), session.Token); !revoked {
		t.Error("token should be revoked")
	}
	if _, appErr := svc.GetPublicUser(context.Background(), user.ID); appErr == nil || appErr.Code != errors.ErrNotFound {
		t.Errorf("deactivated user should be hidden: got %v", appErr)
	}
	if appErr := svc.DeleteAccount(context.Background(), user.ID, session.Token); appErr == nil || appErr.Code != errors.ErrNotFound {
		t.Errorf("second delete: got %v", appErr)
	}
}
