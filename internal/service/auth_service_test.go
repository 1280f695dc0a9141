package service

import (
	"context"
	"testing"
	"time"

	"github.com/mflath/TImesheets/internal/auth"
	"github.com/mflath/TImesheets/internal/dto"
	"github.com/mflath/TImesheets/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// memUserRepo is an in-memory UserRepository for exercising the service layer
// without a database.
type memUserRepo struct {
	nextID uint
	users  map[string]*model.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{nextID: 1, users: make(map[string]*model.User)}
}

func (m *memUserRepo) Create(_ context.Context, u *model.User) error {
	u.ID = m.nextID
	m.nextID++
	m.users[u.Username] = u
	return nil
}

func (m *memUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	u, ok := m.users[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (m *memUserRepo) FindByID(_ context.Context, id uint) (*model.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memUserRepo) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *memUserRepo) UpdatePassword(_ context.Context, username, hash string) error {
	u, ok := m.users[username]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.HashedPassword = hash
	return nil
}

func (m *memUserRepo) UpdateUsernameRole(ctx context.Context, id uint, username, role string) error {
	u, err := m.FindByID(ctx, id)
	if err != nil {
		return err
	}
	delete(m.users, u.Username)
	u.Username = username
	u.Role = role
	m.users[username] = u
	return nil
}

func (m *memUserRepo) UpdateProfile(_ context.Context, username string, phone, email, prefs *string) error {
	u, ok := m.users[username]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.PhoneNumber = phone
	u.Email = email
	u.NotificationPreferences = prefs
	return nil
}

func (m *memUserRepo) SetTwoFactor(_ context.Context, username string, enabled bool) error {
	u, ok := m.users[username]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.TwoFactorEnabled = enabled
	return nil
}

func (m *memUserRepo) SaveFeedback(_ context.Context, username, feedback string) error {
	u, ok := m.users[username]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Feedback = &feedback
	return nil
}

func (m *memUserRepo) ListFeedback(_ context.Context) ([]model.User, error) {
	var out []model.User
	for _, u := range m.users {
		if u.Feedback != nil {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (m *memUserRepo) Deactivate(ctx context.Context, id uint) error {
	u, err := m.FindByID(ctx, id)
	if err != nil {
		return err
	}
	now := time.Now()
	u.IsActive = false
	u.DeactivationDate = &now
	return nil
}

func (m *memUserRepo) Reactivate(ctx context.Context, id uint) error {
	u, err := m.FindByID(ctx, id)
	if err != nil {
		return err
	}
	u.IsActive = true
	u.DeactivationDate = nil
	return nil
}

func (m *memUserRepo) Delete(ctx context.Context, id uint) error {
	u, err := m.FindByID(ctx, id)
	if err != nil {
		return err
	}
	delete(m.users, u.Username)
	return nil
}

func newTestAuthService(repo *memUserRepo) AuthService {
	return NewAuthService(repo, auth.NewHasher(), auth.NewTokenService("unit-test-secret"))
}

func register(t *testing.T, svc AuthService, username, password, role string) *dto.RegisterResponse {
	t.Helper()
	resp, err := svc.Register(context.Background(), dto.RegisterRequest{
		Username: username,
		Password: password,
		Role:     role,
	})
	require.NoError(t, err)
	return resp
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	resp := register(t, svc, "alice", "hunter22", "employee")
	assert.Equal(t, "User registered successfully", resp.Message)
	assert.NotZero(t, resp.UserID)

	// Stored hash must not be the plaintext
	stored := repo.users["alice"]
	assert.NotEqual(t, "hunter22", stored.HashedPassword)
	assert.True(t, stored.IsActive)
	assert.Nil(t, stored.DeactivationDate)

	login, err := svc.Login(ctx, dto.LoginRequest{Username: "alice", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, "Login successful", login.Message)
	assert.Equal(t, "employee", login.Role)

	// Returned token must verify against the same secret
	claims, err := auth.NewTokenService("unit-test-secret").Verify(login.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, resp.UserID, claims.UserID)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newTestAuthService(newMemUserRepo())
	register(t, svc, "alice", "hunter22", "employee")

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Username: "alice",
		Password: "another6",
		Role:     "admin",
	})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc := newTestAuthService(newMemUserRepo())
	register(t, svc, "alice", "hunter22", "employee")
	ctx := context.Background()

	_, wrongPassword := svc.Login(ctx, dto.LoginRequest{Username: "alice", Password: "wrong-pw"})
	_, noSuchUser := svc.Login(ctx, dto.LoginRequest{Username: "nobody", Password: "hunter22"})

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, noSuchUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), noSuchUser.Error())
}

func TestLoginDeactivatedAccount(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	resp := register(t, svc, "bob", "hunter22", "employee")
	require.NoError(t, svc.Deactivate(ctx, resp.UserID))

	// Correct password on a deactivated account reveals the deactivated state
	_, err := svc.Login(ctx, dto.LoginRequest{Username: "bob", Password: "hunter22"})
	assert.ErrorIs(t, err, ErrAccountDeactivated)

	// Wrong password on the same account must NOT reveal it
	_, err = svc.Login(ctx, dto.LoginRequest{Username: "bob", Password: "wrong-pw"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Deactivation stamps the date; reactivation clears it
	assert.NotNil(t, repo.users["bob"].DeactivationDate)
	require.NoError(t, svc.Reactivate(ctx, resp.UserID))
	assert.Nil(t, repo.users["bob"].DeactivationDate)

	login, err := svc.Login(ctx, dto.LoginRequest{Username: "bob", Password: "hunter22"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
}

func TestDeactivateUnknownUser(t *testing.T) {
	svc := newTestAuthService(newMemUserRepo())
	assert.ErrorIs(t, svc.Deactivate(context.Background(), 999), ErrNotFound)
}

func TestUpdatePassword(t *testing.T) {
	svc := newTestAuthService(newMemUserRepo())
	ctx := context.Background()
	register(t, svc, "alice", "hunter22", "employee")

	require.NoError(t, svc.UpdatePassword(ctx, "alice", "newpass99"))

	_, err := svc.Login(ctx, dto.LoginRequest{Username: "alice", Password: "hunter22"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "alice", Password: "newpass99"})
	assert.NoError(t, err)

	assert.ErrorIs(t, svc.UpdatePassword(ctx, "nobody", "newpass99"), ErrNotFound)
}

func TestToggleTwoFactor(t *testing.T) {
	svc := newTestAuthService(newMemUserRepo())
	ctx := context.Background()
	register(t, svc, "alice", "hunter22", "employee")

	enabled, err := svc.ToggleTwoFactor(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, enabled)

	enabled, err = svc.ToggleTwoFactor(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, enabled)

	_, err = svc.ToggleTwoFactor(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFeedback(t *testing.T) {
	svc := newTestAuthService(newMemUserRepo())
	ctx := context.Background()
	register(t, svc, "alice", "hunter22", "employee")
	register(t, svc, "bob", "hunter22", "employee")

	require.NoError(t, svc.SubmitFeedback(ctx, "alice", "love the new UI"))

	entries, err := svc.ListFeedback(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "alice", entries[0].Username)
	assert.Equal(t, "love the new UI", entries[0].Feedback)
}

func TestGetUserOmitsHash(t *testing.T) {
	svc := newTestAuthService(newMemUserRepo())
	resp := register(t, svc, "alice", "hunter22", "supervisor")

	detail, err := svc.GetUser(context.Background(), resp.UserID)
	require.NoError(t, err)
	assert.Equal(t, "alice", detail.Username)
	assert.Equal(t, "supervisor", detail.Role)
	assert.True(t, detail.IsActive)

	_, err = svc.GetUser(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}
