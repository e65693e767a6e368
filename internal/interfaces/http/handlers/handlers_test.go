package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authUsecases "preparos/internal/application/auth/usecases"
	changelogUsecases "preparos/internal/application/changelog/usecases"
	dashboardUsecases "preparos/internal/application/dashboard/usecases"
	profileUsecases "preparos/internal/application/profile/usecases"
	"preparos/internal/domain/user"
	"preparos/internal/interfaces/http/handlers/testutil"
	"preparos/internal/shared/authorization"
	"preparos/internal/shared/config"
	apperrors "preparos/internal/shared/errors"
	"preparos/internal/shared/utils"
)

type mockLoginUC struct {
	result *authUsecases.LoginResult
	err    error
	got    authUsecases.LoginCommand
}

func (m *mockLoginUC) Execute(_ context.Context, cmd authUsecases.LoginCommand) (*authUsecases.LoginResult, error) {
	m.got = cmd
	return m.result, m.err
}

type mockLogoutUC struct {
	err error
	got authUsecases.LogoutCommand
}

func (m *mockLogoutUC) Execute(_ context.Context, cmd authUsecases.LogoutCommand) error {
	m.got = cmd
	return m.err
}

type mockGetAuthSessionUC struct {
	result *authUsecases.SessionDTO
	err    error
}

func (m *mockGetAuthSessionUC) Execute(_ context.Context, _ authUsecases.GetSessionQuery) (*authUsecases.SessionDTO, error) {
	return m.result, m.err
}

type mockGetMeUC struct {
	result *authUsecases.MeDTO
	err    error
}

func (m *mockGetMeUC) Execute(_ context.Context, _ authUsecases.GetMeQuery) (*authUsecases.MeDTO, error) {
	return m.result, m.err
}

type mockGetProfileUC struct {
	result *profileUsecases.ProfileDTO
	err    error
}

func (m *mockGetProfileUC) Execute(_ context.Context, _ profileUsecases.GetProfileQuery) (*profileUsecases.ProfileDTO, error) {
	return m.result, m.err
}

type mockUpdateProfileUC struct {
	result *profileUsecases.ProfileDTO
	err    error
	got    profileUsecases.UpdateProfileCommand
}

func (m *mockUpdateProfileUC) Execute(_ context.Context, cmd profileUsecases.UpdateProfileCommand) (*profileUsecases.ProfileDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockGetDashboardUC struct {
	result *dashboardUsecases.DashboardDTO
	err    error
}

func (m *mockGetDashboardUC) Execute(_ context.Context) (*dashboardUsecases.DashboardDTO, error) {
	return m.result, m.err
}

type mockGetChangelogUC struct {
	result *changelogUsecases.ChangelogDTO
	err    error
}

func (m *mockGetChangelogUC) Execute(_ context.Context, _ changelogUsecases.GetChangelogQuery) (*changelogUsecases.ChangelogDTO, error) {
	return m.result, m.err
}

type mockAcknowledgeUC struct {
	version string
	err     error
}

func (m *mockAcknowledgeUC) Execute(_ context.Context, _ changelogUsecases.AcknowledgeCommand) (string, error) {
	return m.version, m.err
}

func newTestAuthHandler(login *mockLoginUC, logout *mockLogoutUC) *AuthHandler {
	return NewAuthHandler(
		login,
		logout,
		&mockGetAuthSessionUC{result: &authUsecases.SessionDTO{ID: "test-session-id"}},
		&mockGetMeUC{result: &authUsecases.MeDTO{Email: "ana@example.com"}},
		config.CookieConfig{Path: "/"},
		testutil.NewMockLogger(),
	)
}

func TestAuthHandler_Login_SetsCookie(t *testing.T) {
	now := time.Now().UTC()
	u := user.ReconstructUser(uuid.New(), "ana@example.com", "hash", authorization.RoleMember, now, now)

	login := &mockLoginUC{result: &authUsecases.LoginResult{
		User:        u,
		AccessToken: "signed.jwt.token",
		ExpiresIn:   900,
	}}
	handler := newTestAuthHandler(login, &mockLogoutUC{})

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", LoginRequest{Email: "ana@example.com", Password: "secret123"})

	handler.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ana@example.com", login.got.Email)

	var found bool
	for _, ck := range w.Result().Cookies() {
		if ck.Name == utils.AccessTokenCookie {
			found = true
			assert.Equal(t, "signed.jwt.token", ck.Value)
			assert.True(t, ck.HttpOnly)
		}
	}
	assert.True(t, found)
}

func TestAuthHandler_Login_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		login      *mockLoginUC
		wantStatus int
	}{
		{name: "invalid email", body: map[string]string{"email": "nope", "password": "x"}, login: &mockLoginUC{}, wantStatus: http.StatusBadRequest},
		{name: "bad credentials", body: LoginRequest{Email: "ana@example.com", Password: "wrong"}, login: &mockLoginUC{err: apperrors.NewInvalidCredentialsError()}, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestAuthHandler(tt.login, &mockLogoutUC{})
			c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", tt.body)

			handler.Login(c)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	logout := &mockLogoutUC{}
	handler := newTestAuthHandler(&mockLoginUC{}, logout)

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/logout", nil)
	testutil.SetAuthContext(c, uuid.New(), "member")

	handler.Logout(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "test-session-id", logout.got.SessionID)
}

func TestAuthHandler_Logout_WithoutSession(t *testing.T) {
	handler := newTestAuthHandler(&mockLoginUC{}, &mockLogoutUC{})

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/logout", nil)

	handler.Logout(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_SessionAndMe(t *testing.T) {
	handler := newTestAuthHandler(&mockLoginUC{}, &mockLogoutUC{})

	c, w := testutil.NewTestContext(http.MethodGet, "/auth/session", nil)
	testutil.SetAuthContext(c, uuid.New(), "member")
	handler.GetSession(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = testutil.NewTestContext(http.MethodGet, "/auth/me", nil)
	testutil.SetAuthContext(c, uuid.New(), "member")
	handler.GetMe(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = testutil.NewTestContext(http.MethodGet, "/auth/me", nil)
	handler.GetMe(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileHandler_UpdateProfile(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]string
		wantStatus int
		wantTheme  string
	}{
		{name: "name and theme", body: map[string]string{"full_name": "Ana Souza", "theme": "dark"}, wantStatus: http.StatusOK, wantTheme: "dark"},
		{name: "keeps theme when omitted", body: map[string]string{"full_name": "Ana Souza"}, wantStatus: http.StatusOK},
		{name: "unknown theme", body: map[string]string{"full_name": "Ana Souza", "theme": "neon"}, wantStatus: http.StatusBadRequest},
		{name: "missing name", body: map[string]string{"theme": "dark"}, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			update := &mockUpdateProfileUC{result: &profileUsecases.ProfileDTO{FullName: "Ana Souza"}}
			handler := NewProfileHandler(&mockGetProfileUC{}, update, testutil.NewMockLogger())

			userID := uuid.New()
			c, w := testutil.NewTestContext(http.MethodPut, "/profile", tt.body)
			testutil.SetAuthContext(c, userID, "member")

			handler.UpdateProfile(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, userID, update.got.UserID)
				assert.Equal(t, tt.wantTheme, update.got.Theme)
			}
		})
	}
}

func TestProfileHandler_GetProfile_NotFound(t *testing.T) {
	handler := NewProfileHandler(&mockGetProfileUC{err: apperrors.NewNotFoundError("profile not found")}, &mockUpdateProfileUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/profile", nil)
	testutil.SetAuthContext(c, uuid.New(), "member")

	handler.GetProfile(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDashboardHandler_GetDashboard(t *testing.T) {
	handler := NewDashboardHandler(&mockGetDashboardUC{result: &dashboardUsecases.DashboardDTO{SessionsThisYear: 4, Year: 2024}}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/dashboard", nil)
	handler.GetDashboard(c)
	assert.Equal(t, http.StatusOK, w.Code)

	handler = NewDashboardHandler(&mockGetDashboardUC{err: errors.New("db down")}, testutil.NewMockLogger())
	c, w = testutil.NewTestContext(http.MethodGet, "/dashboard", nil)
	handler.GetDashboard(c)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestChangelogHandler(t *testing.T) {
	handler := NewChangelogHandler(
		&mockGetChangelogUC{result: &changelogUsecases.ChangelogDTO{CurrentVersion: "1.1.0", Unseen: true}},
		&mockAcknowledgeUC{version: "v1.1.0"},
	)

	c, w := testutil.NewTestContext(http.MethodGet, "/changelog", nil)
	testutil.SetAuthContext(c, uuid.New(), "member")
	handler.GetChangelog(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = testutil.NewTestContext(http.MethodPost, "/changelog/ack", nil)
	testutil.SetAuthContext(c, uuid.New(), "member")
	handler.Acknowledge(c)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var data map[string]string
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "v1.1.0", data["changelog_version"])
}

func TestHealthHandler(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	handler := NewHealthHandler(db, nil)
	c, w := testutil.NewTestContext(http.MethodGet, "/health", nil)
	handler.HealthCheck(c)
	assert.Equal(t, http.StatusOK, w.Code)

	handler = &HealthHandler{checks: []dependencyCheck{{name: "redis", check: func(ctx context.Context) error {
		return errors.New("connection refused")
	}}}}
	c, w = testutil.NewTestContext(http.MethodGet, "/health", nil)
	handler.HealthCheck(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body["status"])
}
