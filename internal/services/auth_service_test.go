package services

import (
	"testing"
	"time"

	"github.com/campuslink/exchange-backend/internal/config"
	"github.com/campuslink/exchange-backend/internal/dto"
	"github.com/campuslink/exchange-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 168 * time.Hour,
	}
}

func TestRegisterLoginRefresh(t *testing.T) {
	db := openTestDB(t)
	svc := NewAuthService(db, testAuthConfig())

	resp, err := svc.Register(&dto.RegisterRequest{
		Email:      "anna@student.example.edu",
		Password:   "correct-horse",
		Nickname:   "anna",
		University: "Uppsala",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, models.UserStatusActive, resp.User.Status)

	_, err = svc.Register(&dto.RegisterRequest{Email: "anna@student.example.edu", Password: "correct-horse"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	login, err := svc.Login(&dto.LoginRequest{Email: "anna@student.example.edu", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)

	_, err = svc.Login(&dto.LoginRequest{Email: "anna@student.example.edu", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	refreshed, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	// Refresh tokens are single use.
	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	db := openTestDB(t)
	svc := NewAuthService(db, testAuthConfig())

	resp, err := svc.Register(&dto.RegisterRequest{Email: "ben@student.example.edu", Password: "long-enough-pw"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(&dto.LogoutRequest{RefreshToken: resp.RefreshToken}))

	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}
