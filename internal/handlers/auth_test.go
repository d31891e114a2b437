package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/foliohub/portfolio-api/internal/constants"
	"github.com/foliohub/portfolio-api/internal/dto"
	apierrors "github.com/foliohub/portfolio-api/internal/errors"
	"github.com/foliohub/portfolio-api/internal/models"
	"github.com/foliohub/portfolio-api/internal/repository"
	"github.com/foliohub/portfolio-api/internal/services"
)

type authTestEnv struct {
	db          *gorm.DB
	handler     *AuthHandler
	authService *services.AuthService
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()

	db := setupTestDB(t)

	userRepo := repository.NewUserRepository(db)
	authService := services.NewAuthService(userRepo)
	handler := NewAuthHandler(authService)

	return authTestEnv{
		db:          db,
		handler:     handler,
		authService: authService,
	}
}

func sessionRouter(env authTestEnv) *gin.Engine {
	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))
	r.POST("/api/auth/signup", env.handler.Signup)
	r.POST("/api/auth/login", env.handler.Login)
	return r
}

func TestAuthHandler_Signup(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := sessionRouter(env)

	body, err := json.Marshal(map[string]string{
		"username":     "newuser",
		"password":     "supersecret",
		"display_name": "New User",
	})
	require.NoError(t, err)

	w := doJSON(r, http.MethodPost, "/api/auth/signup", body)

	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "newuser", response.Username)

	// Signup must also have created the profile row atomically.
	var profile models.Profile
	require.NoError(t, env.db.Where("user_id = ?", response.ID).First(&profile).Error)
	require.Equal(t, "newuser", profile.Username)
	require.Equal(t, "New User", profile.DisplayName)
	require.True(t, profile.IsPublic)
}

func TestAuthHandler_Signup_DuplicateUsername(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := sessionRouter(env)

	body, err := json.Marshal(map[string]string{
		"username": "taken",
		"password": "supersecret",
	})
	require.NoError(t, err)

	w := doJSON(r, http.MethodPost, "/api/auth/signup", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/api/auth/signup", body)
	require.Equal(t, http.StatusConflict, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.User{}).Where("username = ?", "taken").Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestAuthHandler_Signup_ShortPassword(t *testing.T) {
	env := setupAuthTestEnv(t)
	r := sessionRouter(env)

	body, err := json.Marshal(map[string]string{
		"username": "shortpw",
		"password": "short",
	})
	require.NoError(t, err)

	w := doJSON(r, http.MethodPost, "/api/auth/signup", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupAuthTestEnv(t)

	_, err := env.authService.Signup(services.SignupInput{
		Username: "existing",
		Password: "supersecret",
	})
	require.NoError(t, err)

	r := sessionRouter(env)

	body, err := json.Marshal(map[string]string{
		"username": "existing",
		"password": "supersecret",
	})
	require.NoError(t, err)

	w := doJSON(r, http.MethodPost, "/api/auth/login", body)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "existing", response.Username)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "expected session cookie to be set")
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	env := setupAuthTestEnv(t)

	_, err := env.authService.Signup(services.SignupInput{
		Username: "existing",
		Password: "supersecret",
	})
	require.NoError(t, err)

	r := sessionRouter(env)

	body, err := json.Marshal(map[string]string{
		"username": "existing",
		"password": "wrongpassword",
	})
	require.NoError(t, err)

	w := doJSON(r, http.MethodPost, "/api/auth/login", body)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// A failed login is distinguishable from a missing session.
	var apiErr apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	require.Equal(t, apierrors.ErrCodeInvalidCredentials, apiErr.Code)
}

func TestAuthHandler_GetCurrentUser(t *testing.T) {
	env := setupAuthTestEnv(t)

	user, err := env.authService.Signup(services.SignupInput{
		Username: "current-user",
		Password: "supersecret",
	})
	require.NoError(t, err)

	r := authedRouter(user.ID)
	r.GET("/api/auth/me", env.handler.GetCurrentUser)

	w := doJSON(r, http.MethodGet, "/api/auth/me", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, user.Username, response.Username)
}
