package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/reda-h/wellness-companion/internal/database"
	"github.com/reda-h/wellness-companion/internal/dto"
	"github.com/reda-h/wellness-companion/internal/models"
	"github.com/reda-h/wellness-companion/internal/repository"
	"github.com/reda-h/wellness-companion/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type authTestEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	authService *services.AuthService
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}))

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	authService := services.NewAuthService(userRepo)
	handler := NewAuthHandler(authService)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/register", handler.Register)
	r.POST("/login", handler.Login)
	r.GET("/users", handler.ListUsers)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return authTestEnv{
		db:          db,
		router:      r,
		authService: authService,
	}
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := postJSON(t, env.router, "/register", map[string]string{
		"user_name": "Ana",
		"mail":      "ana@x.com",
		"password":  "secret123",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.RegisterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "User registered", response.Message)
	require.Equal(t, "Ana", response.User.Name)
	require.Equal(t, "ana@x.com", response.User.Email)
}

func TestAuthHandler_Register_MissingField(t *testing.T) {
	env := setupAuthTestEnv(t)

	tests := []map[string]string{
		{"mail": "ana@x.com", "password": "secret123"},
		{"user_name": "Ana", "password": "secret123"},
		{"user_name": "Ana", "mail": "ana@x.com"},
	}

	for _, payload := range tests {
		w := postJSON(t, env.router, "/register", payload)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.JSONEq(t, `{"message":"All fields are required"}`, w.Body.String())
	}
}

func TestAuthHandler_Register_DuplicateMail(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := postJSON(t, env.router, "/register", map[string]string{
		"user_name": "Ana", "mail": "ana@x.com", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, env.router, "/register", map[string]string{
		"user_name": "Other", "mail": "ana@x.com", "password": "different",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"message":"Email already exists"}`, w.Body.String())
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupAuthTestEnv(t)

	_, err := env.authService.Register(services.RegisterInput{
		UserName: "Ana", Mail: "ana@x.com", Password: "secret123",
	})
	require.NoError(t, err)

	w := postJSON(t, env.router, "/login", map[string]string{
		"mail": "ana@x.com", "password": "secret123",
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"name":"Ana","email":"ana@x.com"}`, w.Body.String())
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	env := setupAuthTestEnv(t)

	_, err := env.authService.Register(services.RegisterInput{
		UserName: "Ana", Mail: "ana@x.com", Password: "secret123",
	})
	require.NoError(t, err)

	// Wrong password and unknown mail must be indistinguishable.
	wrongPw := postJSON(t, env.router, "/login", map[string]string{
		"mail": "ana@x.com", "password": "wrong",
	})
	unknownMail := postJSON(t, env.router, "/login", map[string]string{
		"mail": "nobody@x.com", "password": "secret123",
	})

	require.Equal(t, http.StatusUnauthorized, wrongPw.Code)
	require.Equal(t, http.StatusUnauthorized, unknownMail.Code)
	require.JSONEq(t, wrongPw.Body.String(), unknownMail.Body.String())
	require.JSONEq(t, `{"message":"Invalid email or password"}`, wrongPw.Body.String())
}

func TestAuthHandler_Login_MissingField(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := postJSON(t, env.router, "/login", map[string]string{"mail": "ana@x.com"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"message":"Email and password required"}`, w.Body.String())
}

func TestAuthHandler_ListUsers(t *testing.T) {
	env := setupAuthTestEnv(t)

	_, err := env.authService.Register(services.RegisterInput{
		UserName: "Ana", Mail: "ana@x.com", Password: "secret123",
	})
	require.NoError(t, err)
	_, err = env.authService.Register(services.RegisterInput{
		UserName: "Bea", Mail: "bea@x.com", Password: "secret456",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var users []dto.UserListItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 2)
	require.Equal(t, "ana@x.com", users[0].Mail)
	require.Equal(t, "bea@x.com", users[1].Mail)

	// The hash must never appear in the response, under any field name.
	require.NotContains(t, w.Body.String(), "password")
	require.NotContains(t, w.Body.String(), "$2a$")
}
