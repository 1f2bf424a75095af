package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reda-h/wellness-companion/internal/dto"
	apierrors "github.com/reda-h/wellness-companion/internal/errors"
	"github.com/reda-h/wellness-companion/internal/services"
)

// AuthHandler coordinates credential-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates a new user account.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "All fields are required")
		return
	}

	user, err := h.authService.Register(services.RegisterInput{
		UserName: req.UserName,
		Mail:     req.Mail,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err, "Registration error: ")
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		Message: "User registered",
		User:    dto.ToPublicUser(*user),
	})
}

// Login verifies credentials. No token is issued; the client alone keeps
// track of who is signed in.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Email and password required")
		return
	}

	user, err := h.authService.Login(services.LoginInput{
		Mail:     req.Mail,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err, "Login error: ")
		return
	}

	c.JSON(http.StatusOK, dto.ToPublicUser(*user))
}

// ListUsers returns every registered user. Password hashes never leave the
// model's json:"-" field.
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.authService.ListUsers()
	if err != nil {
		apierrors.InternalError(c, "Error: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.ToUserList(users))
}

func respondAuthError(c *gin.Context, err error, prefix string) {
	switch {
	case errors.Is(err, services.ErrAllFieldsRequired):
		apierrors.BadRequest(c, "All fields are required")
	case errors.Is(err, services.ErrMailAndPasswordRequired):
		apierrors.BadRequest(c, "Email and password required")
	case errors.Is(err, services.ErrMailTaken):
		apierrors.BadRequest(c, "Email already exists")
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.Unauthorized(c, "Invalid email or password")
	default:
		apierrors.InternalError(c, prefix+err.Error())
	}
}
