package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/kaytee124/jobserverapi/api/http/presenter"
	"github.com/kaytee124/jobserverapi/pkg/apperr"
	"github.com/kaytee124/jobserverapi/pkg/auth"
	"github.com/kaytee124/jobserverapi/pkg/security/jwt"
)

type AuthHandler struct {
	useCase auth.AuthUseCase
}

func NewAuthHandler(useCase auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

type registerRequest struct {
	UserType    string `json:"userType"`
	FirstName   string `json:"Firstname"`
	LastName    string `json:"Lastname"`
	DateOfBirth string `json:"DateOfBirth"`
	Gender      string `json:"Gender"`
	Email       string `json:"Email"`
	PhoneNumber string `json:"PhoneNumber"`
	Origin      string `json:"Origin"`
	CompanyName string `json:"CompanyName"`
	Password    string `json:"Password"`
}

// Register handles user registration.
// @Summary Register user
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body registerRequest true "registration payload"
// @Success 200 {object} presenter.InsertResult
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	id, err := h.useCase.Register(c.UserContext(), auth.RegisterInput{
		UserType:    auth.UserType(req.UserType),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Origin:      req.Origin,
		CompanyName: req.CompanyName,
		Password:    req.Password,
	})
	switch {
	case err == nil:
		return presenter.Inserted(c, id)
	case errors.Is(err, apperr.ErrConflict):
		return presenter.Error(c, http.StatusBadRequest, "User already exists with this email address")
	case errors.Is(err, apperr.ErrInvalidInput):
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	default:
		log.Printf("register %s: %v", req.Email, err)
		return presenter.Error(c, http.StatusNotFound, "Cannot register user, try again later")
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles user login.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "login payload"
// @Success 200 {object} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	result, err := h.useCase.Authenticate(c.UserContext(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperr.ErrInvalidCredentials) {
			return presenter.Error(c, http.StatusUnauthorized, "Invalid credentials")
		}
		log.Printf("login %s: %v", req.Email, err)
		return presenter.Error(c, http.StatusInternalServerError, "An error occurred during login")
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"message": "Login successful",
		"status":  true,
		"token":   result.Token,
		"user":    result.User,
	})
}

// Me echoes the verified token claims.
// @Summary Current session
// @Tags    auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims, ok := c.Locals(jwt.LocalClaims).(*jwt.Claims)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "unauthorized")
	}
	var expiresAt any
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"status":    true,
		"email":     claims.Email,
		"userType":  claims.UserType,
		"expiresAt": expiresAt,
	})
}
