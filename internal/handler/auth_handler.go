package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/picksart/backend/internal/model"
	"github.com/picksart/backend/internal/service"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`

	Bio            string `json:"bio"`
	Specialization string `json:"specialization"`
	Description    string `json:"description"`
	Location       string `json:"location"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type UserResponse struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

func toUserResponse(p *model.Principal) UserResponse {
	return UserResponse{ID: p.ID, Name: p.Name, Email: p.Email, Role: string(p.Kind)}
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	p, err := h.svc.Signup(c.Request().Context(), service.SignupInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Role:           req.Role,
		Bio:            req.Bio,
		Specialization: req.Specialization,
		Description:    req.Description,
		Location:       req.Location,
	})
	if err != nil {
		switch err {
		case service.ErrEmailTaken:
			return c.JSON(http.StatusBadRequest, NewErrorResponse("email_taken", "email already exists"))
		case service.ErrInvalidRole:
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid role"))
		default:
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
		}
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "account created successfully",
		"user":    toUserResponse(p),
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	raw, p, err := h.svc.Login(c.Request().Context(), req.Email, req.Password, req.Role)
	if err != nil {
		switch err {
		case service.ErrInvalidRole:
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid role"))
		case service.ErrInvalidCredentials:
			return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "invalid email or password"))
		default:
			c.Logger().Errorf("login failed: %v", err)
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "login failed"))
		}
	}
	return c.JSON(http.StatusOK, LoginResponse{
		Message: "login successful",
		Token:   raw,
		User:    toUserResponse(p),
	})
}
