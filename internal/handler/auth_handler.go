package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/katikarohith/quick-teams/internal/domain"
	"github.com/katikarohith/quick-teams/internal/dto"
	"github.com/katikarohith/quick-teams/internal/mapper"
	"github.com/katikarohith/quick-teams/internal/my_errors"
	"github.com/katikarohith/quick-teams/internal/request"
	"github.com/katikarohith/quick-teams/internal/response"

	"github.com/go-playground/validator/v10"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.Member, string, error)
	Login(ctx context.Context, email, password string) (*domain.Member, string, error)
}

type AuthHandler struct {
	authService AuthService
	validator   *validator.Validate
}

func NewAuthHandler(authService AuthService, validator *validator.Validate) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator,
	}
}

// Register godoc
// @Summary Register a new member
// @Description Create a member account and return a JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request.RegisterRequest true "Register request"
// @Success 201 {object} response.AuthResponse "Member registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 422 {object} dto.ErrorResponse "Email already used"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	member, token, err := h.authService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, my_errors.ErrEmailTaken) {
			respondError(w, http.StatusUnprocessableEntity, dto.ErrCodeEmailTaken, my_errors.ErrEmailTaken.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, dto.ErrCodeInternal, err.Error())
		return
	}

	resp := response.AuthResponse{
		Token:  token,
		Member: mapper.MapDomainMemberToDTO(member),
	}

	respondJSON(w, http.StatusCreated, resp)
}

// Login godoc
// @Summary Log in a member
// @Description Verify credentials and return a JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Login request"
// @Success 200 {object} response.AuthResponse "Member logged in successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	member, token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, my_errors.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, dto.ErrCodeBadLogin, my_errors.ErrInvalidCredentials.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, dto.ErrCodeInternal, err.Error())
		return
	}

	resp := response.AuthResponse{
		Token:  token,
		Member: mapper.MapDomainMemberToDTO(member),
	}

	respondJSON(w, http.StatusOK, resp)
}
