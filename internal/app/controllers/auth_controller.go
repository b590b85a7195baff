package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/siwes/interntrack/internal/app/models/dto"
	"github.com/siwes/interntrack/internal/app/services"
	"github.com/siwes/interntrack/internal/middleware"
)

// AuthController handles authentication and account operations
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Register handles student registration
// @Summary Register a student
// @Description Creates a student account using a verification code issued by the coordinator. The code is consumed.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterStudentRequest true "Registration details"
// @Success 201 {object} dto.APIResponse{data=dto.AuthResponse} "Student registered"
// @Failure 400 {object} dto.APIResponse "Invalid request format or weak password"
// @Failure 404 {object} dto.APIResponse "No code matches this email"
// @Failure 409 {object} dto.APIResponse "Code used or expired, or email already registered"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration request payload")
		middleware.AbortWithValidationError(ctx, err)
		return
	}

	resp, err := c.authService.RegisterStudent(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Registration failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// Login handles user login
// @Summary Log in
// @Description Authenticates with email and password and returns a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse} "Login successful"
// @Failure 400 {object} dto.APIResponse "Invalid request format or validation error"
// @Failure 401 {object} dto.APIResponse "Invalid credentials"
// @Failure 403 {object} dto.APIResponse "Account disabled"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		middleware.AbortWithValidationError(ctx, err)
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("email", resp.User.Email).Msg("User logged in successfully")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// RefreshToken handles refresh token request
// @Summary Refresh access token
// @Description Exchanges a refresh token for a new token pair. The old refresh token is revoked.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "Token refreshed successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request format"
// @Failure 401 {object} dto.APIResponse "Invalid, expired or revoked refresh token"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /auth/refresh [post]
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithValidationError(ctx, err)
		return
	}

	tokenResponse, err := c.authService.RefreshToken(ctx.Request.Context(), req.RefreshToken)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Refresh token failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(tokenResponse))
}

// Me returns the caller's profile
// @Summary Current user profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UserProfile}
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Account disabled or token out of date"
// @Router /me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	id, ok := identity(ctx)
	if !ok {
		return
	}

	profile, err := c.authService.GetProfile(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// CreateStaff provisions a staff account
// @Summary Create a staff account
// @Description Coordinator only. Department is required for HOD and institution supervisor accounts.
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStaffRequest true "Staff account"
// @Success 201 {object} dto.APIResponse{data=dto.StaffResponse}
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Failure 409 {object} dto.APIResponse "Email already exists"
// @Router /staff [post]
func (c *AuthController) CreateStaff(ctx *gin.Context) {
	id, ok := identity(ctx)
	if !ok {
		return
	}

	var req dto.CreateStaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithValidationError(ctx, err)
		return
	}

	staff, err := c.authService.CreateStaff(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(staff))
}

// ListSupervisors lists institution supervisors
// @Summary List institution supervisors
// @Description A HOD always sees their own department. A coordinator may filter by department.
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param department query string false "Department filter (coordinator only)"
// @Success 200 {object} dto.APIResponse{data=[]dto.StaffResponse}
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Router /supervisors [get]
func (c *AuthController) ListSupervisors(ctx *gin.Context) {
	id, ok := identity(ctx)
	if !ok {
		return
	}

	var department *string
	if d, exists := ctx.GetQuery("department"); exists && d != "" {
		department = &d
	}

	supervisors, err := c.authService.ListSupervisors(ctx.Request.Context(), id, department)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(supervisors))
}
