package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/siwes/interntrack/internal/app/models"
	"github.com/siwes/interntrack/internal/app/models/dto"
	"github.com/siwes/interntrack/internal/app/services"
	"github.com/siwes/interntrack/internal/middleware"
)

// VerificationCodeController handles registration code operations
type VerificationCodeController struct {
	codeService *services.VerificationCodeService
	logger      zerolog.Logger
}

// NewVerificationCodeController creates a new VerificationCodeController
func NewVerificationCodeController(codeService *services.VerificationCodeService, logger zerolog.Logger) *VerificationCodeController {
	return &VerificationCodeController{
		codeService: codeService,
		logger:      logger,
	}
}

// Issue creates a registration code
// @Summary Issue a verification code
// @Description Coordinator only. The code is emailed to the prospective student and expires after 24 hours.
// @Tags verification-codes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.IssueCodeRequest true "Student email and department"
// @Success 201 {object} dto.APIResponse{data=dto.IssuedCodeResponse}
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Failure 409 {object} dto.APIResponse "Email already registered"
// @Router /verification-codes [post]
func (c *VerificationCodeController) Issue(ctx *gin.Context) {
	id, ok := identity(ctx)
	if !ok {
		return
	}

	var req dto.IssueCodeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithValidationError(ctx, err)
		return
	}

	code, err := c.codeService.Issue(ctx.Request.Context(), id, &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Verification code not issued")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(issuedCode(code)))
}

// Validate checks a code without consuming it
// @Summary Validate a verification code
// @Description Returns the department the code was issued for when the code is usable.
// @Tags verification-codes
// @Accept json
// @Produce json
// @Param request body dto.ValidateCodeRequest true "Email and code"
// @Success 200 {object} dto.APIResponse{data=dto.ValidateCodeResponse}
// @Failure 404 {object} dto.APIResponse "No code matches this email"
// @Failure 409 {object} dto.APIResponse "Code used or expired"
// @Router /verification-codes/validate [post]
func (c *VerificationCodeController) Validate(ctx *gin.Context) {
	var req dto.ValidateCodeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithValidationError(ctx, err)
		return
	}

	code, err := c.codeService.Validate(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ValidateCodeResponse{
		Department: code.Department,
		ExpiresAt:  code.ExpiresAt,
	}))
}

// List returns issued codes
// @Summary List verification codes
// @Description Coordinator only. Newest first.
// @Tags verification-codes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.VerificationCode}
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Router /verification-codes [get]
func (c *VerificationCodeController) List(ctx *gin.Context) {
	id, ok := identity(ctx)
	if !ok {
		return
	}

	codes, err := c.codeService.List(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(codes))
}

func issuedCode(code *models.VerificationCode) dto.IssuedCodeResponse {
	return dto.IssuedCodeResponse{
		Code:       code.Code,
		Email:      code.Email,
		Department: code.Department,
		ExpiresAt:  code.ExpiresAt,
	}
}
