package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/siwes/interntrack/internal/app/models/dto"
	"github.com/siwes/interntrack/internal/app/services"
	"github.com/siwes/interntrack/internal/middleware"
)

// DefenseController handles defense scheduling and grading
type DefenseController struct {
	gradingService *services.GradingService
	logger         zerolog.Logger
}

// NewDefenseController creates a new DefenseController
func NewDefenseController(gradingService *services.GradingService, logger zerolog.Logger) *DefenseController {
	return &DefenseController{
		gradingService: gradingService,
		logger:         logger,
	}
}

// Schedule books or moves a defense
// @Summary Schedule a defense
// @Description Coordinator only. All 13 logbook weeks must be approved. Rescheduling keeps a recorded grade.
// @Tags defenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ScheduleDefenseRequest true "Defense details"
// @Success 200 {object} dto.APIResponse{data=models.GradingRecord}
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Failure 412 {object} dto.APIResponse "Logbook incomplete"
// @Router /defenses [post]
func (c *DefenseController) Schedule(ctx *gin.Context) {
	id, ok := identity(ctx)
	if !ok {
		return
	}

	var req dto.ScheduleDefenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithValidationError(ctx, err)
		return
	}

	record, err := c.gradingService.Schedule(ctx.Request.Context(), id, &req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("studentID", req.StudentID).Msg("Defense scheduling rejected")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(record))
}

// List returns every scheduled defense
// @Summary List defenses
// @Tags defenses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.DefenseInfo}
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Router /defenses [get]
func (c *DefenseController) List(ctx *gin.Context) {
	id, ok := identity(ctx)
	if !ok {
		return
	}

	defenses, err := c.gradingService.ListDefenses(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(defenses))
}

// Grade records the outcome of a defense
// @Summary Grade a defense
// @Description Coordinator only. Score 0 to 100, verdict PASS or FAIL.
// @Tags defenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Param request body dto.SubmitGradeRequest true "Grade"
// @Success 200 {object} dto.APIResponse{data=models.GradingRecord}
// @Failure 400 {object} dto.APIResponse "Score out of range or invalid verdict"
// @Failure 404 {object} dto.APIResponse "No defense scheduled"
// @Router /defenses/{studentId}/grade [put]
func (c *DefenseController) Grade(ctx *gin.Context) {
	id, ok := identity(ctx)
	if !ok {
		return
	}
	studentID, ok := idParam(ctx, "studentId")
	if !ok {
		return
	}

	var req dto.SubmitGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithValidationError(ctx, err)
		return
	}

	record, err := c.gradingService.Grade(ctx.Request.Context(), id, studentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(record))
}

// GetMine returns the calling student's defense
// @Summary My defense
// @Tags defenses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.DefenseInfo}
// @Failure 404 {object} dto.APIResponse "No defense scheduled"
// @Router /defenses/me [get]
func (c *DefenseController) GetMine(ctx *gin.Context) {
	id, ok := identity(ctx)
	if !ok {
		return
	}

	info, err := c.gradingService.GetDefenseInfo(ctx.Request.Context(), id, nil)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(info))
}

// GetForStudent returns a student's defense
// @Summary A student's defense
// @Tags defenses
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.DefenseInfo}
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Failure 404 {object} dto.APIResponse "Student not found or no defense scheduled"
// @Router /defenses/{studentId} [get]
func (c *DefenseController) GetForStudent(ctx *gin.Context) {
	id, ok := identity(ctx)
	if !ok {
		return
	}
	studentID, ok := idParam(ctx, "studentId")
	if !ok {
		return
	}

	info, err := c.gradingService.GetDefenseInfo(ctx.Request.Context(), id, &studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(info))
}
