package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/siwes/interntrack/internal/app/models/dto"
	"github.com/siwes/interntrack/internal/app/services"
	"github.com/siwes/interntrack/internal/middleware"
)

// AssignmentController handles supervisor assignment
type AssignmentController struct {
	assignmentService *services.AssignmentService
	logger            zerolog.Logger
}

// NewAssignmentController creates a new AssignmentController
func NewAssignmentController(assignmentService *services.AssignmentService, logger zerolog.Logger) *AssignmentController {
	return &AssignmentController{
		assignmentService: assignmentService,
		logger:            logger,
	}
}

// Assign assigns an institution supervisor to a student
// @Summary Assign a supervisor
// @Description HOD only, for students and supervisors of the HOD's department. Reassigning replaces the supervisor.
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AssignStudentRequest true "Student and supervisor"
// @Success 200 {object} dto.APIResponse{data=models.Assignment}
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Failure 403 {object} dto.APIResponse "Forbidden or another department"
// @Failure 404 {object} dto.APIResponse "Student or supervisor not found"
// @Router /assignments [post]
func (c *AssignmentController) Assign(ctx *gin.Context) {
	id, ok := identity(ctx)
	if !ok {
		return
	}

	var req dto.AssignStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithValidationError(ctx, err)
		return
	}

	assignment, err := c.assignmentService.Assign(ctx.Request.Context(), id, &req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("studentID", req.StudentID).Int64("supervisorID", req.SupervisorID).Msg("Assignment rejected")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(assignment))
}

// ListDepartment lists the HOD's students with their assignments
// @Summary Department students and assignments
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.DepartmentStudent}
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Router /assignments/department [get]
func (c *AssignmentController) ListDepartment(ctx *gin.Context) {
	id, ok := identity(ctx)
	if !ok {
		return
	}

	students, err := c.assignmentService.ListDepartmental(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(students))
}

// ListMine lists the calling supervisor's assignees
// @Summary My assigned students
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.SupervisedAssignment}
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Router /assignments/mine [get]
func (c *AssignmentController) ListMine(ctx *gin.Context) {
	id, ok := identity(ctx)
	if !ok {
		return
	}

	assignments, err := c.assignmentService.ListMine(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(assignments))
}
