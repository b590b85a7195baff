package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/siwes/interntrack/internal/app/models/dto"
	"github.com/siwes/interntrack/internal/app/services"
	"github.com/siwes/interntrack/internal/middleware"
)

// LogbookController handles weekly logbook submission and review
type LogbookController struct {
	logbookService *services.LogbookService
	logger         zerolog.Logger
}

// NewLogbookController creates a new LogbookController
func NewLogbookController(logbookService *services.LogbookService, logger zerolog.Logger) *LogbookController {
	return &LogbookController{
		logbookService: logbookService,
		logger:         logger,
	}
}

// Submit records a weekly entry
// @Summary Submit a logbook week
// @Description Student only. Each week from 1 to 13 can be submitted once.
// @Tags logbooks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitLogbookRequest true "Weekly entry"
// @Success 201 {object} dto.APIResponse{data=models.LogbookEntry}
// @Failure 400 {object} dto.APIResponse "Invalid week or missing description"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Failure 409 {object} dto.APIResponse "Week already submitted"
// @Router /logbooks [post]
func (c *LogbookController) Submit(ctx *gin.Context) {
	id, ok := identity(ctx)
	if !ok {
		return
	}

	var req dto.SubmitLogbookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithValidationError(ctx, err)
		return
	}

	entry, err := c.logbookService.Submit(ctx.Request.Context(), id, &req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("studentID", id.UserID).Int("week", req.WeekNumber).Msg("Logbook submission rejected")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(entry))
}

// UploadImage stores an image for a logbook entry
// @Summary Upload a logbook image
// @Description Student only. Returns the URL to list in the entry's images.
// @Tags logbooks
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image (jpg, png, gif, webp; max 5MB)"
// @Success 201 {object} dto.APIResponse{data=dto.UploadImageResponse}
// @Failure 400 {object} dto.APIResponse "Missing or unsupported file"
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Router /logbooks/images [post]
func (c *LogbookController) UploadImage(ctx *gin.Context) {
	id, ok := identity(ctx)
	if !ok {
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "file is required").WithField("file")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	url, err := c.logbookService.UploadImage(ctx.Request.Context(), id, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.UploadImageResponse{URL: url}))
}

// Resubmit replaces the content of an entry sent back for review
// @Summary Resubmit a logbook entry
// @Description Owning student only, for entries in NEEDS_REVIEW. The entry returns to PENDING.
// @Tags logbooks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Logbook entry ID"
// @Param request body dto.ResubmitLogbookRequest true "New content"
// @Success 200 {object} dto.APIResponse{data=models.LogbookEntry}
// @Failure 403 {object} dto.APIResponse "Not your entry"
// @Failure 404 {object} dto.APIResponse "Entry not found"
// @Failure 409 {object} dto.APIResponse "Entry is not awaiting changes or was changed concurrently"
// @Router /logbooks/{id} [put]
func (c *LogbookController) Resubmit(ctx *gin.Context) {
	id, ok := identity(ctx)
	if !ok {
		return
	}
	logbookID, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ResubmitLogbookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithValidationError(ctx, err)
		return
	}

	entry, err := c.logbookService.Resubmit(ctx.Request.Context(), id, logbookID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(entry))
}

// Review records a supervisor's decision
// @Summary Review a logbook entry
// @Description The student's assigned institution supervisor only. Status is APPROVED or NEEDS_REVIEW.
// @Tags logbooks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Logbook entry ID"
// @Param request body dto.ReviewLogbookRequest true "Decision"
// @Success 200 {object} dto.APIResponse{data=models.LogbookEntry}
// @Failure 400 {object} dto.APIResponse "Invalid status"
// @Failure 403 {object} dto.APIResponse "Not the assigned supervisor"
// @Failure 404 {object} dto.APIResponse "Entry not found"
// @Failure 409 {object} dto.APIResponse "Entry was changed concurrently"
// @Router /logbooks/{id}/review [patch]
func (c *LogbookController) Review(ctx *gin.Context) {
	id, ok := identity(ctx)
	if !ok {
		return
	}
	logbookID, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ReviewLogbookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithValidationError(ctx, err)
		return
	}

	entry, err := c.logbookService.Review(ctx.Request.Context(), id, logbookID, &req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("logbookID", logbookID).Int64("supervisorID", id.UserID).Msg("Logbook review rejected")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(entry))
}

// ListAll lists entries for a coordinator or HOD
// @Summary List logbook entries
// @Description Coordinator sees every student, a HOD their department. Ordered by week.
// @Tags logbooks
// @Produce json
// @Security BearerAuth
// @Param studentId query int false "Filter by student"
// @Success 200 {object} dto.APIResponse{data=[]models.LogbookEntry}
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Router /logbooks [get]
func (c *LogbookController) ListAll(ctx *gin.Context) {
	id, ok := identity(ctx)
	if !ok {
		return
	}
	studentID, ok := optionalIDQuery(ctx, "studentId")
	if !ok {
		return
	}

	entries, err := c.logbookService.ListAll(ctx.Request.Context(), id, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(entries))
}

// ListMine lists the calling student's entries
// @Summary My logbook
// @Tags logbooks
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.LogbookEntry}
// @Router /logbooks/mine [get]
func (c *LogbookController) ListMine(ctx *gin.Context) {
	id, ok := identity(ctx)
	if !ok {
		return
	}

	entries, err := c.logbookService.ListOwn(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(entries))
}

// ListForStudent lists one student's entries
// @Summary A student's logbook
// @Tags logbooks
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.LogbookEntry}
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /logbooks/student/{studentId} [get]
func (c *LogbookController) ListForStudent(ctx *gin.Context) {
	id, ok := identity(ctx)
	if !ok {
		return
	}
	studentID, ok := idParam(ctx, "studentId")
	if !ok {
		return
	}

	entries, err := c.logbookService.ListForStudent(ctx.Request.Context(), id, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(entries))
}

// ListSupervised lists every entry of the caller's assignees
// @Summary Logbooks of my students
// @Tags logbooks
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.LogbookEntry}
// @Router /logbooks/supervised [get]
func (c *LogbookController) ListSupervised(ctx *gin.Context) {
	id, ok := identity(ctx)
	if !ok {
		return
	}

	entries, err := c.logbookService.ListSupervised(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(entries))
}

// Get returns one entry
// @Summary Get a logbook entry
// @Tags logbooks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Logbook entry ID"
// @Success 200 {object} dto.APIResponse{data=models.LogbookEntry}
// @Failure 403 {object} dto.APIResponse "Forbidden"
// @Failure 404 {object} dto.APIResponse "Entry not found"
// @Router /logbooks/{id} [get]
func (c *LogbookController) Get(ctx *gin.Context) {
	id, ok := identity(ctx)
	if !ok {
		return
	}
	logbookID, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	entry, err := c.logbookService.Get(ctx.Request.Context(), id, logbookID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(entry))
}
