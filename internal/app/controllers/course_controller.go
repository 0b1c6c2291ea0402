package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/genius/elearning/internal/app/models/dto"
	"github.com/genius/elearning/internal/app/services"
	"github.com/genius/elearning/internal/middleware"
	"github.com/genius/elearning/internal/pkg/helpers"
)

// CourseController handles course operations and the lesson listing of a course
type CourseController struct {
	courseService *services.CourseService
	lessonService *services.LessonService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService, lessonService *services.LessonService) *CourseController {
	return &CourseController{
		courseService: courseService,
		lessonService: lessonService,
	}
}

// List handles listing courses
// @Summary List courses
// @Description Courses newest first, each with its educational level
// @Tags courses
// @Produce json
// @Param educationalLevel query int false "Filter by educational level ID"
// @Param isActive query bool false "Filter by active flag"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} dto.APIResponse{data=[]models.Course,pagination=dto.PaginationInfo} "Courses retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Malformed educationalLevel"
// @Router /courses [get]
func (c *CourseController) List(ctx *gin.Context) {
	levelID, ok := queryID(ctx, "educationalLevel")
	if !ok {
		return
	}
	filter := dto.CourseFilter{
		EducationalLevelID: levelID,
		IsActive:           helpers.OptionalBoolQuery(ctx, "isActive"),
	}

	courses, pagination, err := c.courseService.List(ctx.Request.Context(), filter, helpers.ParsePaginationParams(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewPaginatedResponse(courses, pagination))
}

// Get handles retrieving one course
// @Summary Get course
// @Tags courses
// @Produce json
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [get]
func (c *CourseController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", "course")
	if !ok {
		return
	}

	course, err := c.courseService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course))
}

// Lessons handles listing the lessons of a course
// @Summary List course lessons
// @Description Lessons in order. Locked lessons have no video URL unless the caller is staff or holds an active subscription.
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} dto.APIResponse{data=[]models.Lesson,pagination=dto.PaginationInfo} "Lessons retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id}/lessons [get]
func (c *CourseController) Lessons(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", "course")
	if !ok {
		return
	}

	lessons, pagination, err := c.lessonService.ListByCourse(ctx.Request.Context(), id, middleware.CurrentUser(ctx), helpers.ParsePaginationParams(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewPaginatedResponse(lessons, pagination))
}

// Create handles course creation
// @Summary Create course
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=models.Course} "Course created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Staff only"
// @Router /admin/courses [post]
func (c *CourseController) Create(ctx *gin.Context) {
	var req dto.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	course, err := c.courseService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(course))
}

// Update handles course updates
// @Summary Update course
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Param request body dto.UpdateCourseRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /admin/courses/{id} [put]
func (c *CourseController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", "course")
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	course, err := c.courseService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course))
}

// Delete handles course deletion
// @Summary Delete course
// @Description Deletes the course with its lessons, exams, assignments and subscriptions
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Course deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /admin/courses/{id} [delete]
func (c *CourseController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", "course")
	if !ok {
		return
	}

	if err := c.courseService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Course deleted successfully"))
}
