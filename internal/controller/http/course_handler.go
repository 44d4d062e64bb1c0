package http

import (
	"mime/multipart"
	"net/http"

	"edumart/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	courseUseCase usecase.CourseUseCase
}

func NewCourseHandler(courseUseCase usecase.CourseUseCase) *CourseHandler {
	return &CourseHandler{
		courseUseCase: courseUseCase,
	}
}

// Numeric fields arrive as multipart form strings and are parsed in
// the usecase, where originalPrice defaults to price.
type CourseForm struct {
	Title         string `form:"title"`
	Name          string `form:"name"`
	AuthorName    string `form:"authorName"`
	Description   string `form:"description"`
	Price         string `form:"price"`
	OriginalPrice string `form:"originalPrice"`
	Category      string `form:"category"`
	Duration      string `form:"duration"`
	Level         string `form:"level"`
}

func (f CourseForm) input() usecase.CourseInput {
	return usecase.CourseInput{
		Title:         f.Title,
		Name:          f.Name,
		AuthorName:    f.AuthorName,
		Description:   f.Description,
		Price:         f.Price,
		OriginalPrice: f.OriginalPrice,
		Category:      f.Category,
		Duration:      f.Duration,
		Level:         f.Level,
	}
}

// optionalFormFile distinguishes "no file sent" from transport errors;
// only create treats a missing image as a validation failure.
func optionalFormFile(c *gin.Context, field string) *multipart.FileHeader {
	file, err := c.FormFile(field)
	if err != nil {
		return nil
	}
	return file
}

// Create godoc
// @Summary      Create a course
// @Description  Sellers only; requires an image upload (max 5 MB, jpeg/jpg/png/gif/webp)
// @Tags         courses
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Course title"
// @Param        name formData string true "Course name"
// @Param        authorName formData string true "Author name"
// @Param        description formData string true "Description"
// @Param        price formData number true "Price"
// @Param        originalPrice formData number false "Original price (defaults to price)"
// @Param        category formData string true "Category"
// @Param        duration formData string false "Duration (defaults to Self-paced)"
// @Param        level formData string false "Level" Enums(Beginner, Intermediate, Advanced)
// @Param        image formData file true "Course image"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Router       /api/courses [post]
func (h *CourseHandler) Create(c *gin.Context) {
	sellerID := c.GetString("seller_id")

	var form CourseForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Failed to parse form"})
		return
	}

	course, err := h.courseUseCase.Create(sellerID, form.input(), optionalFormFile(c, "image"))
	if err != nil {
		listingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": course})
}

// List godoc
// @Summary      List courses
// @Description  Public; supports category, level, minPrice, maxPrice and search filters, newest first
// @Tags         courses
// @Produce      json
// @Param        category query string false "Filter by category"
// @Param        level query string false "Filter by level"
// @Param        minPrice query number false "Minimum price"
// @Param        maxPrice query number false "Maximum price"
// @Param        search query string false "Case-insensitive search across title, name and description"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	filter, ok := parseListingFilter(c)
	if !ok {
		return
	}

	courses, err := h.courseUseCase.List(filter)
	if err != nil {
		listingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(courses), "data": courses})
}

// GetBySeller godoc
// @Summary      List a seller's courses
// @Tags         courses
// @Produce      json
// @Param        sellerId path string true "Seller ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/courses/seller/{sellerId} [get]
func (h *CourseHandler) GetBySeller(c *gin.Context) {
	courses, err := h.courseUseCase.GetBySeller(c.Param("sellerId"))
	if err != nil {
		listingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(courses), "data": courses})
}

// Get godoc
// @Summary      Get a course
// @Tags         courses
// @Produce      json
// @Param        id path string true "Course ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/courses/{id} [get]
func (h *CourseHandler) Get(c *gin.Context) {
	course, err := h.courseUseCase.Get(c.Param("id"))
	if err != nil {
		listingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": course})
}

// Update godoc
// @Summary      Update a course
// @Description  Owning seller only; omitted fields keep their prior values, image optional
// @Tags         courses
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Course ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/courses/{id} [put]
func (h *CourseHandler) Update(c *gin.Context) {
	sellerID := c.GetString("seller_id")

	var form CourseForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Failed to parse form"})
		return
	}

	course, err := h.courseUseCase.Update(c.Param("id"), sellerID, form.input(), optionalFormFile(c, "image"))
	if err != nil {
		listingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": course})
}

// Delete godoc
// @Summary      Delete a course
// @Description  Owning seller only
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Course ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/courses/{id} [delete]
func (h *CourseHandler) Delete(c *gin.Context) {
	sellerID := c.GetString("seller_id")

	if err := h.courseUseCase.Delete(c.Param("id"), sellerID); err != nil {
		listingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Course deleted successfully"})
}

// Enroll godoc
// @Summary      Enroll in a course
// @Description  Authenticated users; repeated calls keep incrementing the counter
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Course ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/courses/{id}/enroll [post]
func (h *CourseHandler) Enroll(c *gin.Context) {
	if err := h.courseUseCase.Enroll(c.Param("id")); err != nil {
		listingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Enrolled successfully"})
}
