package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"edumart/internal/entity"
	"edumart/internal/repo/persistent"
	"edumart/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func courseRouterAsSeller(handler *CourseHandler, sellerID string) *gin.Engine {
	router := setupTestRouter()
	asSeller := func(c *gin.Context) {
		c.Set("seller_id", sellerID)
	}
	router.POST("/api/courses", asSeller, handler.Create)
	router.PUT("/api/courses/:id", asSeller, handler.Update)
	router.DELETE("/api/courses/:id", asSeller, handler.Delete)
	return router
}

func multipartCourseForm(t *testing.T, fields map[string]string, withImage bool) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if withImage {
		part, err := writer.CreateFormFile("image", "cover.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("png-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestCreateCourse_HandlerSuccess(t *testing.T) {
	mockUseCase := new(MockCourseUseCase)
	handler := NewCourseHandler(mockUseCase)
	router := courseRouterAsSeller(handler, "seller-1")

	expectedInput := usecase.CourseInput{
		Title:       "Go from Scratch",
		Name:        "go-101",
		AuthorName:  "Prof. Bob",
		Description: "An introductory course",
		Price:       "49.99",
		Category:    "programming",
	}
	mockUseCase.On("Create", "seller-1", expectedInput, mock.AnythingOfType("*multipart.FileHeader")).
		Return(&entity.Course{ID: "course-1", Title: "Go from Scratch"}, nil)

	body, contentType := multipartCourseForm(t, map[string]string{
		"title":       "Go from Scratch",
		"name":        "go-101",
		"authorName":  "Prof. Bob",
		"description": "An introductory course",
		"price":       "49.99",
		"category":    "programming",
	}, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/courses", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), "course-1")
	mockUseCase.AssertExpectations(t)
}

func TestCreateCourse_MissingImagePassesNil(t *testing.T) {
	mockUseCase := new(MockCourseUseCase)
	handler := NewCourseHandler(mockUseCase)
	router := courseRouterAsSeller(handler, "seller-1")

	mockUseCase.On("Create", "seller-1", mock.Anything, (*multipart.FileHeader)(nil)).
		Return(nil, &usecase.StatusError{Code: http.StatusBadRequest, Msg: "Course image is required"})

	body, contentType := multipartCourseForm(t, map[string]string{"title": "Go from Scratch"}, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/courses", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Contains(t, w.Body.String(), "Course image is required")
}

func TestListCourses_ForwardsFilters(t *testing.T) {
	mockUseCase := new(MockCourseUseCase)
	handler := NewCourseHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/api/courses", handler.List)

	minPrice := 10.0
	maxPrice := 100.0
	mockUseCase.On("List", persistent.ListingFilter{
		Category: "programming",
		Level:    "Beginner",
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
		Search:   "go",
	}).Return([]*entity.Course{{ID: "course-1"}, {ID: "course-2"}}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/courses?category=programming&level=Beginner&minPrice=10&maxPrice=100&search=go", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":2`)
	mockUseCase.AssertExpectations(t)
}

func TestListCourses_BadPriceFilter(t *testing.T) {
	mockUseCase := new(MockCourseUseCase)
	handler := NewCourseHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/api/courses", handler.List)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/courses?minPrice=cheap", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "minPrice must be a valid number")
	mockUseCase.AssertNotCalled(t, "List")
}

func TestGetCourse_NotFound(t *testing.T) {
	mockUseCase := new(MockCourseUseCase)
	handler := NewCourseHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/api/courses/:id", handler.Get)

	mockUseCase.On("Get", "ghost").Return(nil,
		&usecase.StatusError{Code: http.StatusNotFound, Msg: "Course not found"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/courses/ghost", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Course not found", resp.Message)
}

func TestDeleteCourse_NotOwner(t *testing.T) {
	mockUseCase := new(MockCourseUseCase)
	handler := NewCourseHandler(mockUseCase)
	router := courseRouterAsSeller(handler, "seller-2")

	mockUseCase.On("Delete", "course-1", "seller-2").Return(
		&usecase.StatusError{Code: http.StatusForbidden, Msg: "Not authorized"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/courses/course-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Not authorized")
}

func TestEnroll_Success(t *testing.T) {
	mockUseCase := new(MockCourseUseCase)
	handler := NewCourseHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/api/courses/:id/enroll", handler.Enroll)

	mockUseCase.On("Enroll", "course-1").Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/courses/course-1/enroll", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Enrolled successfully")
}
