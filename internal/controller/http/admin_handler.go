package http

import (
	"net/http"

	"edumart/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUseCase usecase.AdminUseCase
}

func NewAdminHandler(adminUseCase usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
	}
}

type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int64 `json:"pages"`
}

// Stats godoc
// @Summary      Dashboard statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Router       /api/admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminUseCase.Stats()
	if err != nil {
		c.JSON(usecase.Status(err), gin.H{"message": errMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats, "recentUsers": stats.RecentUsers})
}

// ListAccounts godoc
// @Summary      List all accounts
// @Description  Users and sellers merged into one role-annotated feed, newest first
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListAccounts(c *gin.Context) {
	page, limit := parsePageQuery(c)

	accounts, total, err := h.adminUseCase.ListAccounts(page, limit)
	if err != nil {
		c.JSON(usecase.Status(err), gin.H{"message": errMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":      accounts,
		"pagination": Pagination{Total: total, Page: page, Pages: pageCount(total, limit)},
	})
}

// DeleteUser godoc
// @Summary      Delete a user
// @Description  Admins cannot delete their own account
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	adminID := c.GetString("user_id")

	if err := h.adminUseCase.DeleteUser(c.Param("id"), adminID); err != nil {
		c.JSON(usecase.Status(err), gin.H{"message": errMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// ListCourses godoc
// @Summary      List all courses
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/admin/courses [get]
func (h *AdminHandler) ListCourses(c *gin.Context) {
	page, limit := parsePageQuery(c)

	courses, total, err := h.adminUseCase.ListCourses(page, limit)
	if err != nil {
		c.JSON(usecase.Status(err), gin.H{"message": errMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"courses":    courses,
		"pagination": Pagination{Total: total, Page: page, Pages: pageCount(total, limit)},
	})
}

// DeleteCourse godoc
// @Summary      Delete a course
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Course ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/courses/{id} [delete]
func (h *AdminHandler) DeleteCourse(c *gin.Context) {
	if err := h.adminUseCase.DeleteCourse(c.Param("id")); err != nil {
		c.JSON(usecase.Status(err), gin.H{"message": errMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Course deleted successfully"})
}

// ListProducts godoc
// @Summary      List all products
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/admin/products [get]
func (h *AdminHandler) ListProducts(c *gin.Context) {
	page, limit := parsePageQuery(c)

	products, total, err := h.adminUseCase.ListProducts(page, limit)
	if err != nil {
		c.JSON(usecase.Status(err), gin.H{"message": errMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products":   products,
		"pagination": Pagination{Total: total, Page: page, Pages: pageCount(total, limit)},
	})
}

// DeleteProduct godoc
// @Summary      Delete a product
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Product ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/products/{id} [delete]
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	if err := h.adminUseCase.DeleteProduct(c.Param("id")); err != nil {
		c.JSON(usecase.Status(err), gin.H{"message": errMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
