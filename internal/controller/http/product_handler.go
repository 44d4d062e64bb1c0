package http

import (
	"net/http"

	"edumart/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productUseCase usecase.ProductUseCase
}

func NewProductHandler(productUseCase usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

type ProductForm struct {
	Title         string `form:"title"`
	Name          string `form:"name"`
	AuthorName    string `form:"authorName"`
	Description   string `form:"description"`
	Price         string `form:"price"`
	OriginalPrice string `form:"originalPrice"`
	Category      string `form:"category"`
}

func (f ProductForm) input() usecase.ProductInput {
	return usecase.ProductInput{
		Title:         f.Title,
		Name:          f.Name,
		AuthorName:    f.AuthorName,
		Description:   f.Description,
		Price:         f.Price,
		OriginalPrice: f.OriginalPrice,
		Category:      f.Category,
	}
}

// Create godoc
// @Summary      Create a product
// @Description  Sellers only; requires an image upload (max 5 MB, jpeg/jpg/png/gif/webp)
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        image formData file true "Product image"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	sellerID := c.GetString("seller_id")

	var form ProductForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Failed to parse form"})
		return
	}

	product, err := h.productUseCase.Create(sellerID, form.input(), optionalFormFile(c, "image"))
	if err != nil {
		listingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": product})
}

// List godoc
// @Summary      List products
// @Description  Public; supports category, minPrice, maxPrice and search filters, newest first
// @Tags         products
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/products [get]
func (h *ProductHandler) List(c *gin.Context) {
	filter, ok := parseListingFilter(c)
	if !ok {
		return
	}
	filter.Level = ""

	products, err := h.productUseCase.List(filter)
	if err != nil {
		listingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(products), "data": products})
}

// GetBySeller godoc
// @Summary      List a seller's products
// @Tags         products
// @Produce      json
// @Param        sellerId path string true "Seller ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/products/seller/{sellerId} [get]
func (h *ProductHandler) GetBySeller(c *gin.Context) {
	products, err := h.productUseCase.GetBySeller(c.Param("sellerId"))
	if err != nil {
		listingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(products), "data": products})
}

// Get godoc
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id path string true "Product ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.productUseCase.Get(c.Param("id"))
	if err != nil {
		listingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": product})
}

// Update godoc
// @Summary      Update a product
// @Description  Owning seller only; omitted fields keep their prior values, image optional
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Product ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	sellerID := c.GetString("seller_id")

	var form ProductForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Failed to parse form"})
		return
	}

	product, err := h.productUseCase.Update(c.Param("id"), sellerID, form.input(), optionalFormFile(c, "image"))
	if err != nil {
		listingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": product})
}

// Delete godoc
// @Summary      Delete a product
// @Description  Owning seller only
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Product ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	sellerID := c.GetString("seller_id")

	if err := h.productUseCase.Delete(c.Param("id"), sellerID); err != nil {
		listingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted successfully"})
}
