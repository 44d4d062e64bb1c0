package http

import (
	"net/http"

	"edumart/internal/entity"
	"edumart/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SellerHandler struct {
	sellerAuthUseCase usecase.SellerAuthUseCase
}

func NewSellerHandler(sellerAuthUseCase usecase.SellerAuthUseCase) *SellerHandler {
	return &SellerHandler{
		sellerAuthUseCase: sellerAuthUseCase,
	}
}

type RegisterSellerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Phone           string `json:"phone"`
	InstitutionName string `json:"institutionName"`
	Address         string `json:"address"`
}

type SellerAuthData struct {
	Token  string         `json:"token"`
	Seller *entity.Seller `json:"seller"`
}

type SellerAuthResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    SellerAuthData `json:"data"`
}

// Register godoc
// @Summary      Register a new seller
// @Description  Institutional @edu.com emails only; sellers start unverified and active
// @Tags         seller
// @Accept       json
// @Produce      json
// @Param        request body RegisterSellerRequest true "Seller registration data"
// @Success      201  {object}  SellerAuthResponse
// @Failure      400  {object}  map[string]interface{}
// @Router       /api/seller/register [post]
func (h *SellerHandler) Register(c *gin.Context) {
	var req RegisterSellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	seller, token, err := h.sellerAuthUseCase.RegisterSeller(usecase.RegisterSellerInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Phone:           req.Phone,
		InstitutionName: req.InstitutionName,
		Address:         req.Address,
	})
	if err != nil {
		c.JSON(usecase.Status(err), gin.H{"success": false, "message": errMessage(err)})
		return
	}

	c.JSON(http.StatusCreated, SellerAuthResponse{
		Success: true,
		Message: "Seller registered successfully",
		Data:    SellerAuthData{Token: token, Seller: seller},
	})
}

// Login godoc
// @Summary      Login seller
// @Tags         seller
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200  {object}  SellerAuthResponse
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /api/seller/login [post]
func (h *SellerHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	seller, token, err := h.sellerAuthUseCase.LoginSeller(req.Email, req.Password)
	if err != nil {
		c.JSON(usecase.Status(err), gin.H{"success": false, "message": errMessage(err)})
		return
	}

	c.JSON(http.StatusOK, SellerAuthResponse{
		Success: true,
		Message: "Login successful",
		Data:    SellerAuthData{Token: token, Seller: seller},
	})
}
