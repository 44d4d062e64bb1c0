package http

import (
	"net/http"

	"edumart/internal/entity"
	"edumart/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
}

func NewAuthHandler(authUseCase usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the flat profile-plus-token payload returned by all
// three user login paths.
type AuthResponse struct {
	ID    string          `json:"_id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  entity.UserRole `json:"role"`
	Token string          `json:"token"`
}

func newAuthResponse(user *entity.User, token string) AuthResponse {
	return AuthResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		Token: token,
	}
}

// Register godoc
// @Summary      Register a new user
// @Description  Self-registration; role is always "user" and @admin.com emails are rejected
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration data"
// @Success      201  {object}  AuthResponse
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	user, token, err := h.authUseCase.RegisterUser(req.Name, req.Email, req.Password)
	if err != nil {
		c.JSON(usecase.Status(err), gin.H{"message": errMessage(err)})
		return
	}

	c.JSON(http.StatusCreated, newAuthResponse(user, token))
}

// Login godoc
// @Summary      Login user
// @Description  Regular users only; @admin.com emails are directed to the admin portal
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200  {object}  AuthResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	user, token, err := h.authUseCase.LoginUser(req.Email, req.Password)
	if err != nil {
		c.JSON(usecase.Status(err), gin.H{"message": errMessage(err)})
		return
	}

	c.JSON(http.StatusOK, newAuthResponse(user, token))
}

// AdminLogin godoc
// @Summary      Admin login
// @Description  Admin accounts only; requires an @admin.com email and the admin role
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200  {object}  AuthResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/auth/admin/login [post]
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	user, token, err := h.authUseCase.AdminLogin(req.Email, req.Password)
	if err != nil {
		c.JSON(usecase.Status(err), gin.H{"message": errMessage(err)})
		return
	}

	c.JSON(http.StatusOK, newAuthResponse(user, token))
}

// Profile godoc
// @Summary      Get current user profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.User
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	userID := c.GetString("user_id")

	user, err := h.authUseCase.GetProfile(userID)
	if err != nil {
		c.JSON(usecase.Status(err), gin.H{"message": errMessage(err)})
		return
	}

	c.JSON(http.StatusOK, user)
}

// errMessage hides internal error details behind a generic message for
// anything that is not a deliberate business failure.
func errMessage(err error) string {
	if usecase.Status(err) == http.StatusInternalServerError {
		return "Server error"
	}
	return err.Error()
}
