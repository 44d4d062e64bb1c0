package http

import (
	"net/http"
	"strings"

	"edumart/internal/entity"
	"edumart/internal/repo/persistent"
	"edumart/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// The two auth gates are wired independently: UserAuth resolves tokens
// against the users table, SellerAuth against the sellers table. There
// is no unified principal resolver.

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(header, "Bearer "), true
}

// UserAuth verifies the bearer token and attaches the resolved user
// (password hash cleared) to the request context.
func UserAuth(jwtService *jwt.Service, users persistent.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, no token"})
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, token failed"})
			return
		}

		// The token may outlive the account; re-resolve on every request.
		user, err := users.GetByID(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not found"})
			return
		}

		user.Password = ""
		c.Set("user", user)
		c.Set("user_id", user.ID)
		c.Next()
	}
}

// AdminOnly must be composed after UserAuth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("user")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
			return
		}

		user, ok := value.(*entity.User)
		if !ok || user.Role != entity.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied. Admin only."})
			return
		}

		c.Next()
	}
}

// SellerAuth verifies the bearer token against the seller collection
// and rejects deactivated accounts.
func SellerAuth(jwtService *jwt.Service, sellers persistent.SellerRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized, no token"})
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized, token failed"})
			return
		}

		seller, err := sellers.GetByID(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Seller not found"})
			return
		}

		if !seller.IsActive {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "Your account has been deactivated"})
			return
		}

		seller.Password = ""
		c.Set("seller", seller)
		c.Set("seller_id", seller.ID)
		c.Next()
	}
}
