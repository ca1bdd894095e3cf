package context

import (
	"net/http"

	"github.com/harulog/haru-diary/go-api-server/internal/shared/logger"

	sharedError "github.com/harulog/haru-diary/go-api-server/internal/shared/error"
	"github.com/gin-gonic/gin"
)

// Context keys for storing user authentication information
const (
	SignIDKey   = "sign_id"
	NicknameKey = "nickname"
)

func GetSignID(c *gin.Context) (string, bool) {
	signID, exists := c.Get(SignIDKey)
	if !exists {
		return "", false
	}

	id, ok := signID.(string)
	if !ok || id == "" {
		return "", false
	}

	return id, true
}

// RequireSignID retrieves the authenticated user's sign_id from the Gin context.
// If the sign_id is not found, automatically sends an authentication error response.
// Returns the sign_id and true if found, empty string and false if not found (error already sent).
// Use this in most handlers to reduce boilerplate.
func RequireSignID(c *gin.Context) (string, bool) {
	signID, ok := GetSignID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, sharedError.ErrorResponse{
			Status:  http.StatusUnauthorized,
			Code:    "AUTH-000",
			Message: "로그인을 해주세요.",
		})
		c.Abort()
		logger.FromContext(c.Request.Context()).Error("[API] context에 sign_id가 존재하지 않습니다.")
		return "", false
	}
	return signID, true
}
