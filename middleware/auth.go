package middleware

import (
	"errors"
	"net/http"

	"gallery-service/database"
	"gallery-service/models"
	"gallery-service/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const currentUserKey = "currentUser"

// RequireAuth resolves the bearer token to a user row and stores it in the
// request context. The token only carries the user id, so a user deleted
// after issuing still gets 404 here.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := utils.ParseBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "인증 정보가 유효하지 않습니다. 로그인이 필요합니다."})
			return
		}

		var user models.User
		if err := database.GORM_DB.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "사용자를 찾을 수 없습니다."})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "서버 내부 오류가 발생했습니다."})
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}
