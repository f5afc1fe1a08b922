package handlers

import (
	"net/http"
	"strconv"

	"gallery-service/middleware"
	"gallery-service/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// likeCountSelect annotates posts with a derived like count. The aggregate
// is correlated per row, matching the store as the only source of truth.
const likeCountSelect = "posts.*, (SELECT count(*) FROM likes WHERE likes.post_id = posts.id) AS like_count"

func withAuthor(db *gorm.DB) *gorm.DB {
	return db.Select("id", "username")
}

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "올바르지 않은 ID 형식입니다."})
		return 0, false
	}
	return uint(id), true
}

func pagination(c *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	return page, limit
}

// requireOwner is the single authorization rule of the service: a mutation
// is permitted iff the authenticated user id equals the stored owner id.
func requireOwner(c *gin.Context, ownerID uint, forbiddenMsg string) (models.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "인증 정보가 유효하지 않습니다. 로그인이 필요합니다."})
		return models.User{}, false
	}
	if user.ID != ownerID {
		c.JSON(http.StatusForbidden, gin.H{"message": forbiddenMsg})
		return models.User{}, false
	}
	return user, true
}
