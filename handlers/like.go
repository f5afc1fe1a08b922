package handlers

import (
	"errors"
	"net/http"

	"gallery-service/database"
	"gallery-service/middleware"
	"gallery-service/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// LikePost is idempotent in effect: the unique (user_id, post_id) index
// rejects a second insert and the duplicate is reported without error.
// Concurrent duplicate likes resolve the same way, no pre-check involved.
func LikePost(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "인증 정보가 유효하지 않습니다. 로그인이 필요합니다."})
		return
	}

	postID, ok := parseID(c, "postId")
	if !ok {
		return
	}

	var post models.Post
	if err := database.GORM_DB.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "게시글을 찾을 수 없습니다."})
			return
		}
		_ = c.Error(err)
		c.Abort()
		return
	}

	like := models.Like{UserID: user.ID, PostID: postID}
	if err := database.GORM_DB.Create(&like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusOK, gin.H{"message": "이미 추천한 게시글입니다."})
			return
		}
		_ = c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "게시글을 추천했습니다."})
}

func UnlikePost(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "인증 정보가 유효하지 않습니다. 로그인이 필요합니다."})
		return
	}

	postID, ok := parseID(c, "postId")
	if !ok {
		return
	}

	result := database.GORM_DB.
		Where("user_id = ? AND post_id = ?", user.ID, postID).
		Delete(&models.Like{})
	if result.Error != nil {
		_ = c.Error(result.Error)
		c.Abort()
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "추천 기록을 찾을 수 없습니다."})
		return
	}

	c.Status(http.StatusNoContent)
}
