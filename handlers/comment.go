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

func CreateComment(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "인증 정보가 유효하지 않습니다. 로그인이 필요합니다."})
		return
	}

	postID, ok := parseID(c, "postId")
	if !ok {
		return
	}

	var input struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "댓글 내용을 입력해주세요."})
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

	comment := models.Comment{
		Content: input.Content,
		UserID:  user.ID,
		PostID:  postID,
	}
	if err := database.GORM_DB.Create(&comment).Error; err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	if err := database.GORM_DB.Preload("User", withAuthor).First(&comment, comment.ID).Error; err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "댓글이 성공적으로 생성되었습니다.",
		"comment": comment,
	})
}

func GetCommentsForPost(c *gin.Context) {
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

	comments := make([]models.Comment, 0)
	err := database.GORM_DB.
		Where("post_id = ?", postID).
		Preload("User", withAuthor).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "댓글 목록 조회 성공",
		"comments": comments,
	})
}

func UpdateComment(c *gin.Context) {
	commentID, ok := parseID(c, "commentId")
	if !ok {
		return
	}

	var input struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "수정할 내용을 입력해주세요."})
		return
	}

	var comment models.Comment
	if err := database.GORM_DB.First(&comment, commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "댓글을 찾을 수 없습니다."})
			return
		}
		_ = c.Error(err)
		c.Abort()
		return
	}

	if _, ok := requireOwner(c, comment.UserID, "댓글 수정 권한이 없습니다."); !ok {
		return
	}

	if err := database.GORM_DB.Model(&comment).Update("content", input.Content).Error; err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	if err := database.GORM_DB.Preload("User", withAuthor).First(&comment, commentID).Error; err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "댓글이 성공적으로 수정되었습니다.",
		"comment": comment,
	})
}

func DeleteComment(c *gin.Context) {
	commentID, ok := parseID(c, "commentId")
	if !ok {
		return
	}

	var comment models.Comment
	if err := database.GORM_DB.First(&comment, commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "댓글을 찾을 수 없습니다."})
			return
		}
		_ = c.Error(err)
		c.Abort()
		return
	}

	if _, ok := requireOwner(c, comment.UserID, "댓글 삭제 권한이 없습니다."); !ok {
		return
	}

	if err := database.GORM_DB.Delete(&comment).Error; err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	c.Status(http.StatusNoContent)
}
