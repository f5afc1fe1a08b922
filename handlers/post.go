package handlers

import (
	"errors"
	"math"
	"net/http"

	"gallery-service/database"
	"gallery-service/middleware"
	"gallery-service/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CreatePost(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "인증 정보가 유효하지 않습니다. 로그인이 필요합니다."})
		return
	}

	var input struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Title == "" || input.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "제목과 내용을 모두 입력해주세요."})
		return
	}

	post := models.Post{
		Title:   input.Title,
		Content: input.Content,
		UserID:  user.ID,
	}
	if err := database.GORM_DB.Create(&post).Error; err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	if err := database.GORM_DB.Preload("User", withAuthor).First(&post, post.ID).Error; err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "게시글이 성공적으로 생성되었습니다.",
		"post":    post,
	})
}

func GetAllPosts(c *gin.Context) {
	page, limit := pagination(c)

	var total int64
	if err := database.GORM_DB.Model(&models.Post{}).Count(&total).Error; err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	posts := make([]models.Post, 0)
	err := database.GORM_DB.Model(&models.Post{}).
		Select(likeCountSelect).
		Preload("User", withAuthor).
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&posts).Error
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "게시글 목록 조회 성공",
		"totalItems":  total,
		"totalPages":  int(math.Ceil(float64(total) / float64(limit))),
		"currentPage": page,
		"posts":       posts,
	})
}

func GetPostByID(c *gin.Context) {
	postID, ok := parseID(c, "postId")
	if !ok {
		return
	}

	// Every read counts, re-fetches included. The increment is a no-op for
	// an absent row, which the fetch below turns into a 404.
	err := database.GORM_DB.Model(&models.Post{}).
		Where("id = ?", postID).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	var post models.Post
	err = database.GORM_DB.Model(&models.Post{}).
		Select(likeCountSelect).
		Preload("User", withAuthor).
		First(&post, postID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "게시글을 찾을 수 없습니다."})
			return
		}
		_ = c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "게시글 상세 조회 성공",
		"post":    post,
	})
}

func UpdatePost(c *gin.Context) {
	postID, ok := parseID(c, "postId")
	if !ok {
		return
	}

	var input struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || (input.Title == "" && input.Content == "") {
		c.JSON(http.StatusBadRequest, gin.H{"message": "수정할 제목이나 내용을 입력해주세요."})
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

	if _, ok := requireOwner(c, post.UserID, "게시글 수정 권한이 없습니다."); !ok {
		return
	}

	updates := map[string]interface{}{}
	if input.Title != "" {
		updates["title"] = input.Title
	}
	if input.Content != "" {
		updates["content"] = input.Content
	}
	if err := database.GORM_DB.Model(&post).Updates(updates).Error; err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	if err := database.GORM_DB.Preload("User", withAuthor).First(&post, postID).Error; err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "게시글이 성공적으로 수정되었습니다.",
		"post":    post,
	})
}

func DeletePost(c *gin.Context) {
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

	if _, ok := requireOwner(c, post.UserID, "게시글 삭제 권한이 없습니다."); !ok {
		return
	}

	if err := database.GORM_DB.Delete(&post).Error; err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	c.Status(http.StatusNoContent)
}
