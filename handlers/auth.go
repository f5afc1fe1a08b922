package handlers

import (
	"errors"
	"net/http"

	"gallery-service/database"
	"gallery-service/middleware"
	"gallery-service/models"
	"gallery-service/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

func Register(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Username string `json:"username"`
	}

	if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" || input.Password == "" || input.Username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "이메일, 비밀번호, 닉네임을 모두 입력해주세요."})
		return
	}

	var existing models.User
	err := database.GORM_DB.Where("email = ? OR username = ?", input.Email, input.Username).First(&existing).Error
	if err == nil {
		field := "닉네임"
		if existing.Email == input.Email {
			field = "이메일"
		}
		c.JSON(http.StatusConflict, gin.H{"message": "이미 사용 중인 " + field + "입니다."})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		_ = c.Error(err)
		c.Abort()
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	user := models.User{
		Email:    input.Email,
		Username: input.Username,
		Password: string(hashed),
	}
	// The unique indexes remain the backstop against a concurrent register
	// racing past the pre-check; the terminal handler maps that to 409.
	if err := database.GORM_DB.Create(&user).Error; err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "회원가입 성공!",
		"user": gin.H{
			"id":        user.ID,
			"email":     user.Email,
			"username":  user.Username,
			"createdAt": user.CreatedAt,
		},
	})
}

func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "이메일과 비밀번호를 입력해주세요."})
		return
	}

	var user models.User
	if err := database.GORM_DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same message as a wrong password, on purpose.
			c.JSON(http.StatusUnauthorized, gin.H{"message": "이메일 또는 비밀번호가 올바르지 않습니다."})
			return
		}
		_ = c.Error(err)
		c.Abort()
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "이메일 또는 비밀번호가 올바르지 않습니다."})
		return
	}

	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "로그인 성공!",
		"token":   token,
		"user": gin.H{
			"id":       user.ID,
			"email":    user.Email,
			"username": user.Username,
		},
	})
}

func Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "인증 정보가 유효하지 않습니다. 로그인이 필요합니다."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":        user.ID,
			"email":     user.Email,
			"username":  user.Username,
			"createdAt": user.CreatedAt,
		},
	})
}

// DeleteAccount removes the authenticated user; posts, comments and likes
// follow via the cascade rules.
func DeleteAccount(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "인증 정보가 유효하지 않습니다. 로그인이 필요합니다."})
		return
	}

	if err := database.GORM_DB.Delete(&models.User{}, user.ID).Error; err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	c.Status(http.StatusNoContent)
}
