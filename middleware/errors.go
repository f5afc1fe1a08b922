package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ErrorHandler is the terminal mapper for errors handlers did not translate
// themselves: known store error classes get precise codes, everything else
// becomes a generic 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			c.JSON(http.StatusConflict, gin.H{"message": "이미 존재하는 데이터입니다."})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "요청한 데이터를 찾을 수 없습니다."})
		default:
			log.Printf("unhandled error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "서버 내부 오류가 발생했습니다."})
		}
	}
}
