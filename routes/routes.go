package routes

import (
	"gallery-service/handlers"
	"gallery-service/middleware"

	"github.com/gin-gonic/gin"
)

func Setup(r *gin.Engine) {
	api := r.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", handlers.Register)
	auth.POST("/login", handlers.Login)
	auth.GET("/me", middleware.RequireAuth(), handlers.Me)
	auth.DELETE("/me", middleware.RequireAuth(), handlers.DeleteAccount)

	posts := api.Group("/posts")
	posts.GET("", handlers.GetAllPosts)
	posts.GET("/:postId", handlers.GetPostByID)
	posts.GET("/:postId/comments", handlers.GetCommentsForPost)
	posts.POST("", middleware.RequireAuth(), handlers.CreatePost)
	posts.PUT("/:postId", middleware.RequireAuth(), handlers.UpdatePost)
	posts.DELETE("/:postId", middleware.RequireAuth(), handlers.DeletePost)
	posts.POST("/:postId/comments", middleware.RequireAuth(), handlers.CreateComment)
	posts.POST("/:postId/like", middleware.RequireAuth(), handlers.LikePost)
	posts.DELETE("/:postId/like", middleware.RequireAuth(), handlers.UnlikePost)

	comments := api.Group("/comments")
	comments.PUT("/:commentId", middleware.RequireAuth(), handlers.UpdateComment)
	comments.DELETE("/:commentId", middleware.RequireAuth(), handlers.DeleteComment)
}
