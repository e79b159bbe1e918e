package routes

import (
	"net/http"

	"blog/controllers"
	"blog/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Options struct {
	// AuthEnabled puts every /v1/posts route behind the bearer check.
	AuthEnabled   bool
	Authenticator middleware.TokenAuthenticator
}

func SetupRoutes(r *gin.Engine, postController *controllers.PostController, authController *controllers.AuthController, opts Options) {
	r.NoRoute(middleware.NoRoute)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, "OK")
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/token", authController.Token)
			if opts.Authenticator != nil {
				auth.GET("/me", middleware.AuthRequired(opts.Authenticator), authController.Me)
			}
		}

		posts := v1.Group("/posts")
		if opts.AuthEnabled && opts.Authenticator != nil {
			posts.Use(middleware.AuthRequired(opts.Authenticator))
		}
		{
			posts.GET("", postController.GetPosts)
			posts.GET("/:id", postController.GetPost)
			posts.POST("", postController.CreatePost)
			posts.PUT("/:id", postController.UpdatePost)
			posts.DELETE("/:id", postController.DeletePost)
		}
	}
}
