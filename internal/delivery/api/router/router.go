// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vidshare/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler   *handler.AuthHandler
	VideoHandler  *handler.VideoHandler
	UploadHandler *handler.UploadHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler   *handler.AuthHandler
	videoHandler  *handler.VideoHandler
	uploadHandler *handler.UploadHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:   params.AuthHandler,
		videoHandler:  params.VideoHandler,
		uploadHandler: params.UploadHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Access control is applied globally by the auth gate, not per group.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/api/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/callback/credentials", r.authHandler.CredentialsCallback)
		authGroup.POST("/callback/google", r.authHandler.GoogleIDTokenCallback)
		authGroup.GET("/callback/:provider", r.authHandler.ProviderCallback)
		authGroup.GET("/signin/:provider", r.authHandler.SignIn)
		authGroup.GET("/session", r.authHandler.Session)
		authGroup.GET("/providers", r.authHandler.Providers)
		authGroup.POST("/signout", r.authHandler.SignOut)

		// Under the public prefix, so the handler itself requires a session.
		authGroup.GET("/imagekit-auth", r.uploadHandler.ImageKitAuth)
	}

	videosGroup := e.Group("/api/videos")
	{
		videosGroup.GET("", r.videoHandler.ListVideos)
		videosGroup.POST("", r.videoHandler.CreateVideo)
		videosGroup.GET("/:id", r.videoHandler.GetVideo)
		videosGroup.GET("/:id/qr", r.videoHandler.GetVideoQR)
	}
}
