package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ievamoo/get2gether/config"
	"github.com/ievamoo/get2gether/controllers"
	"github.com/ievamoo/get2gether/middleware"
	"github.com/ievamoo/get2gether/websocket"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/ievamoo/get2gether/docs"
)

// SetupRouter builds the gin engine with every REST route, the websocket
// endpoint and the swagger UI
func SetupRouter(cfg config.Config, ctl *controllers.Controller, hub *websocket.Hub, verifier websocket.Verifier, log *zap.Logger) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(corsMiddleware(cfg.CORSOrigins))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Authentication routes
	auth := router.Group("/api")
	{
		auth.POST("/register", ctl.Register)
		auth.POST("/login", ctl.Login)
	}

	// Protected routes
	api := router.Group("/api")
	api.Use(middleware.JWTAuth(verifier))
	{
		api.GET("/me", ctl.Me)
		api.PUT("/me/available-days", ctl.SetAvailableDays)

		// Group routes
		api.GET("/groups", ctl.GetGroups)
		api.POST("/groups", ctl.CreateGroup)
		api.GET("/groups/:id", ctl.GetGroup)
		api.DELETE("/groups/:id", ctl.DeleteGroup)
		api.POST("/groups/:id/leave", ctl.LeaveGroup)
		api.GET("/groups/:id/messages", ctl.GetMessages)

		// Event routes
		api.GET("/groups/:id/events", ctl.GetGroupEvents)
		api.POST("/groups/:id/events", ctl.CreateEvent)
		api.DELETE("/events/:id", ctl.DeleteEvent)
		api.PUT("/events/:id/attendance", ctl.SetAttendance)

		// Invite routes
		api.GET("/invites", ctl.GetInvites)
		api.POST("/invites", ctl.SendInvite)
		api.POST("/invites/:id/respond", ctl.RespondToInvite)
	}

	// WebSocket route
	router.GET("/ws", hub.HandleConnection)

	return router
}

// corsMiddleware runs rs/cors in front of gin and answers preflight
// requests itself
func corsMiddleware(origins []string) gin.HandlerFunc {
	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "Accept", "Origin", "Cache-Control", "X-Requested-With"},
		AllowCredentials: true,
	})

	return func(ctx *gin.Context) {
		c.HandlerFunc(ctx.Writer, ctx.Request)
		if ctx.Request.Method == http.MethodOptions && ctx.GetHeader("Access-Control-Request-Method") != "" {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}
		ctx.Next()
	}
}
