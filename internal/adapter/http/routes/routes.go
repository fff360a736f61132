package routes

import (
	"context"
	"log/slog"

	_ "fieldservice/docs" // regenerated with swag init
	"fieldservice/internal/adapter/http/handlers"
	"fieldservice/internal/app"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run will start the server
func Run(ctx context.Context, a *app.App, logger *slog.Logger) error {
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	a.Start(ctx)
	getRoutes(a)

	logger.Info("listening", "port", a.Config.Port)
	return router.Run(":" + a.Config.Port)
}

func getRoutes(a *app.App) {
	entityHandlers := newEntityHandlers(a.Registry)
	pipelineHandler := handlers.NewPipelineHandler(a.Pipeline)
	sessionHandler := handlers.NewSessionHandler(a.Registry, a.Queue)

	v1 := router.Group("/v1")
	addPingRoutes(v1, a.Monitor)
	addEntityRoutes(v1, entityHandlers)
	addPipelineRoutes(v1, pipelineHandler)
	addSessionRoutes(v1, sessionHandler)
}
