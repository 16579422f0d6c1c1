package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/legacy-reminder/internal/api/handlers/reminder"
	"github.com/aliskhannn/legacy-reminder/internal/middlewares"
)

func New(handler *reminder.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api/reminders")
	{
		api.POST("", handler.Create)
		api.GET("", handler.List)
		api.POST("/process", handler.Process)
		api.GET("/:id", handler.Get)
		api.GET("/:id/history", handler.History)
		api.POST("/:id/snooze", handler.Snooze)
		api.POST("/:id/resume", handler.Resume)
		api.DELETE("/:id", handler.Cancel)
	}

	return e
}
