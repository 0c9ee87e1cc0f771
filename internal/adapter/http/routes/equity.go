package routes

import (
	"startlabx/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEquity        = "/equity"
	PathStartups      = "/startups"
	PathNotifications = "/notifications"
)

func addEquityRoutes(rg *gin.RouterGroup, h Handlers) {
	equity := rg.Group(PathEquity)

	offers := equity.Group("/offers")
	{
		offers.GET("/startup/:startupId", h.Offers.ListByStartup)
		offers.GET("/professional/:userId", h.Offers.ListByProfessional)
		offers.POST("", h.Offers.CreateOffer)
		offers.PUT("/:id/status", h.Offers.UpdateStatus)
	}

	capTable := equity.Group("/cap-table")
	{
		capTable.GET("/:startupId", h.CapTable.GetCapTable)
		capTable.POST("", h.CapTable.AddEntry)
		capTable.PUT("/:id", h.CapTable.UpdateEntry)
		capTable.DELETE("/:id", h.CapTable.RemoveEntry)
		capTable.GET("/entries/:id/vesting", h.CapTable.VestingStatus)
	}

	calc := equity.Group("/calculator")
	{
		calc.POST("/vesting", h.Calculator.Vesting)
		calc.POST("/dilution", h.Calculator.Dilution)
		calc.POST("/exit", h.Calculator.Exit)
	}
}

func addStartupRoutes(rg *gin.RouterGroup, h *handlers.StartupHandler) {
	startups := rg.Group(PathStartups)
	{
		startups.POST("", h.Register)
		startups.GET("/:id", h.Get)
		startups.DELETE("/:id", h.Delete)
	}
}

func addNotificationRoutes(rg *gin.RouterGroup, h *handlers.NotificationHandler) {
	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("", h.List)
		notifications.PUT("/read-all", h.MarkAllRead)
		notifications.PUT("/:id/read", h.MarkRead)
	}
}
