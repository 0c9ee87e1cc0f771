package routes

import (
	"log"
	"net/http"

	_ "startlabx/docs"
	"startlabx/internal/adapter/http/handlers"
	"startlabx/internal/adapter/http/middleware"
	"startlabx/pkg"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const BasePath = "/api"

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Offers        *handlers.EquityOfferHandler
	CapTable      *handlers.CapTableHandler
	Calculator    *handlers.CalculatorHandler
	Startups      *handlers.StartupHandler
	Notifications *handlers.NotificationHandler
}

// NewRouter builds the gin engine. Everything under /api except /api/ping
// requires a bearer token.
func NewRouter(h Handlers, verifier middleware.TokenVerifier) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group(BasePath)
	addPingRoutes(api)

	private := api.Group("", middleware.RequireAuth(verifier))
	addEquityRoutes(private, h)
	addStartupRoutes(private, h.Startups)
	addNotificationRoutes(private, h.Notifications)

	router.NoRoute(func(c *gin.Context) {
		appErr := pkg.NewDomainErrorSimple("NOT_FOUND", "Route not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	})

	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("[http][router] recovered from panic path=%s err=%v", c.FullPath(), recovered)
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}))
	router.Use(middleware.Metrics())
}
