package routes

import (
	"time"

	"aronia-backend/controllers"
	"aronia-backend/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RegisterRoutes sets up all application routes, passing in the controllers.
func RegisterRoutes(r *gin.Engine, pc *controllers.ProductController, oc *controllers.OrderController, sc *controllers.SystemController) {
	r.GET("/", sc.Root)
	r.GET("/test", sc.TestDatabase)
	r.GET("/health", sc.Health)

	api := r.Group("/api")
	{
		api.GET("/hello", sc.Hello)
		api.GET("/products", pc.ListProducts)
		// Only the write path is rate limited; the listing must always
		// answer 200.
		api.POST("/checkout", middleware.RateLimitMiddleware(rate.Every(time.Minute/300), 100), oc.CreateOrder)
	}
}
