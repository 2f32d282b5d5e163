package routes

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"locker-booking/controllers"
	"locker-booking/middleware"
	"locker-booking/utils"
)

const userLimitMsg = "Too many accounts created from this IP, please try again later."

// Controllers is everything the router mounts.
type Controllers struct {
	Users           *controllers.UserController
	Bookings        *controllers.BookingController
	Lockers         *controllers.LockerController
	Orders          *controllers.OrderController
	Categories      *controllers.CategoryController
	Products        *controllers.ProductController
	OrderedProducts *controllers.OrderedProductController
}

func parseCorsOrigins(raw []string) []string {
	origins := make([]string, 0, len(raw))
	for _, part := range raw {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter mounts every resource under /api. userLimiter guards user
// creation; nil disables it.
func SetupRouter(
	ctl Controllers,
	corsOrigins []string,
	userLimiter *middleware.RateLimiter,
	log *slog.Logger,
) *gin.Engine {
	utils.RegisterValidators()

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(log), middleware.Recovery(log))

	origins := parseCorsOrigins(corsOrigins)
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	createUser := []gin.HandlerFunc{ctl.Users.CreateUser}
	if userLimiter != nil {
		createUser = append([]gin.HandlerFunc{userLimiter.Middleware(userLimitMsg)}, createUser...)
	}

	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			users.GET("", ctl.Users.GetUsers)
			users.GET("/:id", ctl.Users.GetUser)
			users.POST("", createUser...)
			users.PUT("/:id", ctl.Users.ReplaceUser)
			users.PATCH("/:id", ctl.Users.PatchUser)
			users.DELETE("/:id", ctl.Users.DeleteUser)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", ctl.Bookings.GetBookings)
			bookings.GET("/:id", ctl.Bookings.GetBooking)
			bookings.POST("", ctl.Bookings.CreateBooking)
			bookings.DELETE("/:id", ctl.Bookings.DeleteBooking)
		}

		lockers := api.Group("/lockers")
		{
			lockers.GET("", ctl.Lockers.GetLockers)
			lockers.GET("/:id", ctl.Lockers.GetLocker)
			lockers.POST("", ctl.Lockers.CreateLocker)
			lockers.PUT("/:id", ctl.Lockers.ReplaceLocker)
			lockers.PATCH("/:id", ctl.Lockers.PatchLocker)
			lockers.DELETE("/:id", ctl.Lockers.DeleteLocker)
		}

		orders := api.Group("/orders")
		{
			orders.GET("", ctl.Orders.GetOrders)
			orders.GET("/:id", ctl.Orders.GetOrder)
			orders.POST("", ctl.Orders.CreateOrder)
			orders.PUT("/:id", ctl.Orders.ReplaceOrder)
			orders.PATCH("/:id", ctl.Orders.PatchOrder)
			orders.DELETE("/:id", ctl.Orders.DeleteOrder)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", ctl.Categories.GetCategories)
			categories.GET("/:id", ctl.Categories.GetCategory)
			categories.GET("/:id/products", ctl.Categories.GetCategoryProducts)
			categories.POST("", ctl.Categories.CreateCategory)
			categories.PUT("/:id", ctl.Categories.ReplaceCategory)
			categories.PATCH("/:id", ctl.Categories.PatchCategory)
			categories.DELETE("/:id", ctl.Categories.DeleteCategory)
		}

		products := api.Group("/products")
		{
			products.GET("", ctl.Products.GetProducts)
			products.GET("/:id", ctl.Products.GetProduct)
			products.POST("", ctl.Products.CreateProduct)
			products.PUT("/:id", ctl.Products.ReplaceProduct)
			products.PATCH("/:id", ctl.Products.PatchProduct)
			products.DELETE("/:id", ctl.Products.DeleteProduct)
		}

		orderedProducts := api.Group("/ordered_products")
		{
			orderedProducts.GET("", ctl.OrderedProducts.GetOrderedProducts)
			orderedProducts.GET("/:id", ctl.OrderedProducts.GetOrderedProduct)
			orderedProducts.POST("", ctl.OrderedProducts.CreateOrderedProduct)
			orderedProducts.PUT("/:id", ctl.OrderedProducts.ReplaceOrderedProduct)
			orderedProducts.PATCH("/:id", ctl.OrderedProducts.PatchOrderedProduct)
			orderedProducts.DELETE("/:id", ctl.OrderedProducts.DeleteOrderedProduct)
		}
	}

	return r
}
