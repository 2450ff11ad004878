package api

import (
	"github.com/gin-gonic/gin"

	"github.com/qrorder/qr-order-api/internal/domain"
	"github.com/qrorder/qr-order-api/internal/middleware"
	"github.com/qrorder/qr-order-api/internal/service"
	"github.com/qrorder/qr-order-api/internal/service/pubsub"
	"github.com/qrorder/qr-order-api/pkg/logger"
)

type Server struct {
	menu       *MenuHandler
	order      *OrderHandler
	catalog    *CatalogHandler
	table      *TableHandler
	report     *ReportHandler
	restaurant *RestaurantHandler
	websocket  *WebSocketHandler
	auth       *middleware.AuthMiddleware
	license    *middleware.LicenseMiddleware
	rateLimit  *middleware.RateLimitMiddleware
	validation *middleware.ValidationMiddleware
	globalRate int
}

func NewServer(
	menuService *service.MenuService,
	orderService *service.OrderService,
	catalogService *service.CatalogService,
	tableService *service.TableService,
	reportService *service.ReportService,
	restaurantService *service.RestaurantService,
	accessService *service.AccessService,
	auth *middleware.AuthMiddleware,
	license *middleware.LicenseMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
	logger *logger.Logger,
	pubsub *pubsub.RedisPubSub,
	globalRateLimit int,
) *Server {
	return &Server{
		menu:       NewMenuHandler(menuService, accessService),
		order:      NewOrderHandler(orderService),
		catalog:    NewCatalogHandler(catalogService),
		table:      NewTableHandler(tableService),
		report:     NewReportHandler(reportService),
		restaurant: NewRestaurantHandler(restaurantService),
		websocket:  NewWebSocketHandler(logger, pubsub),
		auth:       auth,
		license:    license,
		rateLimit:  rateLimit,
		validation: validation,
		globalRate: globalRateLimit,
	}
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	api.Use(s.validation.ValidateRequestSize(1 * 1024 * 1024)) // 1MB max
	api.Use(s.validation.ValidateContentType("application/json"))
	api.Use(s.rateLimit.GlobalRateLimit(s.globalRate))

	// Public endpoints; identity comes from the table code, not a token
	api.GET("/menu", s.menu.GetMenu)
	api.POST("/orders", s.order.CreateOrder)
	api.GET("/orders/customer", s.order.CustomerOrders)

	staff := api.Group("", s.auth.JWTAuth(), s.rateLimit.RestaurantRateLimit(), s.license.RequireActiveLicense())
	{
		orders := staff.Group("/orders")
		{
			orders.GET("", s.order.ListOrders)
			orders.GET("/:id", s.order.GetOrder)
			orders.PATCH("/:id", s.order.UpdateOrderStatus)
			orders.GET("/stream", s.websocket.HandleWebSocket)
		}

		categories := staff.Group("/categories")
		{
			categories.POST("", s.catalog.CreateCategory)
			categories.GET("", s.catalog.ListCategories)
			categories.GET("/:id", s.catalog.GetCategory)
			categories.PATCH("/:id", s.catalog.UpdateCategory)
			categories.DELETE("/:id", s.catalog.DeleteCategory)
		}

		items := staff.Group("/items")
		{
			items.POST("", s.catalog.CreateMenuItem)
			items.GET("", s.catalog.ListMenuItems)
			items.GET("/:id", s.catalog.GetMenuItem)
			items.PATCH("/:id", s.catalog.UpdateMenuItem)
			items.DELETE("/:id", s.catalog.DeleteMenuItem)
		}

		tables := staff.Group("/tables")
		{
			tables.POST("", s.table.CreateTable)
			tables.GET("", s.table.ListTables)
			tables.GET("/:id", s.table.GetTable)
			tables.PATCH("/:id", s.table.UpdateTable)
			tables.DELETE("/:id", s.table.DeleteTable)
		}

		staff.GET("/reports/sales/export", s.report.ExportSales)
	}

	admin := api.Group("", s.auth.JWTAuth(), s.rateLimit.RestaurantRateLimit(), s.auth.RequireRole(string(domain.RoleAdmin)))
	{
		restaurants := admin.Group("/restaurants")
		{
			restaurants.POST("", s.restaurant.CreateRestaurant)
			restaurants.GET("", s.restaurant.ListRestaurants)
			restaurants.GET("/:id", s.restaurant.GetRestaurant)
			restaurants.PATCH("/:id", s.restaurant.UpdateRestaurant)
			restaurants.DELETE("/:id", s.restaurant.DeleteRestaurant)
			restaurants.PUT("/:id/config", s.restaurant.UpsertConfig)
		}

		admin.PUT("/licenses/:user_id", s.restaurant.UpsertLicense)
	}
}

// StartWebSocketHub starts the WebSocket hub for broadcasting orders
func (s *Server) StartWebSocketHub() {
	go s.websocket.Start()
}

// GetWebSocketHandler returns the WebSocket handler for wiring up broadcasting
func (s *Server) GetWebSocketHandler() *WebSocketHandler {
	return s.websocket
}
