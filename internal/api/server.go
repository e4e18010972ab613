package api

import (
	"io"
	"net/http"

	"spg-be/internal/auth"
	"spg-be/internal/category"
	"spg-be/internal/client"
	"spg-be/internal/deliverer"
	"spg-be/internal/logger"
	"spg-be/internal/middleware"
	"spg-be/internal/notify"
	"spg-be/internal/order"
	"spg-be/internal/product"
	"spg-be/internal/provider"
	"spg-be/internal/user"
	"spg-be/internal/utils"
	"spg-be/internal/wallet"
	"spg-be/internal/warehouse"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// ImageSaver stores an uploaded product picture and returns where it landed.
type ImageSaver interface {
	Save(productID int64, r io.Reader) (string, error)
}

type Deps struct {
	Categories category.Service
	Products   product.Service
	Orders     order.Service
	Providers  provider.Service
	Users      user.Service
	Clients    client.Service
	Wallet     wallet.Service
	Deliverers deliverer.Service
	Warehouse  warehouse.Service
	Mailer     notify.Sender
	Images     ImageSaver

	Tokens       *auth.TokenManager
	Revoker      auth.Revoker
	CookieSecure bool
	CORSOrigins  []string
}

type Server struct {
	Deps
	engine *gin.Engine
}

func NewServer(d Deps) *Server {
	if d.Revoker == nil {
		d.Revoker = auth.NopRevoker{}
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     d.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
	}))
	r.Use(middleware.Session(d.Tokens, d.Revoker))

	s := &Server{Deps: d, engine: r}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

// Handler wraps the engine with request ids, access logging and rate limiting.
func (s *Server) Handler(limiter *middleware.RateLimiter) http.Handler {
	var h http.Handler = s.engine
	if limiter != nil {
		h = limiter.Middleware(h)
	}
	return logger.RequestIDMiddleware(logger.LoggingMiddleware(h))
}

func (s *Server) registerRoutes() {
	farmer := middleware.RequireRole(utils.RoleFarmer)
	manager := middleware.RequireRole(utils.RoleShopManager)
	deliverer := middleware.RequireRole(utils.RoleDeliverer)
	managerOrDeliverer := middleware.RequireRole(utils.RoleShopManager, utils.RoleDeliverer)

	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	s.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.engine.Group("/api")
	{
		api.POST("/sessions", s.login)
		api.GET("/sessions/current", s.currentSession)
		api.DELETE("/sessions/current", s.logout)

		api.GET("/products/expected/:year/:week", s.listExpected)
		api.GET("/products/confirmed/:year/:week", s.listConfirmed)
		api.GET("/product/:product_id", s.getProduct)
		api.GET("/products/categories", s.listCategories)
		api.GET("/products/provider/expected/:year/:week_number", farmer, s.listProviderExpected)
		api.POST("/products/expected/:year/:week_number", farmer, s.replaceExpected)
		api.PUT("/farmerConfirm/:product_id/:year/:week", farmer, s.confirmProduct)
		api.POST("/products/upload/expected/:img_id", farmer, s.uploadImage)
		api.GET("/products/ordered/:year/:week_number", farmer, s.bookedProducts)
		api.PUT("/modifyquantity", manager, s.setQuantity)

		api.POST("/neworder", s.placeOrder)
		api.GET("/orders", manager, s.listOrders)
		api.PUT("/orders/:id", manager, s.updateItemQuantity)
		api.DELETE("/orders/:id", manager, s.deleteItem)
		api.PUT("/orders/:id/:product_name", managerOrDeliverer, s.advanceProduct)
		api.POST("/orders/farmershipped", farmer, s.markFarmerShipped)
		api.PUT("/modifyState", manager, s.modifyState)
		api.PUT("/modifyStateFarmer", manager, s.modifyStateByProduct)
		api.PUT("/modifyStato", deliverer, s.modifyStateByProduct)
		api.GET("/orders/pickup/clientorder", manager, s.pickupOrders)

		api.GET("/providers/all", s.listProviders)
		api.GET("/provider/:provider_id", s.getProvider)
		api.GET("/provider-products", farmer, s.existingProducts)
		api.GET("/provider-products-notification", farmer, s.notifications)
		api.PUT("/provider-products-sent", farmer, s.markNotified)
		api.GET("/provider/confirmationStatus/:year/:week_number", farmer, s.confirmationStatus)
		api.GET("/provider/shipmentstatus/:year/:week_number", farmer, s.shipmentStatus)
		api.GET("/provider-orders/:id", manager, s.providerShippedOrders)

		api.GET("/users", manager, s.listUsers)
		api.POST("/users", manager, s.createUser)
		api.GET("/clients", manager, s.listClients)
		api.POST("/clients", s.registerClient)
		api.GET("/methods", s.paymentMethods)
		api.PUT("/clients/update/balance/:clientId/:amount", manager, s.increaseBalance)
		api.POST("/transactions", manager, s.createTransaction)

		api.GET("/deliverers", manager, s.listDeliverers)
		api.GET("/deliverableOrders/:city", deliverer, s.deliverableOrders)
		api.GET("/deliverer/:deliverer_mail", managerOrDeliverer, s.getDeliverer)

		api.POST("/sendEmail", manager, s.sendEmail(notify.TemplateOrderStatus))
		api.POST("/sendReminderForPickup", manager, s.sendEmail(notify.TemplatePickupReminder))
	}

	s.engine.POST("/provider/apply", s.apply)
	s.engine.GET("/users/email-availability/:email", s.emailAvailability)

	mgr := s.engine.Group("/manager/applications", manager)
	{
		mgr.GET("/pending", s.pendingApplications)
		mgr.GET("/accepted", s.acceptedApplications)
		mgr.GET("/accept/:application_id", s.acceptApplication)
		mgr.GET("/reject/:application_id", s.rejectApplication)
	}
}
