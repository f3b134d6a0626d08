package http

import (
	"github.com/duocun-ca/ledgercore/internal/adapter/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	accountHandler *AccountHandler,
	orderHandler *OrderHandler,
	pickupHandler *PickupHandler) (*Router, error) {

	router := gin.New()

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		accounts := api.Group("/accounts")
		{
			accounts.POST("", accountHandler.CreateAccount)
			accounts.GET("", accountHandler.ListAccounts)
			accounts.GET("/:id/transactions", accountHandler.Statement)
			accounts.POST("/:id/recompute", accountHandler.RecomputeBalance)
		}
		api.POST("/transactions", accountHandler.Append)

		orders := api.Group("/orders")
		{
			orders.POST("", orderHandler.CreateOrder)
			orders.POST("/:id/pay", orderHandler.MarkPaid)
			orders.POST("/:id/split", orderHandler.Split)
			orders.POST("/:id/cancel-items", orderHandler.CancelItems)
			orders.DELETE("/:id", orderHandler.Remove)
		}

		pickups := api.Group("/pickups")
		{
			pickups.POST("/reconcile", pickupHandler.Reconcile)
			pickups.GET("/:date", pickupHandler.ListPickups)
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
