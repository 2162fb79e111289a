package api

import (
	"log"
	stdhttp "net/http"

	intconfig "backend/internal/config"
	h "backend/internal/http/handlers"
	"backend/internal/http/middleware"
	"backend/internal/payment"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, gateway *payment.Client) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	payments := h.NewPaymentHandlers(gateway)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		authed := api.Group("")
		authed.Use(middleware.RequireUser(env.JWTSecret))

		addresses := authed.Group("/addresses")
		addresses.GET("", h.ListAddresses)
		addresses.GET("/:id", h.GetAddress)
		addresses.POST("", h.CreateAddress)
		addresses.PUT("/:id", h.UpdateAddress)
		addresses.DELETE("/:id", h.DeleteAddress)

		orders := authed.Group("/orders")
		orders.POST("/quote", h.OrderQuote)
		orders.GET("/:id/receipt", h.OrderReceipt)

		pay := authed.Group("/payments")
		pay.POST("/link", payments.GenerateLink)
		pay.GET("/verify/:tx_ref", payments.VerifyPayment)
	}

	h.SetRouter(r)
	return r
}
