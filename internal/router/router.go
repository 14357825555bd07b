package router

import (
	"github.com/gin-gonic/gin"

	"github.com/proyectoseconomicosexclusivos-cmd/configurador-ventanas/internal/assistant"
	"github.com/proyectoseconomicosexclusivos-cmd/configurador-ventanas/internal/catalog"
	"github.com/proyectoseconomicosexclusivos-cmd/configurador-ventanas/internal/info"
	"github.com/proyectoseconomicosexclusivos-cmd/configurador-ventanas/internal/order"
	"github.com/proyectoseconomicosexclusivos-cmd/configurador-ventanas/internal/pricing"
)

type Handlers struct {
	Catalog   *catalog.Handler
	Pricing   *pricing.Handler
	Order     *order.Handler
	Assistant *assistant.Handler
	Info      *info.Handler
}

// New registers every route on the engine. The engine is passed in so main
// can attach CORS and tests can use gin.New().
func New(r *gin.Engine, h Handlers) *gin.Engine {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/catalog", h.Catalog.Options)
	r.POST("/quotes", h.Pricing.QuoteConfig)

	r.GET("/info/technical", h.Info.Technical)
	r.GET("/info/faqs", h.Info.FAQs)

	r.POST("/sessions", h.Order.CreateSession)
	sessions := r.Group("/sessions/:id")
	{
		sessions.GET("", h.Order.GetSession)
		sessions.PUT("/config", h.Order.UpdateConfig)
		sessions.POST("/cart", h.Order.AddToCart)
		sessions.DELETE("/cart/:lineID", h.Order.RemoveFromCart)
		sessions.POST("/checkout", h.Order.Checkout)
		sessions.POST("/back", h.Order.Back)
		sessions.POST("/order", h.Order.PlaceOrder)
		sessions.POST("/payment-proof", h.Order.UploadProof)
		sessions.POST("/reset", h.Order.Reset)

		sessions.POST("/assistant/config", h.Assistant.ExtractConfig)
		sessions.POST("/assistant/chat", h.Assistant.Chat)
		sessions.GET("/assistant/chat", h.Assistant.Transcript)
	}

	// Legacy proxy surface kept for the deployed storefront bundle.
	r.POST("/api/gemini-proxy", h.Assistant.Proxy)

	return r
}
