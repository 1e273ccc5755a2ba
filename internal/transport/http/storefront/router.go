package storefront

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter mounts every storefront route on a fresh gin engine.
func NewRouter(h *Handler, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(requestLogger(logger), gin.Recovery())

	r.GET("/health", h.Health)
	r.GET("/menu", h.GetMenu)
	r.GET("/products/:id", h.GetProduct)

	r.POST("/sessions", h.CreateSession)
	s := r.Group("/sessions/:sid")
	{
		s.GET("", h.GetSession)
		s.PUT("/search", h.SetSearch)
		s.POST("/products", h.SelectProduct)

		s.PUT("/dialog", h.UpdateDialog)
		s.DELETE("/dialog", h.CloseDialog)
		s.POST("/dialog/commit", h.CommitDialog)
		s.POST("/dialog/addons/:addon_id", h.ToggleAddOn)

		s.POST("/items/:item_id/increment", h.IncrementItem)
		s.POST("/items/:item_id/decrement", h.DecrementItem)
		s.DELETE("/items/:item_id", h.RemoveItem)

		s.DELETE("/cart", h.ClearCart)
		s.POST("/cart/toggle", h.ToggleCart)
		s.POST("/checkout", h.Checkout)
	}
	return r
}
