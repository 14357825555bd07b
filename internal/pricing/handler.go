package pricing

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/proyectoseconomicosexclusivos-cmd/configurador-ventanas/internal/catalog"
)

type Handler struct {
	tables  Tables
	vatRate float64
}

func NewHandler(tables Tables, vatRate float64) *Handler {
	return &Handler{tables: tables, vatRate: vatRate}
}

// QuoteConfig prices a posted configuration without touching any session.
func (h *Handler) QuoteConfig(c *gin.Context) {
	var cfg catalog.WindowConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "configuración inválida"})
		return
	}

	total := Quote(cfg, h.tables, h.vatRate)
	subtotal := total / (1 + h.vatRate)
	c.JSON(http.StatusOK, gin.H{
		"price":      Round2(total),
		"subtotal":   Round2(subtotal),
		"vat_amount": Round2(total - subtotal),
		"vat_rate":   h.vatRate,
	})
}
