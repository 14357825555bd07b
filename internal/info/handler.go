package info

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Technical(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sections": TechnicalSummary()})
}

func (h *Handler) FAQs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"faqs": FAQs()})
}
