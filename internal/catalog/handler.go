package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Options lists everything the configurator UI can offer.
func (h *Handler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"types":     WindowTypes(),
		"materials": Materials(),
		"profiles":  Profiles(),
		"glass":     GlassTypes(),
		"colors":    Colors(),
		"dimensions": gin.H{
			"min_width":  MinWidthCm,
			"max_width":  MaxWidthCm,
			"min_height": MinHeightCm,
			"max_height": MaxHeightCm,
		},
		"default": DefaultConfig(),
	})
}
