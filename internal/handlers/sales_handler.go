package handlers

import (
	"net/http"

	"nars_shop/internal/services"

	"github.com/gin-gonic/gin"
)

type SalesHandler struct {
	salesService services.SalesService
}

func NewSalesHandler(salesService services.SalesService) *SalesHandler {
	return &SalesHandler{salesService: salesService}
}

func (h *SalesHandler) SalesData(c *gin.Context) {
	timeFrame := c.DefaultQuery("timeFrame", "today")

	summary, err := h.salesService.Summary(timeFrame)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *SalesHandler) TopProducts(c *gin.Context) {
	products, err := h.salesService.TopProducts(0)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}
