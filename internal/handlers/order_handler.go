package handlers

import (
	"net/http"
	"time"

	"nars_shop/internal/models"
	"nars_shop/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type UpdateOrderDateRequest struct {
	OrderDate string `json:"order_date"`
}

func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var input services.PlaceOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	session := currentSession(c)
	order, err := h.orderService.PlaceOrder(session.UserID, &input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"orderId":         order.ID,
		"order_number":    order.OrderNumber,
		"tracking_number": order.TrackingNumber,
		"total":           order.Total,
	})
}

// ListSalesReport serves the admin orders view: only orders still flagged
// for the sales report, newest first.
func (h *OrderHandler) ListSalesReport(c *gin.Context) {
	orders, err := h.orderService.GetSalesReportOrders()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) ListUserOrders(c *gin.Context) {
	session := currentSession(c)
	orders, err := h.orderService.GetOrdersByUser(session.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.orderService.Transition(id, models.OrderStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated successfully",
		"status":  order.Status,
	})
}

func (h *OrderHandler) CancelOrder(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	session := currentSession(c)
	if err := h.orderService.CancelByCustomer(id, session.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully"})
}

func (h *OrderHandler) UpdateOrderDate(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var req UpdateOrderDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	newDate, err := parseOrderDate(req.OrderDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order date"})
		return
	}

	if err := h.orderService.EditOrderDate(id, newDate); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order date updated successfully"})
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	if err := h.orderService.DeleteOrder(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}

func (h *OrderHandler) RemoveFromSalesReport(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	if err := h.orderService.RemoveFromSalesReport(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order removed from sales report successfully"})
}

// parseOrderDate accepts the formats the admin date editor submits.
func parseOrderDate(value string) (time.Time, error) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	var lastErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
