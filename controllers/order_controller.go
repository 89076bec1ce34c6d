package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/deviill007/ShakeHubInShop/entity"
	"github.com/deviill007/ShakeHubInShop/pkg/resp"
	"github.com/deviill007/ShakeHubInShop/repository"
	"github.com/deviill007/ShakeHubInShop/services"
	"github.com/deviill007/ShakeHubInShop/utils"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{Service: services.NewOrderService(repository.NewOrderRepository(db))}
}

// GET /api/order/get
func (ctl *OrderController) ListPending(c *gin.Context) {
	orders, err := ctl.Service.ListPending()
	if err != nil {
		resp.ServerError(c)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

type placeOrderReq struct {
	// SessionID is what the customer page holds in its session storage. The
	// server ignores it and records the cookie-bound token instead; the two
	// are never reconciled.
	SessionID string             `json:"sessionId"`
	Table     string             `json:"table"`
	Items     []entity.OrderItem `json:"items"`
	Total     float64            `json:"total"`
}

// POST /api/order/place
func (ctl *OrderController) Place(c *gin.Context) {
	var req placeOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	sessionID, _ := utils.EnsureSessionCookie(c)

	order, err := ctl.Service.Place(sessionID, req.Table, req.Items, req.Total)
	if err != nil {
		resp.ServerError(c)
		return
	}
	resp.Created(c, gin.H{"order": order})
}

type updateOrderReq struct {
	OrderID uint `json:"orderId"`
}

// PUT /api/order/update
func (ctl *OrderController) MarkReady(c *gin.Context) {
	var req updateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	order, err := ctl.Service.MarkReady(req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Order not found")
			return
		}
		resp.ServerError(c)
		return
	}
	resp.OK(c, gin.H{"order": order})
}
