package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/deviill007/ShakeHubInShop/repository"
	"github.com/deviill007/ShakeHubInShop/services"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{Service: services.NewMenuService(repository.NewMenuRepository(db))}
}

// GET /api/menu/get
func (ctl *MenuController) List(c *gin.Context) {
	items, err := ctl.Service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

type addMenuItemReq struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
	Category string  `json:"category"`
}

// POST /api/menu/add
func (ctl *MenuController) Add(c *gin.Context) {
	var req addMenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := ctl.Service.Add(req.Name, req.Price, req.Category, req.ImageURL)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added successfully", "item": item})
}

type updateMenuItemReq struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
	Category string  `json:"category"`
}

// PUT /api/menu/update
func (ctl *MenuController) Update(c *gin.Context) {
	var req updateMenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := ctl.Service.Update(req.ID, req.Name, req.Price, req.Category, req.ImageURL)
	if err != nil {
		var verr *services.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "item": item})
}

type deleteMenuItemReq struct {
	ID uint `json:"id"`
}

// DELETE /api/menu/delete
func (ctl *MenuController) Delete(c *gin.Context) {
	var req deleteMenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Unconditional: deleting an id that no longer exists still reports
	// success, same as clicking delete twice in the admin panel.
	if err := ctl.Service.Delete(req.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item deleted"})
}
