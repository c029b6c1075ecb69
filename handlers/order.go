package handlers

import (
	"fmt"
	"net/http"

	"food-rescue-api/config"
	"food-rescue-api/middleware"
	"food-rescue-api/models"
	"food-rescue-api/statemachine"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateOrderRequest struct {
	Items []struct {
		FoodItemID uint `json:"food_item_id" binding:"required"`
		Quantity   int  `json:"quantity" binding:"required,min=1"`
	} `json:"items" binding:"required,min=1,dive"`
	DeliveryDetails struct {
		Address             string `json:"address" binding:"required"`
		Contact             string `json:"contact" binding:"required"`
		DeliveryTime        string `json:"delivery_time" binding:"required"`
		SpecialInstructions string `json:"special_instructions"`
	} `json:"delivery_details" binding:"required"`
}

// CreateOrder places an order for a verified NGO. Prices and names are
// snapshotted per line, and each inventory decrement is a conditional update
// (quantity >= requested) inside one transaction, so concurrent orders cannot
// oversell and a failed line leaves nothing mutated.
func CreateOrder(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var ngo models.NGO
	if err := config.DB.Where("user_id = ?", user.ID).First(&ngo).Error; err != nil || !ngo.Verified {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only verified NGOs can place orders"})
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	deliveryTime, err := parseTime(req.DeliveryDetails.DeliveryTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "delivery_time must be RFC 3339"})
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// Validate every line and snapshot name and price
	var lines []models.OrderLine
	var total float64
	for _, item := range req.Items {
		var food models.FoodItem
		if err := tx.First(&food, item.FoodItemID).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("Food item %d not found", item.FoodItemID),
			})
			return
		}
		if !food.IsAvailable || food.Quantity < item.Quantity {
			tx.Rollback()
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("Food item '%s' is not available in the requested quantity", food.Name),
			})
			return
		}

		price := food.Price()
		total += price * float64(item.Quantity)
		lines = append(lines, models.OrderLine{
			FoodItemID: food.ID,
			Quantity:   item.Quantity,
			Price:      price,
			Name:       food.Name,
		})
	}

	order := models.Order{
		UserID:              user.ID,
		NGOID:               ngo.ID,
		Lines:               lines,
		TotalPrice:          total,
		Status:              models.StatusPending,
		DeliveryAddress:     req.DeliveryDetails.Address,
		DeliveryContact:     req.DeliveryDetails.Contact,
		DeliveryTime:        deliveryTime,
		SpecialInstructions: req.DeliveryDetails.SpecialInstructions,
	}
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	// Decrement-if-sufficient: the quantity guard re-checks stock at write
	// time, so a concurrent order that won the race fails this line cleanly
	for _, line := range lines {
		result := tx.Model(&models.FoodItem{}).
			Where("id = ? AND is_available = ? AND quantity >= ?", line.FoodItemID, true, line.Quantity).
			Update("quantity", gorm.Expr("quantity - ?", line.Quantity))
		if result.Error != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}
		if result.RowsAffected == 0 {
			tx.Rollback()
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("Food item '%s' is not available in the requested quantity", line.Name),
			})
			return
		}
		tx.Model(&models.FoodItem{}).
			Where("id = ? AND quantity <= 0", line.FoodItemID).
			Update("is_available", false)
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	notifyOrderEvent(&order, fmt.Sprintf("Order #%d placed, awaiting confirmation", order.ID))

	config.DB.Preload("Lines.FoodItem").Preload("NGO").First(&order, order.ID)
	c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
}

// notifyOrderEvent records an order notification for the ordering user.
// Best-effort: a failed insert never fails the request.
func notifyOrderEvent(order *models.Order, message string) {
	config.DB.Create(&models.Notification{
		UserID:  order.UserID,
		Type:    models.NotificationOrder,
		Message: message,
		Link:    fmt.Sprintf("/orders/%d", order.ID),
	})
}

// GetOrder returns a single order (owner or admin)
func GetOrder(c *gin.Context) {
	var order models.Order
	err := config.DB.Preload("Lines.FoodItem").Preload("NGO").Preload("User").
		First(&order, c.Param("id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if order.UserID != middleware.GetUserID(c) && middleware.GetRole(c) != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// GetMyOrders returns the caller's orders, newest first
func GetMyOrders(c *gin.Context) {
	var orders []models.Order
	config.DB.Preload("Lines.FoodItem").
		Where("user_id = ?", middleware.GetUserID(c)).
		Order("created_at desc").
		Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// ListOrders returns all orders with a status summary (admin only)
func ListOrders(c *gin.Context) {
	query := config.DB.Preload("Lines.FoodItem").Preload("User").Preload("NGO")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	query.Order("created_at desc").Find(&orders)

	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.Status)]++
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"count":         len(orders),
		"orders":        orders,
	})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus moves an order through its lifecycle (admin only).
// Illegal jumps are rejected; cancellation is legal from any non-terminal
// state.
func UpdateOrderStatus(c *gin.Context) {
	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !statemachine.IsKnown(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown order status: " + string(req.Status)})
		return
	}

	if err := statemachine.CanTransition(order.Status, req.Status); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    order.Status,
			"requested":         req.Status,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(order.Status),
		})
		return
	}

	prevStatus := order.Status
	if err := config.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
		return
	}

	notifyOrderEvent(&order, fmt.Sprintf("Order #%d is now %s", order.ID, req.Status))

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated",
		"order_id":        order.ID,
		"previous_status": prevStatus,
		"current_status":  req.Status,
	})
}
