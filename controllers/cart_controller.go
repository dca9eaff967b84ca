package controllers

import (
	"errors"
	"net/http"

	"shophub/middleware"
	"shophub/models"
	"shophub/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	cartService *services.CartService
}

func NewCartController(cartService *services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

// GetCart godoc
// @Summary Get cart
// @Description Get the authenticated user's cart with each line resolved to current item data
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	lines, err := ctrl.cartService.GetCart(c.Request.Context(), userID)
	if err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart retrieved",
		Data:    lines,
	})
}

// AddToCart godoc
// @Summary Add item to cart
// @Description Merge a quantity into the cart line for an item; creates the line when absent
// @Tags Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.AddCartItemRequest true "Add Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cart [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Item ID is required",
			Error:   "validation_error",
		})
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	lines, err := ctrl.cartService.AddItem(c.Request.Context(), userID, req.ItemID, quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Item added to cart",
		Data:    lines,
	})
}

// RemoveFromCart godoc
// @Summary Remove item from cart
// @Description Remove the cart line for an item; removing an absent item is a no-op
// @Tags Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.RemoveCartItemRequest true "Remove Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cart [delete]
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	var req models.RemoveCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Item ID is required",
			Error:   "validation_error",
		})
		return
	}

	lines, err := ctrl.cartService.RemoveItem(c.Request.Context(), userID, req.ItemID)
	if err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Item removed from cart",
		Data:    lines,
	})
}

func respondUnauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, models.ErrorResponse{
		Success: false,
		Message: "User identity missing",
		Error:   "unauthorized",
	})
}

func respondCartError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Something went wrong"

	switch {
	case errors.Is(err, services.ErrUserNotFound):
		status = http.StatusNotFound
		message = "User not found"
	case errors.Is(err, services.ErrItemNotFound):
		status = http.StatusNotFound
		message = "Item not found"
	case errors.Is(err, services.ErrInvalidQuantity):
		status = http.StatusBadRequest
		message = err.Error()
	}

	c.JSON(status, models.ErrorResponse{
		Success: false,
		Message: message,
		Error:   services.ErrorKind(err),
	})
}
