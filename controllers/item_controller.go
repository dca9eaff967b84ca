package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"shophub/libs"
	"shophub/models"
	"shophub/services"
	"shophub/utils"

	"github.com/gin-gonic/gin"
)

type ItemController struct {
	itemService *services.ItemService
}

func NewItemController(itemService *services.ItemService) *ItemController {
	return &ItemController{itemService: itemService}
}

func itemCacheKey(filter models.ItemFilter) string {
	min, max := "", ""
	if filter.MinPrice != nil {
		min = strconv.FormatFloat(*filter.MinPrice, 'f', -1, 64)
	}
	if filter.MaxPrice != nil {
		max = strconv.FormatFloat(*filter.MaxPrice, 'f', -1, 64)
	}
	return fmt.Sprintf("items_list_c%s_min%s_max%s", filter.Category, min, max)
}

func invalidateItemCache() {
	if models.RedisClient == nil {
		return
	}
	ctx := context.Background()
	iter := models.RedisClient.Scan(ctx, 0, "items_list_*", 0).Iterator()
	for iter.Next(ctx) {
		models.RedisClient.Del(ctx, iter.Val())
	}
}

// GetItems godoc
// @Summary List items
// @Description List catalog items, optionally filtered by category and price range
// @Tags Items
// @Produce json
// @Param category query string false "Category filter"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Success 200 {object} models.Response
// @Router /items [get]
func (ctrl *ItemController) GetItems(c *gin.Context) {
	filter := models.ItemFilter{Category: c.Query("category")}
	if raw := c.Query("minPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinPrice = &v
		}
	}
	if raw := c.Query("maxPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxPrice = &v
		}
	}

	cacheKey := itemCacheKey(filter)
	ctx := c.Request.Context()

	if models.RedisClient != nil {
		cached, err := models.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			c.Data(http.StatusOK, "application/json", []byte(cached))
			return
		}
	}

	items, err := ctrl.itemService.GetItems(ctx, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to fetch items",
			Error:   "storage_failure",
		})
		return
	}

	response := models.Response{
		Success: true,
		Message: "Items retrieved",
		Data:    items,
	}

	if models.RedisClient != nil {
		jsonData, _ := json.Marshal(response)
		models.RedisClient.Set(ctx, cacheKey, string(jsonData), 5*time.Minute)
	}

	c.JSON(http.StatusOK, response)
}

// GetItemByID godoc
// @Summary Get item
// @Tags Items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /items/{id} [get]
func (ctrl *ItemController) GetItemByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid item ID",
			Error:   "validation_error",
		})
		return
	}

	item, err := ctrl.itemService.GetItem(c.Request.Context(), id)
	if err != nil {
		respondItemError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Item retrieved",
		Data:    item,
	})
}

// GetCategories godoc
// @Summary List categories
// @Description Distinct categories present in the catalog
// @Tags Items
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *ItemController) GetCategories(c *gin.Context) {
	categories, err := ctrl.itemService.GetCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to fetch categories",
			Error:   "storage_failure",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Categories retrieved",
		Data:    categories,
	})
}

// CreateItem godoc
// @Summary Create item
// @Tags Items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateItemRequest true "Create Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /items [post]
func (ctrl *ItemController) CreateItem(c *gin.Context) {
	var req models.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Missing required fields",
			Error:   "validation_error",
		})
		return
	}

	item, err := ctrl.itemService.CreateItem(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to create item",
			Error:   "storage_failure",
		})
		return
	}

	invalidateItemCache()

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Item created",
		Data:    item,
	})
}

// UpdateItem godoc
// @Summary Update item
// @Tags Items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Param request body models.UpdateItemRequest true "Update Request"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /items/{id} [put]
func (ctrl *ItemController) UpdateItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid item ID",
			Error:   "validation_error",
		})
		return
	}

	var req models.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   "validation_error",
		})
		return
	}

	item, err := ctrl.itemService.UpdateItem(c.Request.Context(), id, req)
	if err != nil {
		respondItemError(c, err)
		return
	}

	invalidateItemCache()

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Item updated",
		Data:    item,
	})
}

// UploadItemImage godoc
// @Summary Upload item image
// @Tags Items
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Param image formData file true "Image file"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /items/{id}/image [post]
func (ctrl *ItemController) UploadItemImage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid item ID",
			Error:   "validation_error",
		})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Image file is required",
			Error:   "validation_error",
		})
		return
	}

	localPath, err := utils.UploadFile(c, fileHeader, "items")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
			Error:   "validation_error",
		})
		return
	}

	imageURL, publicID, err := libs.UploadToCloudinary(localPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Image upload failed",
			Error:   "storage_failure",
		})
		return
	}

	item, err := ctrl.itemService.UpdateItemImage(c.Request.Context(), id, imageURL, publicID)
	if err != nil {
		respondItemError(c, err)
		return
	}

	invalidateItemCache()

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Item image updated",
		Data:    item,
	})
}

// DeleteItem godoc
// @Summary Delete item
// @Description Hard-delete an item; cart lines referencing it disappear from resolved views
// @Tags Items
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /items/{id} [delete]
func (ctrl *ItemController) DeleteItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid item ID",
			Error:   "validation_error",
		})
		return
	}

	if err := ctrl.itemService.DeleteItem(c.Request.Context(), id); err != nil {
		respondItemError(c, err)
		return
	}

	invalidateItemCache()

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Item deleted",
	})
}

func respondItemError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrItemNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Item not found",
			Error:   "item_not_found",
		})
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Success: false,
		Message: "Something went wrong",
		Error:   "storage_failure",
	})
}
