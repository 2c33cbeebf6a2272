package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/padgame/pad_backend/internal/apperrors"
	portssvc "github.com/padgame/pad_backend/internal/core/ports/services"
	"github.com/padgame/pad_backend/internal/dto"
	"github.com/padgame/pad_backend/internal/middleware"
)

// itemHandler handles HTTP requests related to shop items.
type itemHandler struct {
	itemService portssvc.ItemSvcFacade
}

// newItemHandler creates a new itemHandler.
func newItemHandler(itemService portssvc.ItemSvcFacade) *itemHandler {
	return &itemHandler{itemService: itemService}
}

// RegisterItemRoutes registers shop item specific routes.
func RegisterItemRoutes(r gin.IRouter, itemService portssvc.ItemSvcFacade) {
	h := newItemHandler(itemService)

	r.GET("/items", h.getItems)
	r.GET("/items/:itemID", h.getItem)
	r.GET("/items/:itemID/prices", h.getPriceHistory)
	r.POST("/items", h.createItem)
	r.PATCH("/items/:itemID/price", h.updatePrice)
}

// getItems godoc
// @Summary List shop items
// @Description Retrieves one page of items ordered by title, with the total count
// @Tags items
// @Produce  json
// @Param   page query int false "Page number, minimum 1" default(1)
// @Param   pageSize query int false "Page size, minimum 1" default(20)
// @Success 200 {object} dto.ListItemsResponse
// @Failure 500 {object} map[string]string "Database failure"
// @Router /items [get]
func (h *itemHandler) getItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	page := 1
	pageSize := 20
	if v := c.Query("page"); v != "" {
		page, _ = strconv.Atoi(v)
	}
	if v := c.Query("pageSize"); v != "" {
		pageSize, _ = strconv.Atoi(v)
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	total, items, err := h.itemService.ListItems(c.Request.Context(), page, pageSize)
	if err != nil {
		logger.Error("Failed to list items", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ListItemsResponse{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		Items:    dto.ToItemResponses(items),
	})
}

// getItem godoc
// @Summary Get a shop item
// @Description Retrieves a single item by its ID
// @Tags items
// @Produce  json
// @Param   itemID path string true "Item ID"
// @Success 200 {object} dto.ItemResponse
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Database failure"
// @Router /items/{itemID} [get]
func (h *itemHandler) getItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID, ok := resourceID(c, "itemID")
	if !ok {
		return
	}

	item, err := h.itemService.GetItemByID(c.Request.Context(), itemID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Item not found", slog.String("item_id", itemID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		logger.Error("Failed to get item from service", slog.String("error", err.Error()), slog.String("item_id", itemID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

// getPriceHistory godoc
// @Summary Get an item's price history
// @Description Retrieves the append-only price log of an item, most recent entry first
// @Tags items
// @Produce  json
// @Param   itemID path string true "Item ID"
// @Success 200 {object} dto.PriceHistoryResponse
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Database failure"
// @Router /items/{itemID}/prices [get]
func (h *itemHandler) getPriceHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID, ok := resourceID(c, "itemID")
	if !ok {
		return
	}

	history, err := h.itemService.GetPriceHistory(c.Request.Context(), itemID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Item not found", slog.String("item_id", itemID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		logger.Error("Failed to get price history from service", slog.String("error", err.Error()), slog.String("item_id", itemID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPriceHistoryResponse(history))
}

// createItem godoc
// @Summary Create a shop item
// @Description Creates an item and its initial price-history entry
// @Tags items
// @Accept  json
// @Produce  json
// @Param   item body dto.CreateItemRequest true "Item details"
// @Success 200 {object} map[string]string "Returns the ID of the created item"
// @Failure 400 {object} map[string]string "title or price.amount missing"
// @Failure 500 {object} map[string]string "Database failure"
// @Router /items [post]
func (h *itemHandler) createItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createItem", bindingErrorDetail(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data"})
		return
	}

	itemID, err := h.itemService.CreateItem(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating item", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data"})
		} else {
			logger.Error("Failed to create item in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": itemID})
}

// updatePrice godoc
// @Summary Update an item's price
// @Description Sets the item's current price, appends a price-history entry and returns the updated item
// @Tags items
// @Accept  json
// @Produce  json
// @Param   itemID path string true "Item ID"
// @Param   price body dto.UpdatePriceRequest true "New price"
// @Success 200 {object} dto.ItemResponse
// @Failure 400 {object} map[string]string "price.amount missing"
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Database failure"
// @Router /items/{itemID}/price [patch]
func (h *itemHandler) updatePrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID, ok := resourceID(c, "itemID")
	if !ok {
		return
	}

	var req dto.UpdatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updatePrice", bindingErrorDetail(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data"})
		return
	}

	item, err := h.itemService.UpdatePrice(c.Request.Context(), itemID, req.Price)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error updating price", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data"})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Item not found", slog.String("item_id", itemID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		default:
			logger.Error("Failed to update price in service", slog.String("error", err.Error()), slog.String("item_id", itemID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}
