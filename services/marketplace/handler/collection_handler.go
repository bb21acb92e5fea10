package handler

import (
	"fmt"
	"net/http"

	"bidding-marketplace/internal/catalog"
	model "bidding-marketplace/internal/models"
	"bidding-marketplace/services/marketplace/helpers"
	"bidding-marketplace/utils"

	"github.com/gin-gonic/gin"
)

type CatalogInterface interface {
	List() ([]model.Collection, error)
	Get(id int64) (model.Collection, error)
	Create(name, description string, stock int, price float64, ownerID int64) (model.Collection, error)
	Update(id, requestingUserID int64, upd catalog.CollectionUpdate) (model.Collection, error)
	Delete(id, requestingUserID int64) (model.Collection, error)
}

type CollectionHandler struct {
	service CatalogInterface
}

func NewCollectionHandler(service CatalogInterface) *CollectionHandler {
	return &CollectionHandler{service: service}
}

// ListCollectionsHandler handles GET /collections (all) and ?id= (one)
func (h *CollectionHandler) ListCollectionsHandler(c *gin.Context) {
	if c.Query("id") != "" {
		id, err := helpers.QueryID(c, "id")
		if err != nil {
			status, message := helpers.MapErrorToHTTP(err)
			utils.JSONError(c, status, message)
			return
		}

		col, err := h.service.Get(id)
		if err != nil {
			status, message := helpers.MapErrorToHTTP(err)
			utils.JSONError(c, status, message)
			return
		}
		c.JSON(http.StatusOK, col)
		return
	}

	cols, err := h.service.List()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Error("ListCollectionsHandler: failed to list collections", map[string]any{"error": err.Error()})
		return
	}

	if cols == nil {
		cols = []model.Collection{}
	}
	c.JSON(http.StatusOK, cols)
}

// CreateCollectionHandler handles POST /collections
func (h *CollectionHandler) CreateCollectionHandler(c *gin.Context) {
	caller, err := helpers.CallerID(c)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		return
	}

	var req helpers.CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateCollectionHandler", err)
		return
	}

	col, err := h.service.Create(req.Name, req.Description, req.Stock, req.Price, caller)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Error("CreateCollectionHandler: failed to create collection", map[string]any{
			"owner_id": caller,
			"error":    err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, col)
	helpers.LogSuccess("CreateCollectionHandler", "collection created", map[string]any{
		"collection_id": col.ID,
		"owner_id":      col.OwnerID,
	})
}

// UpdateCollectionHandler handles PUT /collections?id=
func (h *CollectionHandler) UpdateCollectionHandler(c *gin.Context) {
	id, err := helpers.QueryID(c, "id")
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		return
	}

	caller, err := helpers.CallerID(c)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		return
	}

	var req helpers.UpdateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateCollectionHandler", err)
		return
	}

	col, err := h.service.Update(id, caller, catalog.CollectionUpdate{
		Name:        req.Name,
		Description: req.Description,
		Stock:       req.Stock,
		Price:       req.Price,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Warn("UpdateCollectionHandler: failed to update collection", map[string]any{
			"collection_id": id,
			"caller":        caller,
			"error":         err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, col)
	helpers.LogSuccess("UpdateCollectionHandler", "collection updated", map[string]any{
		"collection_id": col.ID,
	})
}

// DeleteCollectionHandler handles DELETE /collections?id=
func (h *CollectionHandler) DeleteCollectionHandler(c *gin.Context) {
	id, err := helpers.QueryID(c, "id")
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		return
	}

	caller, err := helpers.CallerID(c)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		return
	}

	if _, err := h.service.Delete(id, caller); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Warn("DeleteCollectionHandler: failed to delete collection", map[string]any{
			"collection_id": id,
			"caller":        caller,
			"error":         err.Error(),
		})
		return
	}

	utils.JSONMessage(c, http.StatusOK, fmt.Sprintf("Collection %d deleted", id), "", nil)
	helpers.LogSuccess("DeleteCollectionHandler", "collection deleted", map[string]any{
		"collection_id": id,
		"caller":        caller,
	})
}
