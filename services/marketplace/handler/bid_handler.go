package handler

import (
	"fmt"
	"net/http"

	model "bidding-marketplace/internal/models"
	"bidding-marketplace/services/marketplace/helpers"
	"bidding-marketplace/utils"

	"github.com/gin-gonic/gin"
)

type BidLedgerInterface interface {
	ListAll() ([]model.EnrichedBid, error)
	ListByCollection(collectionID int64) ([]model.EnrichedBid, error)
	Create(collectionID, bidderID int64, price float64) (model.EnrichedBid, error)
	UpdatePrice(bidID int64, newPrice float64, requestingUserID int64) (model.EnrichedBid, error)
	Cancel(bidID, requestingUserID int64) (model.Bid, error)
	Accept(collectionID, bidID, requestingUserID int64) (model.EnrichedBid, error)
}

type BidHandler struct {
	service BidLedgerInterface
}

func NewBidHandler(service BidLedgerInterface) *BidHandler {
	return &BidHandler{service: service}
}

// ListBidsHandler handles GET /bids?collection_id=
func (h *BidHandler) ListBidsHandler(c *gin.Context) {
	var bids []model.EnrichedBid
	var err error

	if raw := c.Query("collection_id"); raw != "" {
		collectionID, parseErr := helpers.QueryID(c, "collection_id")
		if parseErr != nil {
			status, message := helpers.MapErrorToHTTP(parseErr)
			utils.JSONError(c, status, message)
			return
		}
		bids, err = h.service.ListByCollection(collectionID)
	} else {
		bids, err = h.service.ListAll()
	}

	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Error("ListBidsHandler: failed to list bids", map[string]any{"error": err.Error()})
		return
	}

	if bids == nil {
		bids = []model.EnrichedBid{}
	}
	c.JSON(http.StatusOK, bids)
}

// CreateBidHandler handles POST /bids
func (h *BidHandler) CreateBidHandler(c *gin.Context) {
	var req helpers.CreateBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateBidHandler", err)
		return
	}

	bid, err := h.service.Create(req.CollectionID, req.BidderID, req.Price)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Error("CreateBidHandler: failed to create bid", map[string]any{
			"collection_id": req.CollectionID,
			"bidder_id":     req.BidderID,
			"error":         err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, bid)
	helpers.LogSuccess("CreateBidHandler", "bid created", map[string]any{
		"bid_id":        bid.ID,
		"collection_id": bid.CollectionID,
		"bidder_id":     bid.BidderID,
		"price":         bid.Price,
	})
}

// UpdateBidHandler handles PUT /bids?id=
func (h *BidHandler) UpdateBidHandler(c *gin.Context) {
	bidID, err := helpers.QueryID(c, "id")
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

	var req helpers.UpdateBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateBidHandler", err)
		return
	}

	bid, err := h.service.UpdatePrice(bidID, req.Price, caller)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Warn("UpdateBidHandler: failed to update bid", map[string]any{
			"bid_id": bidID,
			"caller": caller,
			"error":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, bid)
	helpers.LogSuccess("UpdateBidHandler", "bid price updated", map[string]any{
		"bid_id": bid.ID,
		"price":  bid.Price,
	})
}

// CancelBidHandler handles DELETE /bids?id=
func (h *BidHandler) CancelBidHandler(c *gin.Context) {
	bidID, err := helpers.QueryID(c, "id")
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

	bid, err := h.service.Cancel(bidID, caller)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Warn("CancelBidHandler: failed to cancel bid", map[string]any{
			"bid_id": bidID,
			"caller": caller,
			"error":  err.Error(),
		})
		return
	}

	utils.JSONMessage(c, http.StatusOK, fmt.Sprintf("Bid %d deleted", bidID), "bid", bid)
	helpers.LogSuccess("CancelBidHandler", "bid cancelled", map[string]any{
		"bid_id": bidID,
		"caller": caller,
	})
}

// AcceptBidHandler handles POST /bids/accept
func (h *BidHandler) AcceptBidHandler(c *gin.Context) {
	var req helpers.AcceptBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AcceptBidHandler", err)
		return
	}

	caller, err := helpers.CallerID(c)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		return
	}

	bid, err := h.service.Accept(req.CollectionID, req.BidID, caller)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Error("AcceptBidHandler: failed to accept bid", map[string]any{
			"collection_id": req.CollectionID,
			"bid_id":        req.BidID,
			"caller":        caller,
			"error":         err.Error(),
		})
		return
	}

	utils.JSONMessage(c, http.StatusOK, "Bid accepted successfully", "acceptedBid", bid)
	helpers.LogSuccess("AcceptBidHandler", "bid accepted", map[string]any{
		"collection_id": req.CollectionID,
		"bid_id":        req.BidID,
		"caller":        caller,
	})
}
