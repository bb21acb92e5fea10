package catalog

import (
	"fmt"
	"strings"

	"bidding-marketplace/internal/markerrors"
	"bidding-marketplace/internal/models"
	"bidding-marketplace/internal/repository"
	"bidding-marketplace/utils"
)

// CollectionUpdate carries the mutable collection fields; nil means keep.
type CollectionUpdate struct {
	Name        *string
	Description *string
	Stock       *int
	Price       *float64
}

// Service implements collection CRUD with owner-only mutation. Deleting a
// collection also removes its bids, so the ledger never carries dangling
// references.
type Service struct {
	collections repository.CollectionStore
	bids        repository.BidStore
}

// NewService creates a new catalog Service instance
func NewService(collections repository.CollectionStore, bids repository.BidStore) *Service {
	return &Service{
		collections: collections,
		bids:        bids,
	}
}

// List returns all collections in creation order.
func (s *Service) List() ([]models.Collection, error) {
	cols, err := s.collections.ListCollections()
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to list collections: %w", err)
	}
	return cols, nil
}

// Get returns one collection by id.
func (s *Service) Get(id int64) (models.Collection, error) {
	col, err := s.collections.GetCollection(id)
	if err != nil {
		return models.Collection{}, fmt.Errorf("catalog: failed to load collection %d: %w", id, err)
	}
	return col, nil
}

// Create lists a new collection for ownerID.
func (s *Service) Create(name, description string, stock int, price float64, ownerID int64) (models.Collection, error) {
	if strings.TrimSpace(name) == "" {
		return models.Collection{}, fmt.Errorf("catalog: %w - missing collection name", markerrors.ErrValidation)
	}
	if ownerID <= 0 {
		return models.Collection{}, fmt.Errorf("catalog: %w - missing owner id", markerrors.ErrValidation)
	}
	if stock < 0 {
		return models.Collection{}, fmt.Errorf("catalog: %w - negative stock", markerrors.ErrValidation)
	}
	if price < 0 {
		return models.Collection{}, fmt.Errorf("catalog: %w - negative price", markerrors.ErrValidation)
	}

	col := models.Collection{
		ID:          utils.NextID(),
		Name:        name,
		Description: description,
		Stock:       stock,
		Price:       price,
		OwnerID:     ownerID,
	}
	if err := s.collections.AddCollection(col); err != nil {
		return models.Collection{}, fmt.Errorf("catalog: failed to create collection for owner %d: %w", ownerID, err)
	}
	return col, nil
}

// Update applies the set fields of upd to a collection. Owner only.
func (s *Service) Update(id, requestingUserID int64, upd CollectionUpdate) (models.Collection, error) {
	col, err := s.collections.GetCollection(id)
	if err != nil {
		return models.Collection{}, fmt.Errorf("catalog: failed to load collection %d: %w", id, err)
	}
	if col.OwnerID != requestingUserID {
		return models.Collection{}, fmt.Errorf("catalog: %w - user %d does not own collection %d", markerrors.ErrForbidden, requestingUserID, id)
	}

	if upd.Name != nil {
		if strings.TrimSpace(*upd.Name) == "" {
			return models.Collection{}, fmt.Errorf("catalog: %w - empty collection name", markerrors.ErrValidation)
		}
		col.Name = *upd.Name
	}
	if upd.Description != nil {
		col.Description = *upd.Description
	}
	if upd.Stock != nil {
		if *upd.Stock < 0 {
			return models.Collection{}, fmt.Errorf("catalog: %w - negative stock", markerrors.ErrValidation)
		}
		col.Stock = *upd.Stock
	}
	if upd.Price != nil {
		if *upd.Price < 0 {
			return models.Collection{}, fmt.Errorf("catalog: %w - negative price", markerrors.ErrValidation)
		}
		col.Price = *upd.Price
	}

	if err := s.collections.ReplaceCollection(col); err != nil {
		return models.Collection{}, fmt.Errorf("catalog: failed to update collection %d: %w", id, err)
	}
	return col, nil
}

// Delete removes a collection and cascades to its bids. Owner only.
func (s *Service) Delete(id, requestingUserID int64) (models.Collection, error) {
	col, err := s.collections.GetCollection(id)
	if err != nil {
		return models.Collection{}, fmt.Errorf("catalog: failed to load collection %d: %w", id, err)
	}
	if col.OwnerID != requestingUserID {
		return models.Collection{}, fmt.Errorf("catalog: %w - user %d does not own collection %d", markerrors.ErrForbidden, requestingUserID, id)
	}

	deleted, err := s.collections.DeleteCollection(id)
	if err != nil {
		return models.Collection{}, fmt.Errorf("catalog: failed to delete collection %d: %w", id, err)
	}
	if err := s.bids.DeleteBidsByCollection(id); err != nil {
		return models.Collection{}, fmt.Errorf("catalog: failed to delete bids of collection %d: %w", id, err)
	}
	return deleted, nil
}
