package ledger

import (
	"errors"
	"fmt"
	"math"

	"bidding-marketplace/internal/markerrors"
	"bidding-marketplace/internal/models"
	"bidding-marketplace/internal/repository"
	"bidding-marketplace/utils"
)

// UnknownBidder is the display name used when a bid's author no longer
// exists in the directory.
const UnknownBidder = "Unknown"

// Service implements the bid lifecycle: creation, price edits,
// cancellation, and the acceptance protocol that keeps at most one
// accepted bid per collection.
type Service struct {
	bids        repository.BidStore
	collections repository.CollectionStore
	users       repository.UserStore
}

// NewService creates a new ledger Service instance
func NewService(bids repository.BidStore, collections repository.CollectionStore, users repository.UserStore) *Service {
	return &Service{
		bids:        bids,
		collections: collections,
		users:       users,
	}
}

// ListAll returns every bid, enriched with bidder display names.
func (s *Service) ListAll() ([]models.EnrichedBid, error) {
	bids, err := s.bids.ListBids()
	if err != nil {
		return nil, fmt.Errorf("ledger: failed to list bids: %w", err)
	}
	return s.enrichAll(bids)
}

// ListByCollection returns the collection's bids in creation order,
// enriched with bidder display names.
func (s *Service) ListByCollection(collectionID int64) ([]models.EnrichedBid, error) {
	bids, err := s.bids.ListBidsByCollection(collectionID)
	if err != nil {
		return nil, fmt.Errorf("ledger: failed to list bids for collection %d: %w", collectionID, err)
	}
	return s.enrichAll(bids)
}

// Create records a new pending bid after validating the price and that both
// referenced records exist.
func (s *Service) Create(collectionID, bidderID int64, price float64) (models.EnrichedBid, error) {
	if err := validatePrice(price); err != nil {
		return models.EnrichedBid{}, err
	}
	if _, err := s.collections.GetCollection(collectionID); err != nil {
		if errors.Is(err, markerrors.ErrNotFound) {
			return models.EnrichedBid{}, fmt.Errorf("ledger: %w - unknown collection %d", markerrors.ErrValidation, collectionID)
		}
		return models.EnrichedBid{}, fmt.Errorf("ledger: failed to resolve collection %d: %w", collectionID, err)
	}
	if _, err := s.users.GetUser(bidderID); err != nil {
		if errors.Is(err, markerrors.ErrNotFound) {
			return models.EnrichedBid{}, fmt.Errorf("ledger: %w - unknown bidder %d", markerrors.ErrValidation, bidderID)
		}
		return models.EnrichedBid{}, fmt.Errorf("ledger: failed to resolve bidder %d: %w", bidderID, err)
	}

	bid := models.Bid{
		ID:           utils.NextID(),
		CollectionID: collectionID,
		BidderID:     bidderID,
		Price:        price,
		Status:       models.BidPending,
	}

	if err := s.bids.AddBid(bid); err != nil {
		return models.EnrichedBid{}, fmt.Errorf("ledger: failed to record bid on collection %d by user %d: %w", collectionID, bidderID, err)
	}

	return s.enrich(bid)
}

// UpdatePrice replaces a pending bid's price. Only the bidder may edit, and
// only while the bid is pending.
func (s *Service) UpdatePrice(bidID int64, newPrice float64, requestingUserID int64) (models.EnrichedBid, error) {
	bid, err := s.bids.GetBid(bidID)
	if err != nil {
		return models.EnrichedBid{}, fmt.Errorf("ledger: failed to load bid %d: %w", bidID, err)
	}
	if bid.Status != models.BidPending {
		return models.EnrichedBid{}, fmt.Errorf("ledger: %w - bid %d is %s", markerrors.ErrInvalidState, bidID, bid.Status)
	}
	if bid.BidderID != requestingUserID {
		return models.EnrichedBid{}, fmt.Errorf("ledger: %w - user %d is not the bidder of bid %d", markerrors.ErrForbidden, requestingUserID, bidID)
	}
	if err := validatePrice(newPrice); err != nil {
		return models.EnrichedBid{}, err
	}

	bid.Price = newPrice
	if err := s.bids.ReplaceBid(bid); err != nil {
		return models.EnrichedBid{}, fmt.Errorf("ledger: failed to update bid %d: %w", bidID, err)
	}

	return s.enrich(bid)
}

// Cancel hard-deletes a pending bid and returns it. Either the bidder or
// the owner of the bid's collection may cancel.
func (s *Service) Cancel(bidID, requestingUserID int64) (models.Bid, error) {
	bid, err := s.bids.GetBid(bidID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("ledger: failed to load bid %d: %w", bidID, err)
	}
	if bid.Status != models.BidPending {
		return models.Bid{}, fmt.Errorf("ledger: %w - bid %d is %s", markerrors.ErrInvalidState, bidID, bid.Status)
	}

	if bid.BidderID != requestingUserID {
		col, err := s.collections.GetCollection(bid.CollectionID)
		if err != nil || col.OwnerID != requestingUserID {
			return models.Bid{}, fmt.Errorf("ledger: %w - user %d may not cancel bid %d", markerrors.ErrForbidden, requestingUserID, bidID)
		}
	}

	deleted, err := s.bids.DeleteBid(bidID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("ledger: failed to delete bid %d: %w", bidID, err)
	}
	return deleted, nil
}

// Accept marks one bid accepted and every competing bid rejected, in a
// single atomic rewrite of the collection's bid set. Bids already rejected
// stay rejected, so repeating the call is a no-op. Only the collection
// owner may accept.
func (s *Service) Accept(collectionID, bidID, requestingUserID int64) (models.EnrichedBid, error) {
	col, err := s.collections.GetCollection(collectionID)
	if err != nil {
		return models.EnrichedBid{}, fmt.Errorf("ledger: failed to load collection %d: %w", collectionID, err)
	}
	if col.OwnerID != requestingUserID {
		return models.EnrichedBid{}, fmt.Errorf("ledger: %w - user %d does not own collection %d", markerrors.ErrForbidden, requestingUserID, collectionID)
	}

	var accepted models.Bid
	err = s.bids.UpdateCollectionBids(collectionID, func(bids []models.Bid) ([]models.Bid, error) {
		found := false
		for _, b := range bids {
			if b.ID == bidID {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("ledger: bid %d on collection %d: %w", bidID, collectionID, markerrors.ErrNotFound)
		}

		next := make([]models.Bid, len(bids))
		for i, b := range bids {
			switch {
			case b.ID == bidID:
				b.Status = models.BidAccepted
				accepted = b
			case b.Status != models.BidRejected:
				b.Status = models.BidRejected
			}
			next[i] = b
		}
		return next, nil
	})
	if err != nil {
		return models.EnrichedBid{}, err
	}

	return s.enrich(accepted)
}

// validatePrice accepts positive finite prices only.
func validatePrice(price float64) error {
	if price <= 0 || math.IsInf(price, 0) || math.IsNaN(price) {
		return fmt.Errorf("ledger: %w - price must be a positive finite number", markerrors.ErrValidation)
	}
	return nil
}

// enrich resolves the bidder's display name for a single bid.
func (s *Service) enrich(bid models.Bid) (models.EnrichedBid, error) {
	name := UnknownBidder
	if user, err := s.users.GetUser(bid.BidderID); err == nil {
		name = user.Name
	}
	return models.EnrichedBid{
		Bid:  bid,
		User: models.BidUser{ID: bid.BidderID, Name: name},
	}, nil
}

// enrichAll resolves display names for a bid list through one directory
// read, mirroring the per-request user map of the flat-file store.
func (s *Service) enrichAll(bids []models.Bid) ([]models.EnrichedBid, error) {
	users, err := s.users.ListUsers()
	if err != nil {
		return nil, fmt.Errorf("ledger: failed to list users for enrichment: %w", err)
	}

	names := make(map[int64]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}

	enriched := make([]models.EnrichedBid, 0, len(bids))
	for _, b := range bids {
		name, ok := names[b.BidderID]
		if !ok {
			name = UnknownBidder
		}
		enriched = append(enriched, models.EnrichedBid{
			Bid:  b,
			User: models.BidUser{ID: b.BidderID, Name: name},
		})
	}
	return enriched, nil
}
