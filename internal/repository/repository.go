package repository

import (
	"fmt"
	"path/filepath"

	"bidding-marketplace/internal/models"
	"bidding-marketplace/internal/recordstore"
	"bidding-marketplace/utils"
)

// BidStore defines bid persistence for the ledger. The Bid Ledger is the
// only owner of bid records.
type BidStore interface {
	ListBids() ([]models.Bid, error)
	ListBidsByCollection(collectionID int64) ([]models.Bid, error)
	GetBid(id int64) (models.Bid, error)
	AddBid(bid models.Bid) error
	ReplaceBid(bid models.Bid) error
	DeleteBid(id int64) (models.Bid, error)
	DeleteBidsByCollection(collectionID int64) error
	// UpdateCollectionBids atomically rewrites every bid of one collection:
	// fn receives the collection's bids in creation order and returns their
	// replacements. No other writer can observe an intermediate state.
	UpdateCollectionBids(collectionID int64, fn func([]models.Bid) ([]models.Bid, error)) error
}

// CollectionStore defines collection persistence for the catalog.
type CollectionStore interface {
	ListCollections() ([]models.Collection, error)
	GetCollection(id int64) (models.Collection, error)
	AddCollection(col models.Collection) error
	ReplaceCollection(col models.Collection) error
	DeleteCollection(id int64) (models.Collection, error)
}

// UserStore defines user persistence for the directory.
type UserStore interface {
	ListUsers() ([]models.User, error)
	GetUser(id int64) (models.User, error)
	AddUser(user models.User) error
	ReplaceUser(user models.User) error
	DeleteUser(id int64) (models.User, error)
}

// FileBidStore is a JSON-file implementation of BidStore.
type FileBidStore struct {
	store *recordstore.Store[models.Bid]
}

// OpenBidStore loads bids.json under dataDir, creating it on first write.
func OpenBidStore(dataDir string) (*FileBidStore, error) {
	store, err := recordstore.Open[models.Bid](filepath.Join(dataDir, "bids.json"))
	if err != nil {
		return nil, fmt.Errorf("open bid store: %w", err)
	}
	utils.EnsureIDAfter(store.MaxID())
	return &FileBidStore{store: store}, nil
}

func (s *FileBidStore) ListBids() ([]models.Bid, error) {
	return s.store.List(), nil
}

func (s *FileBidStore) ListBidsByCollection(collectionID int64) ([]models.Bid, error) {
	all := s.store.List()
	bids := make([]models.Bid, 0, len(all))
	for _, b := range all {
		if b.CollectionID == collectionID {
			bids = append(bids, b)
		}
	}
	return bids, nil
}

func (s *FileBidStore) GetBid(id int64) (models.Bid, error) {
	return s.store.Get(id)
}

func (s *FileBidStore) AddBid(bid models.Bid) error {
	return s.store.Append(bid)
}

func (s *FileBidStore) ReplaceBid(bid models.Bid) error {
	return s.store.Replace(bid)
}

func (s *FileBidStore) DeleteBid(id int64) (models.Bid, error) {
	return s.store.Delete(id)
}

func (s *FileBidStore) DeleteBidsByCollection(collectionID int64) error {
	return s.store.Update(func(bids []models.Bid) ([]models.Bid, error) {
		kept := make([]models.Bid, 0, len(bids))
		for _, b := range bids {
			if b.CollectionID != collectionID {
				kept = append(kept, b)
			}
		}
		return kept, nil
	})
}

func (s *FileBidStore) UpdateCollectionBids(collectionID int64, fn func([]models.Bid) ([]models.Bid, error)) error {
	return s.store.Update(func(bids []models.Bid) ([]models.Bid, error) {
		subset := make([]models.Bid, 0, len(bids))
		for _, b := range bids {
			if b.CollectionID == collectionID {
				subset = append(subset, b)
			}
		}

		updated, err := fn(subset)
		if err != nil {
			return nil, err
		}

		byID := make(map[int64]models.Bid, len(updated))
		for _, b := range updated {
			byID[b.ID] = b
		}

		// Splice the rewritten bids back in place; bids the callback dropped
		// disappear, bids of other collections are untouched.
		next := make([]models.Bid, 0, len(bids))
		for _, b := range bids {
			if b.CollectionID != collectionID {
				next = append(next, b)
				continue
			}
			if nb, ok := byID[b.ID]; ok {
				next = append(next, nb)
				delete(byID, b.ID)
			}
		}
		return next, nil
	})
}

// FileCollectionStore is a JSON-file implementation of CollectionStore.
type FileCollectionStore struct {
	store *recordstore.Store[models.Collection]
}

// OpenCollectionStore loads collections.json under dataDir.
func OpenCollectionStore(dataDir string) (*FileCollectionStore, error) {
	store, err := recordstore.Open[models.Collection](filepath.Join(dataDir, "collections.json"))
	if err != nil {
		return nil, fmt.Errorf("open collection store: %w", err)
	}
	utils.EnsureIDAfter(store.MaxID())
	return &FileCollectionStore{store: store}, nil
}

func (s *FileCollectionStore) ListCollections() ([]models.Collection, error) {
	return s.store.List(), nil
}

func (s *FileCollectionStore) GetCollection(id int64) (models.Collection, error) {
	return s.store.Get(id)
}

func (s *FileCollectionStore) AddCollection(col models.Collection) error {
	return s.store.Append(col)
}

func (s *FileCollectionStore) ReplaceCollection(col models.Collection) error {
	return s.store.Replace(col)
}

func (s *FileCollectionStore) DeleteCollection(id int64) (models.Collection, error) {
	return s.store.Delete(id)
}

// FileUserStore is a JSON-file implementation of UserStore.
type FileUserStore struct {
	store *recordstore.Store[models.User]
}

// OpenUserStore loads users.json under dataDir.
func OpenUserStore(dataDir string) (*FileUserStore, error) {
	store, err := recordstore.Open[models.User](filepath.Join(dataDir, "users.json"))
	if err != nil {
		return nil, fmt.Errorf("open user store: %w", err)
	}
	utils.EnsureIDAfter(store.MaxID())
	return &FileUserStore{store: store}, nil
}

func (s *FileUserStore) ListUsers() ([]models.User, error) {
	return s.store.List(), nil
}

func (s *FileUserStore) GetUser(id int64) (models.User, error) {
	return s.store.Get(id)
}

func (s *FileUserStore) AddUser(user models.User) error {
	return s.store.Append(user)
}

func (s *FileUserStore) ReplaceUser(user models.User) error {
	return s.store.Replace(user)
}

func (s *FileUserStore) DeleteUser(id int64) (models.User, error) {
	return s.store.Delete(id)
}
