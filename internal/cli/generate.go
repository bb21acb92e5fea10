package cli

import (
	"fmt"

	"bidding-marketplace/internal/models"
	"bidding-marketplace/internal/repository"
	"bidding-marketplace/utils"

	"github.com/spf13/cobra"
)

var (
	// Generate flags
	numUsers          int
	numCollections    int
	bidsPerCollection int
)

// generateCmd seeds the data directory with sample records
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate sample users, collections and pending bids",
	Long: `Generate sample data into the data directory: numbered users, one
collection per id with owners assigned round-robin, and a block of pending
bids per collection priced just below the asking price.

Existing records in the data directory are replaced.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate()
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntVar(&numUsers, "users", 10, "Number of users to generate")
	generateCmd.Flags().IntVar(&numCollections, "collections", 100, "Number of collections to generate")
	generateCmd.Flags().IntVar(&bidsPerCollection, "bids", 10, "Number of pending bids per collection")
}

func runGenerate() error {
	dir := dataDir
	if dir == "" {
		dir = "./data"
	}
	if numUsers < 1 || numCollections < 0 || bidsPerCollection < 0 || bidsPerCollection > numUsers {
		return fmt.Errorf("invalid generation parameters: users=%d collections=%d bids=%d", numUsers, numCollections, bidsPerCollection)
	}

	userStore, err := repository.OpenUserStore(dir)
	if err != nil {
		return err
	}
	collectionStore, err := repository.OpenCollectionStore(dir)
	if err != nil {
		return err
	}
	bidStore, err := repository.OpenBidStore(dir)
	if err != nil {
		return err
	}

	users := make([]models.User, 0, numUsers)
	for i := 1; i <= numUsers; i++ {
		users = append(users, models.User{
			ID:    int64(i),
			Name:  fmt.Sprintf("User %d", i),
			Email: fmt.Sprintf("user%d@example.com", i),
		})
	}

	collections := make([]models.Collection, 0, numCollections)
	for i := 1; i <= numCollections; i++ {
		collections = append(collections, models.Collection{
			ID:          int64(i),
			Name:        fmt.Sprintf("Collection #%d", i),
			Description: fmt.Sprintf("Description for collection #%d", i),
			Stock:       100,
			Price:       100,
			OwnerID:     int64((i-1)%numUsers + 1),
		})
	}

	bids := make([]models.Bid, 0, numCollections*bidsPerCollection)
	bidID := int64(1)
	for c := 1; c <= numCollections; c++ {
		for i := 1; i <= bidsPerCollection; i++ {
			bids = append(bids, models.Bid{
				ID:           bidID,
				CollectionID: int64(c),
				BidderID:     int64(i),
				Price:        float64(90 + i),
				Status:       models.BidPending,
			})
			bidID++
		}
	}

	if err := replaceAll(userStore, collectionStore, bidStore, users, collections, bids); err != nil {
		return err
	}

	utils.Info("sample data generated", map[string]any{
		"data_dir":    dir,
		"users":       len(users),
		"collections": len(collections),
		"bids":        len(bids),
	})
	return nil
}

func replaceAll(
	userStore *repository.FileUserStore,
	collectionStore *repository.FileCollectionStore,
	bidStore *repository.FileBidStore,
	users []models.User,
	collections []models.Collection,
	bids []models.Bid,
) error {
	for _, u := range users {
		if _, err := userStore.GetUser(u.ID); err == nil {
			if err := userStore.ReplaceUser(u); err != nil {
				return err
			}
			continue
		}
		if err := userStore.AddUser(u); err != nil {
			return err
		}
	}
	for _, c := range collections {
		if _, err := collectionStore.GetCollection(c.ID); err == nil {
			if err := collectionStore.ReplaceCollection(c); err != nil {
				return err
			}
			continue
		}
		if err := collectionStore.AddCollection(c); err != nil {
			return err
		}
	}
	for _, b := range bids {
		if _, err := bidStore.GetBid(b.ID); err == nil {
			if err := bidStore.ReplaceBid(b); err != nil {
				return err
			}
			continue
		}
		if err := bidStore.AddBid(b); err != nil {
			return err
		}
	}
	return nil
}
