package models

// BidStatus is the lifecycle state of a bid. Pending bids may be edited or
// cancelled; Accepted and Rejected are terminal.
type BidStatus string

const (
	BidPending  BidStatus = "pending"
	BidAccepted BidStatus = "accepted"
	BidRejected BidStatus = "rejected"
)

// Valid reports whether s is a known bid status.
func (s BidStatus) Valid() bool {
	switch s {
	case BidPending, BidAccepted, BidRejected:
		return true
	default:
		return false
	}
}

// User represents a registered participant
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RecordID implements recordstore.Record
func (u User) RecordID() int64 { return u.ID }

// Collection represents a lot listed for bidding, owned by one user
type Collection struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Stock       int     `json:"stock"`
	Price       float64 `json:"price"`
	OwnerID     int64   `json:"owner_id"`
}

// RecordID implements recordstore.Record
func (c Collection) RecordID() int64 { return c.ID }

// Bid represents a user's offer to purchase a collection at a price
type Bid struct {
	ID           int64     `json:"id"`
	CollectionID int64     `json:"collection_id"`
	BidderID     int64     `json:"bidder_id"`
	Price        float64   `json:"price"`
	Status       BidStatus `json:"status"`
}

// RecordID implements recordstore.Record
func (b Bid) RecordID() int64 { return b.ID }

// BidUser is the display identity of a bid's author
type BidUser struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// EnrichedBid is a bid augmented with the bidder's display name
type EnrichedBid struct {
	Bid
	User BidUser `json:"user"`
}
