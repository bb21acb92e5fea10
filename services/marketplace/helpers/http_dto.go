package helpers

// Request DTOs
type CreateBidRequest struct {
	CollectionID int64   `json:"collection_id" binding:"required"`
	BidderID     int64   `json:"bidder_id" binding:"required"`
	Price        float64 `json:"price" binding:"required,gt=0"`
}

type UpdateBidRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

type AcceptBidRequest struct {
	CollectionID int64 `json:"collection_id" binding:"required"`
	BidID        int64 `json:"bid_id" binding:"required"`
}

type CreateCollectionRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Stock       int     `json:"stock" binding:"gte=0"`
	Price       float64 `json:"price" binding:"gte=0"`
}

type UpdateCollectionRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Stock       *int     `json:"stock"`
	Price       *float64 `json:"price"`
}

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}
