package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bidding-marketplace/internal/markerrors"
	model "bidding-marketplace/internal/models"
	"bidding-marketplace/services/marketplace/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func newBidRouter(t *testing.T) (*MockBidLedgerInterface, *gin.Engine) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockLedger := NewMockBidLedgerInterface(ctrl)
	h := NewBidHandler(mockLedger)

	// Initialize Gin in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/bids", h.ListBidsHandler)
	router.POST("/bids", h.CreateBidHandler)
	router.PUT("/bids", h.UpdateBidHandler)
	router.DELETE("/bids", h.CancelBidHandler)
	router.POST("/bids/accept", h.AcceptBidHandler)
	return mockLedger, router
}

func doJSON(t *testing.T, router *gin.Engine, method, url string, body any, caller string) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if caller != "" {
		req.Header.Set(helpers.CallerHeader, caller)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func enriched(id, collectionID, bidderID int64, price float64, status model.BidStatus, name string) model.EnrichedBid {
	return model.EnrichedBid{
		Bid: model.Bid{
			ID:           id,
			CollectionID: collectionID,
			BidderID:     bidderID,
			Price:        price,
			Status:       status,
		},
		User: model.BidUser{ID: bidderID, Name: name},
	}
}

// Test ListBidsHandler
func TestListBidsHandler(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		mockSetup      func(m *MockBidLedgerInterface)
		expectedStatus int
		expectedLen    int
	}{
		{
			name: "by_collection",
			url:  "/bids?collection_id=1",
			mockSetup: func(m *MockBidLedgerInterface) {
				m.EXPECT().ListByCollection(int64(1)).Return([]model.EnrichedBid{
					enriched(1, 1, 10, 95, model.BidPending, "User 10"),
					enriched(2, 1, 11, 98, model.BidPending, "User 11"),
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedLen:    2,
		},
		{
			name: "all_bids",
			url:  "/bids",
			mockSetup: func(m *MockBidLedgerInterface) {
				m.EXPECT().ListAll().Return([]model.EnrichedBid{
					enriched(1, 1, 10, 95, model.BidPending, "User 10"),
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedLen:    1,
		},
		{
			name: "empty_collection",
			url:  "/bids?collection_id=5",
			mockSetup: func(m *MockBidLedgerInterface) {
				m.EXPECT().ListByCollection(int64(5)).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedLen:    0,
		},
		{
			name:           "malformed_collection_id",
			url:            "/bids?collection_id=abc",
			mockSetup:      func(m *MockBidLedgerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			mockLedger, router := newBidRouter(t)
			tc.mockSetup(mockLedger)

			w := doJSON(t, router, http.MethodGet, tc.url, nil, "")
			require.Equal(t, tc.expectedStatus, w.Code)

			if tc.expectedStatus == http.StatusOK {
				var bids []map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bids))
				require.Len(t, bids, tc.expectedLen)
				if tc.expectedLen > 0 {
					user := bids[0]["user"].(map[string]any)
					require.NotEmpty(t, user["name"])
				}
			}
		})
	}
}

// Test CreateBidHandler
func TestCreateBidHandler(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(m *MockBidLedgerInterface)
		expectedStatus int
	}{
		{
			name:        "success",
			requestBody: helpers.CreateBidRequest{CollectionID: 1, BidderID: 10, Price: 95},
			mockSetup: func(m *MockBidLedgerInterface) {
				m.EXPECT().Create(int64(1), int64(10), 95.0).
					Return(enriched(7, 1, 10, 95, model.BidPending, "User 10"), nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func(m *MockBidLedgerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing_collection_id",
			requestBody:    map[string]any{"bidder_id": 10, "price": 95},
			mockSetup:      func(m *MockBidLedgerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "non_positive_price",
			requestBody:    map[string]any{"collection_id": 1, "bidder_id": 10, "price": -5},
			mockSetup:      func(m *MockBidLedgerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "unknown_references",
			requestBody: helpers.CreateBidRequest{CollectionID: 99, BidderID: 10, Price: 95},
			mockSetup: func(m *MockBidLedgerInterface) {
				m.EXPECT().Create(int64(99), int64(10), 95.0).
					Return(model.EnrichedBid{}, markerrors.ErrValidation)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "store_failure",
			requestBody: helpers.CreateBidRequest{CollectionID: 1, BidderID: 10, Price: 95},
			mockSetup: func(m *MockBidLedgerInterface) {
				m.EXPECT().Create(int64(1), int64(10), 95.0).
					Return(model.EnrichedBid{}, markerrors.ErrStore)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			mockLedger, router := newBidRouter(t)
			tc.mockSetup(mockLedger)

			w := doJSON(t, router, http.MethodPost, "/bids", tc.requestBody, "")
			require.Equal(t, tc.expectedStatus, w.Code)

			if tc.expectedStatus == http.StatusCreated {
				var bid map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bid))
				require.Equal(t, float64(7), bid["id"])
				require.Equal(t, "pending", bid["status"])
				user := bid["user"].(map[string]any)
				require.Equal(t, "User 10", user["name"])
			}
		})
	}
}

// Test UpdateBidHandler
func TestUpdateBidHandler(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		caller         string
		requestBody    any
		mockSetup      func(m *MockBidLedgerInterface)
		expectedStatus int
	}{
		{
			name:        "success",
			url:         "/bids?id=1",
			caller:      "10",
			requestBody: helpers.UpdateBidRequest{Price: 99},
			mockSetup: func(m *MockBidLedgerInterface) {
				m.EXPECT().UpdatePrice(int64(1), 99.0, int64(10)).
					Return(enriched(1, 1, 10, 99, model.BidPending, "User 10"), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing_id",
			url:            "/bids",
			caller:         "10",
			requestBody:    helpers.UpdateBidRequest{Price: 99},
			mockSetup:      func(m *MockBidLedgerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing_caller_header",
			url:            "/bids?id=1",
			caller:         "",
			requestBody:    helpers.UpdateBidRequest{Price: 99},
			mockSetup:      func(m *MockBidLedgerInterface) {},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:        "unknown_bid",
			url:         "/bids?id=999",
			caller:      "10",
			requestBody: helpers.UpdateBidRequest{Price: 99},
			mockSetup: func(m *MockBidLedgerInterface) {
				m.EXPECT().UpdatePrice(int64(999), 99.0, int64(10)).
					Return(model.EnrichedBid{}, markerrors.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:        "non_pending_bid",
			url:         "/bids?id=2",
			caller:      "10",
			requestBody: helpers.UpdateBidRequest{Price: 99},
			mockSetup: func(m *MockBidLedgerInterface) {
				m.EXPECT().UpdatePrice(int64(2), 99.0, int64(10)).
					Return(model.EnrichedBid{}, markerrors.ErrInvalidState)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:        "not_the_bidder",
			url:         "/bids?id=1",
			caller:      "77",
			requestBody: helpers.UpdateBidRequest{Price: 99},
			mockSetup: func(m *MockBidLedgerInterface) {
				m.EXPECT().UpdatePrice(int64(1), 99.0, int64(77)).
					Return(model.EnrichedBid{}, markerrors.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			mockLedger, router := newBidRouter(t)
			tc.mockSetup(mockLedger)

			w := doJSON(t, router, http.MethodPut, tc.url, tc.requestBody, tc.caller)
			require.Equal(t, tc.expectedStatus, w.Code)

			if tc.expectedStatus == http.StatusOK {
				var bid map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bid))
				require.Equal(t, 99.0, bid["price"])
			}
		})
	}
}

// Test CancelBidHandler
func TestCancelBidHandler(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		caller         string
		mockSetup      func(m *MockBidLedgerInterface)
		expectedStatus int
	}{
		{
			name:   "success",
			url:    "/bids?id=1",
			caller: "10",
			mockSetup: func(m *MockBidLedgerInterface) {
				m.EXPECT().Cancel(int64(1), int64(10)).
					Return(model.Bid{ID: 1, CollectionID: 1, BidderID: 10, Price: 95, Status: model.BidPending}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "unknown_bid",
			url:    "/bids?id=999",
			caller: "10",
			mockSetup: func(m *MockBidLedgerInterface) {
				m.EXPECT().Cancel(int64(999), int64(10)).
					Return(model.Bid{}, markerrors.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "accepted_bid",
			url:    "/bids?id=2",
			caller: "10",
			mockSetup: func(m *MockBidLedgerInterface) {
				m.EXPECT().Cancel(int64(2), int64(10)).
					Return(model.Bid{}, markerrors.ErrInvalidState)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "missing_caller_header",
			url:            "/bids?id=1",
			caller:         "",
			mockSetup:      func(m *MockBidLedgerInterface) {},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			mockLedger, router := newBidRouter(t)
			tc.mockSetup(mockLedger)

			w := doJSON(t, router, http.MethodDelete, tc.url, nil, tc.caller)
			require.Equal(t, tc.expectedStatus, w.Code)

			if tc.expectedStatus == http.StatusOK {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				require.Contains(t, resp["message"], "deleted")
				bid := resp["bid"].(map[string]any)
				require.Equal(t, float64(1), bid["id"])
			}
		})
	}
}

// Test AcceptBidHandler
func TestAcceptBidHandler(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		caller         string
		mockSetup      func(m *MockBidLedgerInterface)
		expectedStatus int
	}{
		{
			name:        "success",
			requestBody: helpers.AcceptBidRequest{CollectionID: 1, BidID: 2},
			caller:      "2",
			mockSetup: func(m *MockBidLedgerInterface) {
				m.EXPECT().Accept(int64(1), int64(2), int64(2)).
					Return(enriched(2, 1, 11, 98, model.BidAccepted, "User 11"), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bad_types",
			requestBody:    map[string]any{"collection_id": "one", "bid_id": 2},
			caller:         "2",
			mockSetup:      func(m *MockBidLedgerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "unknown_bid",
			requestBody: helpers.AcceptBidRequest{CollectionID: 1, BidID: 999},
			caller:      "2",
			mockSetup: func(m *MockBidLedgerInterface) {
				m.EXPECT().Accept(int64(1), int64(999), int64(2)).
					Return(model.EnrichedBid{}, markerrors.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:        "store_failure",
			requestBody: helpers.AcceptBidRequest{CollectionID: 1, BidID: 2},
			caller:      "2",
			mockSetup: func(m *MockBidLedgerInterface) {
				m.EXPECT().Accept(int64(1), int64(2), int64(2)).
					Return(model.EnrichedBid{}, markerrors.ErrStore)
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:        "non_owner",
			requestBody: helpers.AcceptBidRequest{CollectionID: 1, BidID: 2},
			caller:      "77",
			mockSetup: func(m *MockBidLedgerInterface) {
				m.EXPECT().Accept(int64(1), int64(2), int64(77)).
					Return(model.EnrichedBid{}, markerrors.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			mockLedger, router := newBidRouter(t)
			tc.mockSetup(mockLedger)

			w := doJSON(t, router, http.MethodPost, "/bids/accept", tc.requestBody, tc.caller)
			require.Equal(t, tc.expectedStatus, w.Code)

			if tc.expectedStatus == http.StatusOK {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				require.Equal(t, "Bid accepted successfully", resp["message"])
				acceptedBid := resp["acceptedBid"].(map[string]any)
				require.Equal(t, "accepted", acceptedBid["status"])
			}
		})
	}
}
