package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"bidding-marketplace/internal/directory"
	"bidding-marketplace/internal/markerrors"
	model "bidding-marketplace/internal/models"
	"bidding-marketplace/services/marketplace/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func newUserRouter(t *testing.T) (*MockDirectoryInterface, *gin.Engine) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockDir := NewMockDirectoryInterface(ctrl)
	h := NewUserHandler(mockDir)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/user", h.ListUsersHandler)
	router.POST("/user", h.CreateUserHandler)
	router.PUT("/user", h.UpdateUserHandler)
	router.DELETE("/user", h.DeleteUserHandler)
	return mockDir, router
}

func TestListUsersHandler(t *testing.T) {
	t.Run("all", func(t *testing.T) {
		mockDir, router := newUserRouter(t)
		mockDir.EXPECT().List().Return([]model.User{
			{ID: 1, Name: "User 1", Email: "user1@example.com"},
			{ID: 2, Name: "User 2", Email: "user2@example.com"},
		}, nil)

		w := doJSON(t, router, http.MethodGet, "/user", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var users []model.User
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
		require.Len(t, users, 2)
	})

	t.Run("single_unknown", func(t *testing.T) {
		mockDir, router := newUserRouter(t)
		mockDir.EXPECT().Get(int64(999)).Return(model.User{}, markerrors.ErrNotFound)

		w := doJSON(t, router, http.MethodGet, "/user?id=999", nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCreateUserHandler(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(m *MockDirectoryInterface)
		expectedStatus int
	}{
		{
			name:        "success",
			requestBody: helpers.CreateUserRequest{Name: "User 11", Email: "user11@example.com"},
			mockSetup: func(m *MockDirectoryInterface) {
				m.EXPECT().Create("User 11", "user11@example.com").
					Return(model.User{ID: 11, Name: "User 11", Email: "user11@example.com"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing_email",
			requestBody:    map[string]any{"name": "User 11"},
			mockSetup:      func(m *MockDirectoryInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid_json",
			requestBody:    `{not json`,
			mockSetup:      func(m *MockDirectoryInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			mockDir, router := newUserRouter(t)
			tc.mockSetup(mockDir)

			w := doJSON(t, router, http.MethodPost, "/user", tc.requestBody, "")
			require.Equal(t, tc.expectedStatus, w.Code)

			if tc.expectedStatus == http.StatusCreated {
				var u model.User
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &u))
				require.Equal(t, int64(11), u.ID)
			}
		})
	}
}

func TestUpdateUserHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockDir, router := newUserRouter(t)
		mockDir.EXPECT().Update(int64(1), gomock.Any()).
			DoAndReturn(func(id int64, upd directory.UserUpdate) (model.User, error) {
				require.NotNil(t, upd.Name)
				require.Equal(t, "Renamed", *upd.Name)
				require.Nil(t, upd.Email)
				return model.User{ID: 1, Name: "Renamed", Email: "user1@example.com"}, nil
			})

		w := doJSON(t, router, http.MethodPut, "/user?id=1", map[string]any{"name": "Renamed"}, "")
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown", func(t *testing.T) {
		mockDir, router := newUserRouter(t)
		mockDir.EXPECT().Update(int64(999), gomock.Any()).
			Return(model.User{}, markerrors.ErrNotFound)

		w := doJSON(t, router, http.MethodPut, "/user?id=999", map[string]any{"name": "Renamed"}, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteUserHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockDir, router := newUserRouter(t)
		mockDir.EXPECT().Delete(int64(1)).
			Return(model.User{ID: 1, Name: "User 1"}, nil)

		w := doJSON(t, router, http.MethodDelete, "/user?id=1", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Contains(t, resp["message"], "deleted")
		user := resp["user"].(map[string]any)
		require.Equal(t, float64(1), user["id"])
	})

	t.Run("unknown", func(t *testing.T) {
		mockDir, router := newUserRouter(t)
		mockDir.EXPECT().Delete(int64(999)).Return(model.User{}, markerrors.ErrNotFound)

		w := doJSON(t, router, http.MethodDelete, "/user?id=999", nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
