package handler

import (
	"fmt"
	"net/http"

	"bidding-marketplace/internal/directory"
	model "bidding-marketplace/internal/models"
	"bidding-marketplace/services/marketplace/helpers"
	"bidding-marketplace/utils"

	"github.com/gin-gonic/gin"
)

type DirectoryInterface interface {
	List() ([]model.User, error)
	Get(id int64) (model.User, error)
	Create(name, email string) (model.User, error)
	Update(id int64, upd directory.UserUpdate) (model.User, error)
	Delete(id int64) (model.User, error)
}

type UserHandler struct {
	service DirectoryInterface
}

func NewUserHandler(service DirectoryInterface) *UserHandler {
	return &UserHandler{service: service}
}

// ListUsersHandler handles GET /user (all) and ?id= (one)
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	if c.Query("id") != "" {
		id, err := helpers.QueryID(c, "id")
		if err != nil {
			status, message := helpers.MapErrorToHTTP(err)
			utils.JSONError(c, status, message)
			return
		}

		user, err := h.service.Get(id)
		if err != nil {
			status, message := helpers.MapErrorToHTTP(err)
			utils.JSONError(c, status, message)
			return
		}
		c.JSON(http.StatusOK, user)
		return
	}

	users, err := h.service.List()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Error("ListUsersHandler: failed to list users", map[string]any{"error": err.Error()})
		return
	}

	if users == nil {
		users = []model.User{}
	}
	c.JSON(http.StatusOK, users)
}

// CreateUserHandler handles POST /user
func (h *UserHandler) CreateUserHandler(c *gin.Context) {
	var req helpers.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateUserHandler", err)
		return
	}

	user, err := h.service.Create(req.Name, req.Email)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Error("CreateUserHandler: failed to create user", map[string]any{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, user)
	helpers.LogSuccess("CreateUserHandler", "user created", map[string]any{"user_id": user.ID})
}

// UpdateUserHandler handles PUT /user?id=
func (h *UserHandler) UpdateUserHandler(c *gin.Context) {
	id, err := helpers.QueryID(c, "id")
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		return
	}

	var req helpers.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateUserHandler", err)
		return
	}

	user, err := h.service.Update(id, directory.UserUpdate{Name: req.Name, Email: req.Email})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Warn("UpdateUserHandler: failed to update user", map[string]any{
			"user_id": id,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, user)
	helpers.LogSuccess("UpdateUserHandler", "user updated", map[string]any{"user_id": user.ID})
}

// DeleteUserHandler handles DELETE /user?id=
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	id, err := helpers.QueryID(c, "id")
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		return
	}

	user, err := h.service.Delete(id)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Warn("DeleteUserHandler: failed to delete user", map[string]any{
			"user_id": id,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONMessage(c, http.StatusOK, fmt.Sprintf("User %d deleted", id), "user", user)
	helpers.LogSuccess("DeleteUserHandler", "user deleted", map[string]any{"user_id": id})
}
