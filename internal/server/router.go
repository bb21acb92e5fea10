package server

import (
	"net/http"
	"strings"

	handler "bidding-marketplace/services/marketplace/handler"
	"bidding-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// allowedMethods drives the Allow header on 405 responses.
var allowedMethods = map[string][]string{
	"/bids":        {http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	"/bids/accept": {http.MethodPost},
	"/collections": {http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	"/user":        {http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(ledger handler.BidLedgerInterface, cat handler.CatalogInterface, dir handler.DirectoryInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestIDMiddleware)     // per-request id
	router.Use(RequestLoggerMiddleware) // custom request logging

	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		if methods, ok := allowedMethods[c.Request.URL.Path]; ok {
			c.Header("Allow", strings.Join(methods, ", "))
		}
		utils.JSONError(c, http.StatusMethodNotAllowed, "method not allowed")
	})

	bidHandler := handler.NewBidHandler(ledger)
	collectionHandler := handler.NewCollectionHandler(cat)
	userHandler := handler.NewUserHandler(dir)

	bids := router.Group("/bids")
	{
		bids.GET("", bidHandler.ListBidsHandler)
		bids.POST("", bidHandler.CreateBidHandler)
		bids.PUT("", bidHandler.UpdateBidHandler)
		bids.DELETE("", bidHandler.CancelBidHandler)
		bids.POST("/accept", bidHandler.AcceptBidHandler)
	}

	collections := router.Group("/collections")
	{
		collections.GET("", collectionHandler.ListCollectionsHandler)
		collections.POST("", collectionHandler.CreateCollectionHandler)
		collections.PUT("", collectionHandler.UpdateCollectionHandler)
		collections.DELETE("", collectionHandler.DeleteCollectionHandler)
	}

	users := router.Group("/user")
	{
		users.GET("", userHandler.ListUsersHandler)
		users.POST("", userHandler.CreateUserHandler)
		users.PUT("", userHandler.UpdateUserHandler)
		users.DELETE("", userHandler.DeleteUserHandler)
	}

	return router
}
