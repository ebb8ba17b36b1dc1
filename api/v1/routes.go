package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ServerInterface is implemented by the handlers package.
type ServerInterface interface {
	// FindRequests searches defects
	// (GET /requests)
	FindRequests(c *gin.Context, params FindRequestsParams)
	// GetRequest returns one defect by composite id
	// (GET /requests/{id})
	GetRequest(c *gin.Context, id string)
	// GetFieldValues returns selectable options for an input field
	// (GET /fields/{name}/values)
	GetFieldValues(c *gin.Context, name string)
	// GetStatus reports provider liveness
	// (GET /status)
	GetStatus(c *gin.Context)
	// GetSettings returns the provider settings
	// (GET /settings)
	GetSettings(c *gin.Context)
	// PutSettings replaces the provider settings
	// (PUT /settings)
	PutSettings(c *gin.Context)
	// ListConnections lists connection profiles
	// (GET /connections)
	ListConnections(c *gin.Context, params ConnectionListParams)
	// CreateConnection stores a new connection profile
	// (POST /connections)
	CreateConnection(c *gin.Context)
	// GetConnection returns one connection profile
	// (GET /connections/{id})
	GetConnection(c *gin.Context, id string)
	// UpdateConnection replaces one connection profile
	// (PUT /connections/{id})
	UpdateConnection(c *gin.Context, id string)
	// DeleteConnection removes one connection profile
	// (DELETE /connections/{id})
	DeleteConnection(c *gin.Context, id string)
}

// RegisterHandlers wires the provider routes into the router group.
func RegisterHandlers(router *gin.RouterGroup, si ServerInterface) {
	router.GET("/requests", func(c *gin.Context) {
		var params FindRequestsParams
		if err := c.ShouldBindQuery(&params); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		si.FindRequests(c, params)
	})
	router.GET("/requests/:id", func(c *gin.Context) {
		si.GetRequest(c, c.Param("id"))
	})
	router.GET("/fields/:name/values", func(c *gin.Context) {
		si.GetFieldValues(c, c.Param("name"))
	})
	router.GET("/status", si.GetStatus)
	router.GET("/settings", si.GetSettings)
	router.PUT("/settings", si.PutSettings)
	router.GET("/connections", func(c *gin.Context) {
		var params ConnectionListParams
		if err := c.ShouldBindQuery(&params); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		si.ListConnections(c, params)
	})
	router.POST("/connections", si.CreateConnection)
	router.GET("/connections/:id", func(c *gin.Context) {
		si.GetConnection(c, c.Param("id"))
	})
	router.PUT("/connections/:id", func(c *gin.Context) {
		si.UpdateConnection(c, c.Param("id"))
	})
	router.DELETE("/connections/:id", func(c *gin.Context) {
		si.DeleteConnection(c, c.Param("id"))
	})
}
