package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/rlc-community-providers/rlc-hpalm-provider/api/v1"
	"github.com/rlc-community-providers/rlc-hpalm-provider/internal/services"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListConnections lists stored connection profiles
// (GET /connections)
func (h *Handler) ListConnections(c *gin.Context, params v1.ConnectionListParams) {
	page := 1
	if params.Page != nil && *params.Page > 0 {
		page = *params.Page
	}
	pageSize := defaultPageSize
	if params.PageSize != nil && *params.PageSize > 0 {
		pageSize = *params.PageSize
		if pageSize > maxPageSize {
			pageSize = maxPageSize
		}
	}

	result, err := h.connectionSrv.List(c.Request.Context(), services.ConnectionListParams{
		Name:   params.Name,
		Limit:  uint64(pageSize),
		Offset: uint64((page - 1) * pageSize),
	})
	if err != nil {
		zap.S().Named("connection_handler").Errorw("failed to list connections", "error", err)
		writeError(c, err)
		return
	}

	apiConnections := make([]v1.Connection, 0, len(result.Connections))
	for _, conn := range result.Connections {
		apiConnections = append(apiConnections, v1.NewConnectionFromModel(conn))
	}

	c.JSON(http.StatusOK, v1.ConnectionListResponse{
		Total:       result.Total,
		Connections: apiConnections,
	})
}

// CreateConnection stores a new connection profile
// (POST /connections)
func (h *Handler) CreateConnection(c *gin.Context) {
	var payload v1.ConnectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conn, err := h.connectionSrv.Create(c.Request.Context(), payload.ToModel())
	if err != nil {
		zap.S().Named("connection_handler").Errorw("failed to create connection", "error", err)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, v1.NewConnectionFromModel(*conn))
}

// GetConnection returns one connection profile
// (GET /connections/{id})
func (h *Handler) GetConnection(c *gin.Context, id string) {
	conn, err := h.connectionSrv.Get(c.Request.Context(), id)
	if err != nil {
		zap.S().Named("connection_handler").Errorw("failed to get connection", "id", id, "error", err)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, v1.NewConnectionFromModel(*conn))
}

// UpdateConnection replaces one connection profile
// (PUT /connections/{id})
func (h *Handler) UpdateConnection(c *gin.Context, id string) {
	var payload v1.ConnectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conn := payload.ToModel()
	conn.ID = id
	updated, err := h.connectionSrv.Update(c.Request.Context(), conn)
	if err != nil {
		zap.S().Named("connection_handler").Errorw("failed to update connection", "id", id, "error", err)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, v1.NewConnectionFromModel(*updated))
}

// DeleteConnection removes one connection profile
// (DELETE /connections/{id})
func (h *Handler) DeleteConnection(c *gin.Context, id string) {
	if err := h.connectionSrv.Delete(c.Request.Context(), id); err != nil {
		zap.S().Named("connection_handler").Errorw("failed to delete connection", "id", id, "error", err)
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
