package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/rlc-community-providers/rlc-hpalm-provider/api/v1"
	"github.com/rlc-community-providers/rlc-hpalm-provider/internal/services"
)

// FindRequests searches defects in a project
// (GET /requests)
func (h *Handler) FindRequests(c *gin.Context, params v1.FindRequestsParams) {
	results, err := h.providerSrv.FindRequests(c.Request.Context(), services.FindParams{
		Project:  params.Project,
		Statuses: params.Status,
		Title:    params.Title,
	})
	if err != nil {
		zap.S().Named("request_handler").Errorw("failed to find requests", "error", err)
		writeError(c, err)
		return
	}

	apiRequests := make([]v1.Request, 0, len(results))
	for _, info := range results {
		apiRequests = append(apiRequests, v1.NewRequestFromModel(info))
	}

	c.JSON(http.StatusOK, v1.RequestListResponse{
		Total:    len(apiRequests),
		Requests: apiRequests,
	})
}

// GetRequest returns one defect by composite `project:defect` id
// (GET /requests/{id})
func (h *Handler) GetRequest(c *gin.Context, id string) {
	info, err := h.providerSrv.GetRequest(c.Request.Context(), id)
	if err != nil {
		zap.S().Named("request_handler").Errorw("failed to get request", "id", id, "error", err)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, v1.NewRequestFromModel(*info))
}

// GetFieldValues returns selectable options for a provider input field
// (GET /fields/{name}/values)
func (h *Handler) GetFieldValues(c *gin.Context, name string) {
	info, err := h.providerSrv.FieldValues(c.Request.Context(), name)
	if err != nil {
		zap.S().Named("request_handler").Errorw("failed to get field values", "field", name, "error", err)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, v1.NewFieldValuesFromModel(info))
}

// GetStatus reports provider and ALM session liveness
// (GET /status)
func (h *Handler) GetStatus(c *gin.Context) {
	status, err := h.providerSrv.Status(c.Request.Context())
	if err != nil {
		zap.S().Named("request_handler").Errorw("failed to get provider status", "error", err)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, v1.NewStatusFromModel(status))
}
