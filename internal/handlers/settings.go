package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/rlc-community-providers/rlc-hpalm-provider/api/v1"
)

// GetSettings returns the provider settings
// (GET /settings)
func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.settingsSrv.Get(c.Request.Context())
	if err != nil {
		zap.S().Named("settings_handler").Errorw("failed to get settings", "error", err)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, v1.NewSettingsFromModel(settings))
}

// PutSettings replaces the provider settings
// (PUT /settings)
func (h *Handler) PutSettings(c *gin.Context) {
	var payload v1.Settings
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.settingsSrv.Save(c.Request.Context(), payload.ToModel()); err != nil {
		zap.S().Named("settings_handler").Errorw("failed to save settings", "error", err)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, payload)
}
