package handlers

import (
	"github.com/rlc-community-providers/rlc-hpalm-provider/internal/services"
)

type Handler struct {
	providerSrv   *services.Provider
	connectionSrv *services.ConnectionService
	settingsSrv   *services.SettingsService
}

func New(providerSrv *services.Provider, connectionSrv *services.ConnectionService, settingsSrv *services.SettingsService) *Handler {
	return &Handler{
		providerSrv:   providerSrv,
		connectionSrv: connectionSrv,
		settingsSrv:   settingsSrv,
	}
}
