package v1

import (
	"github.com/rlc-community-providers/rlc-hpalm-provider/internal/models"
	"github.com/rlc-community-providers/rlc-hpalm-provider/internal/util"
)

// NewRequestFromModel converts a models.ProviderInfo to an API Request.
func NewRequestFromModel(info models.ProviderInfo) Request {
	request := Request{
		Id:          info.ID,
		Name:        info.Name,
		Title:       info.Title,
		Type:        info.Type,
		Description: info.Description,
		Url:         info.URL,
	}
	for _, p := range info.Properties {
		request.Properties = append(request.Properties, Property{
			Name:        p.Name,
			DisplayName: p.DisplayName,
			Value:       p.Value,
		})
	}
	return request
}

// NewFieldValuesFromModel converts field options to the API shape.
func NewFieldValuesFromModel(info *models.FieldInfo) FieldValuesResponse {
	resp := FieldValuesResponse{Field: info.Name, Values: []FieldValue{}}
	for _, v := range info.Values {
		resp.Values = append(resp.Values, FieldValue{
			Id:          v.ID,
			Name:        v.Name,
			Description: v.Description,
		})
	}
	return resp
}

// NewStatusFromModel converts a provider status to the API shape.
func NewStatusFromModel(status *models.ProviderStatus) ProviderStatus {
	apiStatus := ProviderStatus{
		Connection:    status.Connection,
		Authenticated: status.Authenticated,
	}
	if status.Error != nil {
		apiStatus.Error = util.StringPtr(status.Error.Error())
	}
	return apiStatus
}

// NewSettingsFromModel converts stored settings to the API shape.
func NewSettingsFromModel(settings *models.Settings) Settings {
	return Settings{
		StatusFilters: settings.StatusFilters,
		ResultLimit:   settings.ResultLimit,
	}
}

// ToModel converts a settings payload to the stored shape.
func (s Settings) ToModel() *models.Settings {
	return &models.Settings{
		StatusFilters: s.StatusFilters,
		ResultLimit:   s.ResultLimit,
	}
}

// NewConnectionFromModel converts a stored profile to the API shape. The
// password is deliberately absent.
func NewConnectionFromModel(conn models.Connection) Connection {
	return Connection{
		Id:       conn.ID,
		Name:     conn.Name,
		Url:      conn.URL,
		Username: conn.Username,
		UseXsrf:  conn.UseXSRF,
		Domain:   conn.Domain,
		Active:   conn.Active,
	}
}

// ToModel converts a create/update payload to the stored shape.
func (r ConnectionRequest) ToModel() *models.Connection {
	return &models.Connection{
		Name:     r.Name,
		URL:      r.Url,
		Username: r.Username,
		Password: r.Password,
		UseXSRF:  r.UseXsrf,
		Domain:   r.Domain,
		Active:   r.Active,
	}
}
