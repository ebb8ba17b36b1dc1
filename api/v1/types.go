package v1

// Property is a named display value attached to a request.
type Property struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Value       string `json:"value"`
}

// Request is one defect mapped to the host result shape. Id is the
// composite `project:defect` identifier.
type Request struct {
	Id          string     `json:"id"`
	Name        string     `json:"name"`
	Title       string     `json:"title"`
	Type        string     `json:"type,omitempty"`
	Description string     `json:"description,omitempty"`
	Url         string     `json:"url"`
	Properties  []Property `json:"properties,omitempty"`
}

// RequestListResponse wraps a find-requests result.
type RequestListResponse struct {
	Total    int       `json:"total"`
	Requests []Request `json:"requests"`
}

// FindRequestsParams are the query parameters of GET /requests.
type FindRequestsParams struct {
	Project string   `form:"project"`
	Status  []string `form:"status"`
	Title   string   `form:"title"`
}

// FieldValue is one selectable option for a provider input field.
type FieldValue struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// FieldValuesResponse lists the options of one input field.
type FieldValuesResponse struct {
	Field  string       `json:"field"`
	Values []FieldValue `json:"values"`
}

// ProviderStatus reports provider and ALM session liveness.
type ProviderStatus struct {
	Connection    string  `json:"connection"`
	Authenticated bool    `json:"authenticated"`
	Error         *string `json:"error,omitempty"`
}

// Settings is the host-configurable provider surface.
type Settings struct {
	StatusFilters string `json:"statusFilters"`
	ResultLimit   string `json:"resultLimit"`
}

// Connection is a stored profile as returned by the API. The password
// never leaves the service.
type Connection struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	Url      string `json:"url"`
	Username string `json:"username"`
	UseXsrf  bool   `json:"useXsrf"`
	Domain   string `json:"domain"`
	Active   bool   `json:"active"`
}

// ConnectionRequest is the create/update payload for a profile.
type ConnectionRequest struct {
	Name     string `json:"name" binding:"required"`
	Url      string `json:"url" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password"`
	UseXsrf  bool   `json:"useXsrf"`
	Domain   string `json:"domain"`
	Active   bool   `json:"active"`
}

// ConnectionListResponse wraps the profile listing.
type ConnectionListResponse struct {
	Total       int          `json:"total"`
	Connections []Connection `json:"connections"`
}

// ConnectionListParams are the query parameters of GET /connections.
type ConnectionListParams struct {
	Name     string `form:"name"`
	Page     *int   `form:"page"`
	PageSize *int   `form:"pageSize"`
}
