package models

// CompositeIDSeparator joins project and defect ids into the externally
// unique request identifier. Raw defect ids are only unique per project.
const CompositeIDSeparator = ":"

// Property is a named display value attached to a provider result. Only
// non-empty values are attached.
type Property struct {
	Name        string
	DisplayName string
	Value       string
}

// ProviderInfo is one result returned to the release-management host for a
// defect: the composite id, display attributes and a deep link into the HP
// ALM web UI.
type ProviderInfo struct {
	ID          string
	Name        string
	Title       string
	Type        string
	Description string
	URL         string
	Properties  []Property
}

// FieldValue is one selectable option for a provider input field.
type FieldValue struct {
	ID          string
	Name        string
	Description string
}

// FieldInfo holds the selectable options for a named provider input field.
type FieldInfo struct {
	Name   string
	Values []FieldValue
}

// ProviderStatus reports liveness of the provider and of the HP ALM session.
type ProviderStatus struct {
	Connection    string
	Authenticated bool
	Error         error
}
