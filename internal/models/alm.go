package models

import "time"

// EntityRecord is the identity shared by every HP ALM entity. Project and
// Defect embed it instead of inheriting from a base class.
type EntityRecord struct {
	ID          string
	Name        string
	Description string
	Created     *time.Time
}

// Project is an HP ALM project inside a domain. The name is the operative
// identifier for defect queries; the REST projects listing carries no id.
type Project struct {
	EntityRecord
}

// Defect is an HP ALM defect. All attributes are optional strings populated
// from the field-array response shape; absent fields stay empty.
type Defect struct {
	EntityRecord

	Status          string
	Owner           string
	Project         string
	Priority        string
	Severity        string
	Type            string
	Creator         string
	DateCreated     string
	LastUpdated     string
	Assignee        string
	DueDate         string
	EstimatedEffort string
	ActualEffort    string
	Subject         string
	TargetRelease   string
}
