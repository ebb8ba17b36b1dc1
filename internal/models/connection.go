package models

import "time"

// Connection is a stored HP ALM connection profile. Exactly one profile is
// active at a time; the provider service resolves the active profile before
// every call.
type Connection struct {
	ID        string
	Name      string
	URL       string
	Username  string
	Password  string
	UseXSRF   bool
	Domain    string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultDomain is the HP ALM tenant used when a profile does not name one.
const DefaultDomain = "DEFAULT"

// Settings is the host-configurable provider surface: the selectable defect
// status list and the find-requests result limit. ResultLimit stays a string
// here because the host platform hands it over as free text; parsing happens
// at use time with a logged fallback.
type Settings struct {
	StatusFilters string
	ResultLimit   string
	UpdatedAt     time.Time
}

// DefaultStatusFilters mirrors the out-of-the-box HP ALM defect statuses.
const DefaultStatusFilters = "Closed,Fixed,New,Open,Rejected,Reopen"

// DefaultResultLimit bounds find-requests responses when the configured
// limit is absent or unparseable.
const DefaultResultLimit = 300
