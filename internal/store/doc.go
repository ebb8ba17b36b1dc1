// Package store implements the data access layer for the HP ALM provider.
//
// Persistence uses DuckDB through database/sql. Two repositories hang off
// the Store facade:
//
//	┌─────────────────────────────────────────────────────────┐
//	│                     Store (facade)                      │
//	├────────────────────────────┬────────────────────────────┤
//	│      ConnectionStore       │       SettingsStore        │
//	│            ▼               │             ▼              │
//	│       connections          │          settings          │
//	└────────────────────────────┴────────────────────────────┘
//
// # ConnectionStore
//
// Named HP ALM connection profiles (URL, credentials, XSRF flag, domain).
// At most one profile is active; the provider service resolves the active
// profile before every call. List and Count take functional ListOptions
// that each modify a squirrel.SelectBuilder:
//
//	conns, err := store.Connection().List(ctx,
//	    store.ByName("production"),
//	    store.WithDefaultSort(),
//	    store.WithLimit(50),
//	)
//
// # SettingsStore
//
// The host-configurable provider surface (status filter list, result
// limit). Single-row table with CHECK (id = 1) and an UPSERT Save, so there
// is always at most one logical settings record.
//
// # QueryInterceptor
//
// All database operations go through a QueryInterceptor that debug-logs
// every query, keeping SQL execution visible without touching the
// individual stores.
package store
