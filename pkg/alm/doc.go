// Package alm implements the HP ALM (Quality Center) REST client: the
// cookie-based authentication handshake, the textual defect query language
// and the parsers for the two response envelopes.
//
// # Authentication Handshake
//
//	┌──────────┐    POST /qcbin/authentication-point/authenticate    ┌─────────┐
//	│  Client  │ ──────────────── Basic auth ──────────────────────► │ HP ALM  │
//	│          │ ◄─────── Set-Cookie: LWSSO_COOKIE_KEY ───────────── │ server  │
//	│          │                                                     │         │
//	│          │    POST /qcbin/rest/site-session (XSRF mode)        │         │
//	│          │ ──────────── Cookie: LWSSO_COOKIE_KEY ────────────► │         │
//	│          │ ◄──── Set-Cookie: QCSession, XSRF-TOKEN ─────────── │         │
//	└──────────┘                                                     └─────────┘
//
// Login returns an immutable Session value holding the captured cookies.
// Every data call takes the session explicitly; the client itself carries no
// authentication state, so sessions can be established per call (the host
// platform serializes access) and inspected in tests.
//
// The site-session exchange is only performed when the client is created
// with XSRF enabled, which HP ALM requires from version 12.0 onwards.
// Subsequent requests then send the QCSession cookie and an X-XSRF-TOKEN
// header holding the token cookie's value.
//
// # Query Language
//
// Defect searches use a bespoke filter expression built by DefectQuery:
//
//	{name[*login*]; status[New or Open]}
//
// The title clause is present only when a title filter is given, the status
// clause only when at least one status is given, and the surrounding braces
// are always emitted. The expression travels form-encoded in the query
// parameter; a positive limit adds a separate page-size parameter.
//
// # Response Shapes
//
// The projects listing nests entries under Projects -> Project[]:
//
//	{"Projects": {"Project": [{"Name": "Demo"}, ...]}}
//
// The defect endpoints answer with a field-array shape where every attribute
// is a {Name, values:[{value}]} tuple:
//
//	{"entities": [
//	    {"Fields": [{"Name": "status", "values": [{"value": "Open"}]}, ...],
//	     "Type": "defect"},
//	]}
//
// The first value of each known field wins; a missing value key yields the
// empty string; unknown field names are skipped. The record-level Type key
// overwrites the defect type after field mapping. A single defect lookup
// returns one such record without the entities wrapper.
//
// Malformed response bodies surface as typed parse errors rather than empty
// results, so callers can tell "no defects" from "unreadable reply".
package alm
