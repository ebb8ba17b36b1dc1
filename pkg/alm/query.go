package alm

import (
	"fmt"
	"net/url"
	"strings"
)

// DefectQuery describes a defect search: optional status filters, an
// optional title (name) substring and a result limit. A zero Limit means the
// server default page size.
type DefectQuery struct {
	Statuses []string
	Title    string
	Limit    int
}

// Filter renders the HP ALM textual filter expression, e.g.
// {name[*login*]; status[New or Open]}. The braces are always emitted, so a
// query without filters renders as {}.
func (q DefectQuery) Filter() string {
	var b strings.Builder
	b.WriteString("{")
	if q.Title != "" {
		fmt.Fprintf(&b, "name[*%s*]", q.Title)
	}
	if len(q.Statuses) > 0 {
		if q.Title != "" {
			b.WriteString("; ")
		}
		b.WriteString("status[")
		b.WriteString(strings.Join(q.Statuses, " or "))
		b.WriteString("]")
	}
	b.WriteString("}")
	return b.String()
}

// Encode returns the form-encoded (UTF-8) filter expression for use as the
// query parameter value.
func (q DefectQuery) Encode() string {
	return url.QueryEscape(q.Filter())
}
