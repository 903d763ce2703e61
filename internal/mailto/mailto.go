// Package mailto assembles contact links at call time so the address never
// appears verbatim in markup or templates.
package mailto

import (
	"net/url"
	"strings"
)

// Address holds the parts of a contact address. The user and domain are kept
// split until a link is requested.
type Address struct {
	User   string
	Domain string
}

// String joins the parts into the full address.
func (a Address) String() string {
	return a.User + "@" + a.Domain
}

// Link builds a mailto URL with the given subject line.
func Link(a Address, subject string) string {
	var b strings.Builder
	b.WriteString("mailto:")
	b.WriteString(a.String())
	if subject != "" {
		b.WriteString("?subject=")
		// Mail clients expect %20 rather than + for spaces.
		b.WriteString(strings.ReplaceAll(url.QueryEscape(subject), "+", "%20"))
	}
	return b.String()
}
