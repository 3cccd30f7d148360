// Package router classifies incoming queries into handling domains using
// fixed keyword vocabularies. Classification is deterministic and stateless:
// the first domain in priority order with any keyword occurring as a
// substring of the case-folded query wins, and a query matching nothing is
// general conversation.
package router

import (
	"strings"

	"github.com/lifeadmin/concierge/core"
)

// route binds a domain to its keyword vocabulary and a short description
// used in capability listings.
type route struct {
	domain      core.RouteDomain
	description string
	keywords    []string
}

// Router classifies queries into RouteDomains. Safe for concurrent use; it
// holds no mutable state after construction.
type Router struct {
	routes []route
}

// New constructs a Router with the fixed domain priority
// ADMIN > PRODUCTIVITY > PROFILE. The vocabularies are disjoint: words the
// domains historically shared ("schedule", "email", "renew") belong to the
// highest-priority domain that claims them.
func New() *Router {
	return &Router{routes: []route{
		{
			domain:      core.RouteAdmin,
			description: "Handles calendar events, email drafts, and renewal reminders",
			keywords: []string{
				"calendar", "event", "schedule", "remind", "reminder",
				"appointment", "meeting", "book", "email", "draft",
				"mail", "send", "renew", "renewal", "deadline",
			},
		},
		{
			domain:      core.RouteProductivity,
			description: "Handles task prioritization and daily planning",
			keywords: []string{
				"task", "priority", "prioritize", "eisenhower", "matrix",
				"energy", "todo", "to-do", "time block", "productive",
				"focus", "daily", "routine",
			},
		},
		{
			domain:      core.RouteProfile,
			description: "Retrieves personal information from the profile",
			keywords: []string{
				"license", "passport", "insurance", "policy", "ssn",
				"address", "phone", "contact", "document", "profile",
				"what's my", "what is my",
			},
		},
	}}
}

// Classify maps a query to its handling domain. It never fails; empty or
// unmatched queries return RouteGeneral.
func (r *Router) Classify(query string) core.RouteDomain {
	q := strings.ToLower(query)
	if q == "" {
		return core.RouteGeneral
	}
	for _, rt := range r.routes {
		for _, kw := range rt.keywords {
			if strings.Contains(q, kw) {
				return rt.domain
			}
		}
	}
	return core.RouteGeneral
}

// Describe returns the description for a domain, or a generic fallback.
func (r *Router) Describe(domain core.RouteDomain) string {
	for _, rt := range r.routes {
		if rt.domain == domain {
			return rt.description
		}
	}
	return "General assistance"
}

// Domains lists the non-general domains in priority order.
func (r *Router) Domains() []core.RouteDomain {
	out := make([]core.RouteDomain, len(r.routes))
	for i, rt := range r.routes {
		out[i] = rt.domain
	}
	return out
}
