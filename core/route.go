package core

// RouteDomain is the handling domain an incoming query is classified into.
// It is recomputed per query and never persisted.
type RouteDomain string

const (
	// RouteAdmin covers calendar events, email drafts and renewal handling.
	RouteAdmin RouteDomain = "admin"
	// RouteProductivity covers task prioritization and daily planning.
	RouteProductivity RouteDomain = "productivity"
	// RouteProfile covers personal information lookup.
	RouteProfile RouteDomain = "profile"
	// RouteGeneral is the fallback for everything else.
	RouteGeneral RouteDomain = "general"
)

// String returns the domain tag.
func (d RouteDomain) String() string { return string(d) }
