// Package core defines the shared data model of the concierge: conversation
// messages and sessions, tasks with their Eisenhower quadrants, routing
// domains and the error taxonomy. It contains no behavior beyond the Session
// container itself; stores, routing and prioritization live in their own
// packages and depend on core, never the other way around.
package core
