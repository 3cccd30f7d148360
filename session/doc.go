// Package session provides the in-memory SessionStore implementation used by
// the dispatcher. Sessions live for the process lifetime only; there is no
// persistence layer by design.
package session
