// Package dispatcher implements the concierge's turn loop: it owns the
// session lifecycle for a query, routes the query to a domain, assembles the
// model request with the injected personal context, executes any requested
// actions, and folds everything into a single user-visible reply.
//
// Answer generation is treated as an optional capability: when the model is
// unreachable the dispatcher degrades to deterministic domain-specific
// responses rather than surfacing an error to the caller.
package dispatcher
