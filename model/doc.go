// Package model abstracts the answer-generation capability behind a single
// synchronous Generate call. Given instructions, conversation history and a
// set of callable actions, a Model produces either a final text answer or one
// or more structured action requests; the dispatcher treats the call as one
// suspension point and no partial state is ever visible to the session.
// Provider adapters live in the subpackages openai, anthropic and gemini;
// MockModel keeps tests deterministic.
package model
