// Package yardstick fetches news articles, extracts their title and body
// text, and rewrites the measurements they contain into whimsical
// comparisons using a hosted language model.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, openai/, gemini/).
package yardstick
