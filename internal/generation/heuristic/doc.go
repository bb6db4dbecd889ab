// Package heuristic implements deterministic, rule-based study-card
// construction from raw text. It is the guaranteed fallback path when
// no generative backend is available: text is segmented into clause-like
// content units, a salient key term is extracted from each unit, and a
// difficulty-tiered question template is filled in with the term. The
// builder always produces between 1 and 10 cards.
package heuristic
