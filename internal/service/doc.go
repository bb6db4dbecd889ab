// Package service contains the application's use-case layer. The card
// generation facade ties the optional generative backend and the
// deterministic heuristic builder into a single entry point with a
// simple guarantee: callers always get between 1 and 10 cards, and
// generation-path failures never surface as errors.
package service
