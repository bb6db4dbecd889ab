// Package domain defines the core business entities and errors for
// study-card generation: the Card value type and the Difficulty enum.
package domain
