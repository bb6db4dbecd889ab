// Package generation defines the boundary between the application core
// and content generation backends. It provides the Generator interface
// implemented by LLM-backed generators (Gemini) and the shared error
// taxonomy used to decide fallback behavior, allowing the application
// to generate study cards without coupling to a specific backend.
package generation
