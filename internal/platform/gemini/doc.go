// Package gemini implements the generation.Generator interface using
// Google's Gemini API. The generator walks an ordered preference list
// of model names until one yields a usable JSON array of cards; the
// response is validated leniently, dropping malformed entries rather
// than failing the batch, and the caller's difficulty always overrides
// whatever the model produced.
package gemini
