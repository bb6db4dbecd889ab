// Package api implements the HTTP handlers for card generation and
// export. Handlers validate input, delegate to the service layer, and
// translate results into JSON or CSV responses; generation itself never
// fails, so the only client-visible errors are input-validation ones.
package api
