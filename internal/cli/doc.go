// Package cli builds the remapc command tree. It resolves settings from
// defaults, an optional settings file and explicit flags, then hands a
// validated app.Config to the application.
package cli
