// Package templates holds the embedded default email templates: the alert
// body template and the base layout it renders into.
package templates

import "embed"

// FS contains the default templates. Pass it to herald.NewRenderer, or use a
// different fs.FS to override the files entirely.
//
//go:embed alert.html layouts/base.html
var FS embed.FS
