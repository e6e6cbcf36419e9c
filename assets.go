// Package portal provides the embedded templates and static assets of the portal.
package portal

import "embed"

// In dev mode (DEV=true) templates and static files are read from disk instead,
// so edits show up without a rebuild.

//go:embed all:frontend/static
var StaticFS embed.FS

//go:embed all:frontend/templates
var TemplateFS embed.FS
