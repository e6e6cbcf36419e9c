//go:build tools
// +build tools

// Package tools documents development tool dependencies.
// These tools are run through `go run` or installed with `go install` and are
// not tracked in go.mod.
package tools

// Development tools:
//
// Air - live reload while editing templates and handlers
//   Install: go install github.com/air-verse/air@v1.63.0
//   Run:     APP_ENV=development air -- ./cmd/careerhub
//
// mockgen - regenerates the gomock doubles in internal/mocks
//   Run: go generate ./internal/mocks
