//go:build tools

// Package tools pins the versions of the lint and format tooling used by make.
package tools

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/incu6us/goimports-reviser/v3"
	_ "mvdan.cc/gofumpt"
)
