// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package framework is the MoneyWorks AI Accountant entry point. It prints the
// startup banner and hands back the framework value, which carries no state yet.
package framework

import (
	"io"

	"github.com/moneyworks/ai-accountant/internal/banner"
)

// Framework is the value exported by the framework. It has no fields.
type Framework struct{}

// Default is the framework's default export.
var Default = Framework{}

// Start prints the startup banner to w and returns Default.
func Start(w io.Writer) (Framework, error) {
	if err := banner.Print(w); err != nil {
		return Framework{}, err
	}

	// TODO: start the MCP server once its tool surface is defined.
	return Default, nil
}
