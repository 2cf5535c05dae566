//go:build tools

package tools

// Keeps code generation tools in go.mod.
import (
	_ "github.com/dmarkham/enumer"
)
