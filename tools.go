//go:build tools

package decimal

import (
	_ "golang.org/x/tools/cmd/stringer"
)
