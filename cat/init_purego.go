//go:build purego && (amd64 || arm64)

package cat

import (
	_ "github.com/cwbudde/algo-tensor/cat/internal/arch/generic" // register generic kernel
)
