//go:build arm64 && !purego

package cat

import (
	_ "github.com/cwbudde/algo-tensor/cat/internal/arch/arm64/neon" // register NEON kernel
	_ "github.com/cwbudde/algo-tensor/cat/internal/arch/generic"    // register generic kernel
)
