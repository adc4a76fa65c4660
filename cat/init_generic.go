//go:build !amd64 && !arm64

package cat

// Unsupported architectures get only the generic kernel.

import (
	_ "github.com/cwbudde/algo-tensor/cat/internal/arch/generic" // register generic kernel
)
