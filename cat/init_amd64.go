//go:build amd64 && !purego

package cat

import (
	_ "github.com/cwbudde/algo-tensor/cat/internal/arch/amd64/avx2" // register AVX2 kernel
	_ "github.com/cwbudde/algo-tensor/cat/internal/arch/amd64/sse2" // register SSE2 kernel
	_ "github.com/cwbudde/algo-tensor/cat/internal/arch/generic"    // register generic kernel
)
