package gpu

import (
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/gogpu/naga"
)

// compileCache memoizes compiled SPIR-V keyed by FNV-1a hash of the WGSL
// source. naga compilation is expensive relative to everything else on the
// init path, and callers recompile the same source across renderers.
var compileCache struct {
	mu      sync.Mutex
	entries map[uint64][]uint32
}

// CompileShaderToSPIRV compiles WGSL source to a SPIR-V uint32 slice.
// The hal backends accept WGSL directly; this path exists for shader
// validation and for backends that want pre-compiled SPIR-V.
// Results are memoized per source.
func CompileShaderToSPIRV(wgslSource string) ([]uint32, error) {
	h := fnv.New64a()
	_, _ = h.Write([]byte(wgslSource)) // fnv.Write never returns an error
	key := h.Sum64()

	compileCache.mu.Lock()
	cached, ok := compileCache.entries[key]
	compileCache.mu.Unlock()
	if ok {
		return cached, nil
	}

	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("failed to compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	compileCache.mu.Lock()
	if compileCache.entries == nil {
		compileCache.entries = make(map[uint64][]uint32)
	}
	compileCache.entries[key] = spirvCode
	compileCache.mu.Unlock()

	return spirvCode, nil
}
