package book

// Constants fixed by spec.md §6 for compatibility with the existing
// behaviour; none of these are configurable, and there is no
// environment configuration anywhere in this module.
const (
	// MemoryPoolBlockSize mirrors pool.BlockSize; kept here too so
	// callers of this package don't need to import package pool just to
	// read the constant spec.md names.
	MemoryPoolBlockSize = 1024

	MaxOrderQuantity = 1_000_000
	MinPrice         = 0.01
	MaxPrice         = 1_000_000.0
)
