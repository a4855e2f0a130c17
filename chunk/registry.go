package chunk

// Registry translates between the global ids a BlockArray packs and the
// block descriptors callers work with. The descriptor type B is opaque to
// the array: only ids are compared or stored.
type Registry[B any] interface {
	// EncodeBlock returns the global id for a block. Encoding must be
	// deterministic: the same block always maps to the same id and
	// distinct blocks map to distinct ids.
	EncodeBlock(block B) (uint32, error)

	// DecodeBlock returns the block for a global id.
	DecodeBlock(id uint32) (B, error)

	// MaxBits returns the field width used in direct mode. It must be
	// constant and wide enough for every valid global id.
	MaxBits() uint
}

// registryBits validates a registry and returns its direct field width.
func registryBits[B any](reg Registry[B]) (uint, error) {
	if reg == nil {
		return 0, ErrBadRegistry.New("registry is nil")
	}

	bits := reg.MaxBits()
	if bits < minBits || bits > maxIDBits {
		return 0, ErrBadRegistry.New("max bits %d not in [%d, %d]", bits, minBits, maxIDBits)
	}

	return bits, nil
}
