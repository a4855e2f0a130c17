package registry

// Opaque is the registry for callers that deal in global ids themselves:
// blocks pass through untranslated. It never fails.
type Opaque struct {
	Bits uint
}

func (r Opaque) EncodeBlock(id uint32) (uint32, error) {
	return id, nil
}

func (r Opaque) DecodeBlock(id uint32) (uint32, error) {
	return id, nil
}

func (r Opaque) MaxBits() uint {
	return r.Bits
}
