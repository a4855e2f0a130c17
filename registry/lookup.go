package registry

// Lookup assigns dense global ids to named blocks in registration order.
type Lookup struct {
	bits  uint
	ids   map[string]uint32
	names []string
}

// NewLookup returns an empty Lookup whose direct fields are bits wide.
func NewLookup(bits uint) *Lookup {
	return &Lookup{
		bits: bits,
		ids:  map[string]uint32{},
	}
}

// Add registers a name and returns its global id. Registering a name a
// second time returns the id it already has.
func (r *Lookup) Add(name string) uint32 {
	if id, ok := r.ids[name]; ok {
		return id
	}

	id := uint32(len(r.names))
	r.ids[name] = id
	r.names = append(r.names, name)

	return id
}

// Len returns the number of registered names.
func (r *Lookup) Len() int {
	return len(r.names)
}

func (r *Lookup) EncodeBlock(name string) (uint32, error) {
	id, ok := r.ids[name]
	if !ok {
		return 0, ErrUnknownBlock.New("%q is not registered", name)
	}

	return id, nil
}

func (r *Lookup) DecodeBlock(id uint32) (string, error) {
	if id >= uint32(len(r.names)) {
		return "", ErrUnknownID.New("no block has global id %d", id)
	}

	return r.names[id], nil
}

func (r *Lookup) MaxBits() uint {
	return r.bits
}
