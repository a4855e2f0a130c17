package chunk

// LightArray is a dense array of Length four bit light levels, two to a
// byte: even cells in the low nibble, odd cells in the high nibble.
type LightArray struct {
	data []byte
}

// NewLightArray returns an array with every level zero.
func NewLightArray() *LightArray {
	return &LightArray{data: make([]byte, LightBytes)}
}

// LoadLightArray reconstructs an array from its serialized bytes. The
// bytes are copied.
func LoadLightArray(data []byte) (*LightArray, error) {
	if len(data) != LightBytes {
		return nil, ErrBadArray.New("need %d bytes, have %d", LightBytes, len(data))
	}

	return &LightArray{data: append([]byte(nil), data...)}, nil
}

// Get returns the light level at index i.
func (a *LightArray) Get(i int) (uint8, error) {
	if i < 0 || i >= Length {
		return 0, ErrIndexRange.New("index %d not in [0, %d)", i, Length)
	}

	if i%2 == 0 {
		return a.data[i/2] & 0x0F, nil
	}

	return a.data[i/2] >> 4, nil
}

// Set stores the light level at index i. Levels above 15 are rejected,
// not truncated. The neighboring cell's nibble is preserved.
func (a *LightArray) Set(i int, level uint8) error {
	if i < 0 || i >= Length {
		return ErrIndexRange.New("index %d not in [0, %d)", i, Length)
	}

	if level > 0x0F {
		return ErrValueRange.New("light level %d wider than four bits", level)
	}

	if i%2 == 0 {
		a.data[i/2] = a.data[i/2]&0xF0 | level
	} else {
		a.data[i/2] = a.data[i/2]&0x0F | level<<4
	}

	return nil
}

// Len returns the number of cells.
func (a *LightArray) Len() int {
	return Length
}

// Bytes returns the packed storage in index order. It is the live backing
// slice, handed out uncopied for serialization; treat it as read only.
func (a *LightArray) Bytes() []byte {
	return a.data
}
