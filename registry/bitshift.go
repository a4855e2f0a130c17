package registry

import "github.com/LavaPower/quarry/field"

// Block is a pre flattening block: a base block id plus four bits of
// metadata.
type Block struct {
	ID   uint32
	Meta uint8
}

// BitShift packs blocks arithmetically: the global id is ID<<4 | Meta.
// Bits is the total width, so base ids get Bits-4 of it.
type BitShift struct {
	Bits uint
}

func (r BitShift) EncodeBlock(b Block) (uint32, error) {
	if b.Meta > 0x0F {
		return 0, ErrUnknownBlock.New("metadata %d wider than four bits", b.Meta)
	}

	id := uint64(b.ID)<<4 | uint64(b.Meta)
	if id > field.Mask(r.Bits) {
		return 0, ErrUnknownBlock.New("block id %d packs wider than %d bits", b.ID, r.Bits)
	}

	return uint32(id), nil
}

func (r BitShift) DecodeBlock(id uint32) (Block, error) {
	if uint64(id) > field.Mask(r.Bits) {
		return Block{}, ErrUnknownID.New("global id %d wider than %d bits", id, r.Bits)
	}

	return Block{ID: id >> 4, Meta: uint8(id & 0x0F)}, nil
}

func (r BitShift) MaxBits() uint {
	return r.Bits
}
