package registry

import "github.com/zeebo/errs"

var (
	// ErrUnknownBlock is returned when a block has no global id.
	ErrUnknownBlock = errs.Class("unknown block")

	// ErrUnknownID is returned when a global id has no block.
	ErrUnknownID = errs.Class("unknown global id")
)
