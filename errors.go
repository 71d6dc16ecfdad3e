package zset

import "errors"

var (
	// ErrNegativeOffset is returned by RangeByScore when offset < 0.
	ErrNegativeOffset = errors.New("zset: offset must be non-negative")

	// ErrUnsupportedSum is a convenience sentinel a ScoreCapability may
	// return from Sum when it does not define addition for the given
	// operands. It is not returned by this package directly - it
	// propagates through IncrementBy from the caller-supplied capability.
	ErrUnsupportedSum = errors.New("zset: score capability does not support sum for these operands")
)
