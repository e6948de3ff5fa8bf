package gpu

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// glsizei converts a size into the int32 the driver expects, failing for
// values GL can not represent.
func glsizei[T constraints.Integer](value T) (int32, error) {
	if value < 0 || uint64(value) > math.MaxInt32 {
		return 0, fmt.Errorf("size %d out of range", value)
	}

	return int32(value), nil
}
