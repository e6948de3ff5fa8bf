package graphics

import "fmt"

// Handle is meant for example programs that have no better way to deal with
// a failed setup step. It panics with the formatted description followed by
// err. A nil err is ignored.
func Handle(err error, desc string, args ...any) {
	if err == nil {
		return
	}

	panic(fmt.Errorf("%s: %w", fmt.Sprintf(desc, args...), err))
}
