package erroring

import (
	"fmt"
)

// CallAndRecover runs f and turns a panic carrying an E into a returned
// error. Any other panic value is reported as an unexpected error and its
// stack is written to TraceOutput.
func CallAndRecover[E error, T any](f func() T) (result T, retErr error) {
	defer func() {
		var err = recover()
		switch err := err.(type) {
		case nil:
			return
		case E:
			retErr = err
		default:
			retErr = fmt.Errorf("unexpected error of type %T: %v", err, err)
			PrintTrace(TraceOutput)
		}
	}()
	result = f()
	return
}
