package buffers

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// DeviceError is a failed device-side operation (buffer upload, draw call).
// It is surfaced to the caller, which decides whether to retry the frame,
// skip it, or shut down.
type DeviceError struct {
	Op   string
	Code uint32
}

func (e DeviceError) Error() string {
	return fmt.Sprintf("device error during %s. OpenGl Error=%d", e.Op, e.Code)
}

// CheckDeviceErr drains the GL error state and reports the first error
// recorded since the last check, tagged with op.
func CheckDeviceErr(op string) error {

	code := gl.GetError()
	if code == gl.NO_ERROR {
		return nil
	}

	// Drain any further errors so they aren't attributed to the next op.
	for gl.GetError() != gl.NO_ERROR {
	}

	return DeviceError{Op: op, Code: code}
}
