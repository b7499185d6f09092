package assert

import (
	"github.com/albertgoncalves/pathrs/logging"
)

// T panics through ErrLog if cond is false. Used for programming errors
// (e.g. buffer layout mismatches) that must never reach a release build.
func T(cond bool, msgf string, args ...any) {

	if cond {
		return
	}

	logging.ErrLog.Panicf(msgf, args...)
}
