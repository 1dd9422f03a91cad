// Package must wraps operations that can fail but whose failure, in the
// contexts where they're called (cleanup paths, best-effort teardown),
// doesn't warrant propagating an error: the operation is attempted and any
// failure is logged as a warning instead.
package must

import (
	"io"
	"os"

	"github.com/xcbuild-go/xcbuild/pkg/logging"
)

// Close closes c, logging a warning if the close fails.
func Close(c io.Closer, logger *logging.Logger) {
	if err := c.Close(); err != nil {
		logger.Warnf("unable to close: %s", err.Error())
	}
}

// OSRemove removes the file or directory at name, logging a warning if the
// removal fails.
func OSRemove(name string, logger *logging.Logger) {
	if err := os.Remove(name); err != nil {
		logger.Warnf("unable to remove '%s': %s", name, err.Error())
	}
}
