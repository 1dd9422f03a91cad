package meta

import "os"

// DevelopmentModeEnabled controls whether development mode is enabled. It is
// set automatically based on the XCBUILD_DEVELOPMENT environment variable.
var DevelopmentModeEnabled bool

func init() {
	DevelopmentModeEnabled = os.Getenv("XCBUILD_DEVELOPMENT") == "1"
}
