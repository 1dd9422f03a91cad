package meta

import "os"

// DebugEnabled controls whether debugging output is enabled. It is set
// automatically based on the XCBUILD_DEBUG environment variable.
var DebugEnabled bool

func init() {
	DebugEnabled = os.Getenv("XCBUILD_DEBUG") == "1"
}
