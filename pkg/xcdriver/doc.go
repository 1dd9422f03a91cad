// Package xcdriver implements the driver that turns an xcodebuild-style
// command-line invocation into orchestrated work: resolving a target's
// build phases from a decoded project and executing them against an
// injected filesystem.
package xcdriver
