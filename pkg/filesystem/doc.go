// Package filesystem defines the capability contract through which every
// other subsystem of the toolchain performs I/O: project parsing, build
// setting resolution, asset and resource compilation, and archive writing
// never touch the host operating system (or a synthesized test tree)
// directly. They hold a Filesystem value and call only the methods defined
// here.
//
// Two implementations are provided: physical
// (github.com/xcbuild-go/xcbuild/pkg/filesystem/physical), which is backed by
// the host operating system, and memory
// (github.com/xcbuild-go/xcbuild/pkg/filesystem/memory), which is backed by
// an in-process tree used by tests and by tooling that synthesizes its
// inputs. A driver constructs exactly one of these and threads it by
// reference through every subsystem that needs to read or write.
//
// Probes never fail: a missing or inaccessible path simply yields false (or
// an absent result). Mutating operations return an error on failure, but that
// error carries no structured detail that callers are expected to inspect -
// by design, every caller in this codebase makes a coarse decision (retry
// some other way, skip, or abort) rather than branching on failure kind.
package filesystem
