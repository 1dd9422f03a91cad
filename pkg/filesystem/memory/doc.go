// Package memory implements the filesystem contract entirely in process
// memory. It exists for testing code written against filesystem.Filesystem
// without touching the host disk, and for short-lived scratch trees that a
// driver wants to discard by simply dropping the value.
//
// The backend has no notion of permission bits or symbolic links: every
// existing entry is readable, writable, and executable, and the symbolic link
// primitives always fail. It also rejects any path that is
// not absolute, since there is no process working directory to interpret a
// relative path against.
package memory
