package pbx

import "github.com/pkg/errors"

// ErrObjectNotFound indicates that a referenced object ID has no
// corresponding entry in the decoded project.
var ErrObjectNotFound = errors.New("pbx: object not found")

// ErrWrongObjectType indicates that an object was found but its isa field
// does not match the type being requested.
var ErrWrongObjectType = errors.New("pbx: object has unexpected isa type")

// ErrTargetNotFound indicates that no native target with the requested name
// exists in the project.
var ErrTargetNotFound = errors.New("pbx: target not found")

// ErrShellScriptNotExecuted indicates that a ShellScriptBuildPhase was
// resolved but deliberately not run: spawning the project's configured
// subprocess is outside what this toolchain drives. Build phases ahead of
// it in a target still execute normally; this is returned so a caller can
// distinguish "skipped" from "silently did nothing."
var ErrShellScriptNotExecuted = errors.New("pbx: shell script build phases are not executed")
