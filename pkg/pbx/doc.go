// Package pbx provides a minimal project-object model for Xcode's .pbxproj
// property-list format: a decoded Project exposes typed accessors for the
// handful of build-phase object types (PBXCopyFilesBuildPhase,
// PBXSourcesBuildPhase, PBXResourcesBuildPhase, PBXShellScriptBuildPhase)
// that a target references, without attempting to model the full PBX object
// graph that Xcode itself understands.
//
// Parsing never touches the filesystem: a Project holds file references as
// unresolved literal paths or doublestar glob patterns, and those are only
// matched against an actual directory tree when a build phase executes.
package pbx
