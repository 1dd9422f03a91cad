// Package acdriver implements a thin driver over Xcode asset catalog
// (.xcassets) bundles: it walks a bundle's directory tree, groups entries by
// the asset set they belong to, and produces a manifest describing what it
// found.
package acdriver
