// Package xcproj round-trips the three on-disk file formats an IDE's
// project model is built from: the ASCII property-list project file
// (project.pbxproj), the XML workspace manifest (contents.xcworkspacedata),
// and layered build-configuration text files (*.xcconfig). Each of
// Project, Workspace, and Configuration parses a byte string into an
// in-memory, mutable graph and renders it back out in the exact form the
// IDE itself produces.
//
// The library performs no I/O beyond reading the source file at
// construction and writing the rendered result back out; everything
// else, locating projects, driving a build, validating settings, is a
// caller's concern.
package xcproj
