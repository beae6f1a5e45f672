// Package version exposes build metadata of the pace-planner binary.
//
// Version, Commit and BuildTime are injected with -ldflags; when they are
// left at their defaults the module version recorded by the Go toolchain is
// used instead.
package version
