// Package colors implements a compact 8-bit RGBA color type with pure
// functions for parsing, formatting, mixing, and comparing colors.
//
// The Color type is compatible with Go's native [color.Color] interface, and
// the package Model converts any [color.Color] back into a Color.
package colors
