// Package ui provides semantic text formatting for CLI output.
//
// Formatters carry both a color and a plain-text fallback so output stays
// readable when colors are disabled (NO_COLOR, dumb terminals, pipes).
package ui
