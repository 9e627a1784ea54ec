// Package utils provides small helpers shared across secnix packages.
package utils
