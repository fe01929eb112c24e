// Package vkstr prepares Go strings for vulkan-go, which hands the bytes of
// a string straight to the driver.
package vkstr

import "strings"

// Safe returns name NUL terminated.
func Safe(name string) string {
	if strings.HasSuffix(name, "\x00") {
		return name
	}
	return name + "\x00"
}

// SafeStrings NUL terminates every name.
func SafeStrings(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, Safe(name))
	}
	return out
}
