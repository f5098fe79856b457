// Package util provides small helpers shared across lintsync packages.
package util

// StrP returns a pointer to the provided string value.
// Optional fields such as a lint's deprecation reason are string pointers.
func StrP(s string) *string {
	return &s
}
