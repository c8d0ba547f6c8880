// Package libdiff compares attribute collections.
//
// DiffAttributes aligns the attribute names of two collections with a
// sequence diff (github.com/sergi/go-diff), so a change in order is reported
// as a move rather than as a removal and an addition. Attributes present in
// both with different values carry a character diff of the values.
package libdiff
