// Package format names the encodings an element document can be read from or
// written to, and defines the document shape shared by parse and encode.
//
// A document is a tag with an ordered list of attributes:
//
//	tag: input
//	attributes:
//	- name: type
//	  value: text
//	- name: name
//	  value: q
//
// The attribute list is a sequence rather than a mapping so that insertion
// order survives a round trip.
//
// # Related Packages
//
//   - github.com/signadot/go-dom/parse - Parse documents into elements
//   - github.com/signadot/go-dom/encode - Encode elements as documents
package format
