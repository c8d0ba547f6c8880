// Package encode writes a *dom.Element as an element document (YAML, JSON,
// TOML) or as a markup start tag.
//
//	err := encode.Encode(el, os.Stdout, encode.EncodeFormat(format.JSONFormat))
//
// Markup output can be colored with EncodeColors; the other formats ignore
// colors.
package encode
