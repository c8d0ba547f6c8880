// Package parse decodes element documents (see package format) into
// *dom.Element values.
//
//	el, err := parse.Parse(r, parse.ParseFormat(format.TOMLFormat))
//	el, err := parse.ParseFile("input.yaml")
//
// YAML and JSON are decoded with github.com/goccy/go-yaml, TOML with
// github.com/BurntSushi/toml. Unknown keys are rejected. By default a
// repeated attribute name overrides the earlier value; ParseStrict turns
// that into an error.
package parse
