package main

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"
	"github.com/signadot/go-dom/format"
)

func TestParseAssign(t *testing.T) {
	tests := []struct {
		in          string
		name, value string
		err         bool
	}{
		{"type=text", "type", "text", false},
		{"data-x=", "data-x", "", false},
		{"expr=a=b", "expr", "a=b", false},
		{"novalue", "", "", true},
		{"=v", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			name, value, err := parseAssign(tt.in)
			if tt.err {
				if !errors.Is(err, cli.ErrUsage) {
					t.Fatalf("expected usage error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if name != tt.name || value != tt.value {
				t.Errorf("got %q=%q, want %q=%q", name, value, tt.name, tt.value)
			}
		})
	}
}

func TestSplitNames(t *testing.T) {
	if diff := cmp.Diff([]string{"a", "b"}, splitNames(" a, ,b,")); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if got := splitNames(""); len(got) != 0 {
		t.Errorf("splitNames(\"\") = %v", got)
	}
}

func TestFormats(t *testing.T) {
	cfg := &MainConfig{}
	f, err := cfg.inFormat("x.toml")
	if err != nil || f != format.TOMLFormat {
		t.Errorf("inFormat(x.toml) = %s, %v", f, err)
	}
	if f, _ := cfg.inFormat("-"); f != format.YAMLFormat {
		t.Errorf("inFormat(-) = %s", f)
	}
	if cfg.outFormat(format.JSONFormat) != format.JSONFormat {
		t.Errorf("output should default to the input format")
	}
	m := format.MarkupFormat
	cfg.OutFormat = &m
	if cfg.outFormat(format.JSONFormat) != format.MarkupFormat {
		t.Errorf("-O should override the input format")
	}
}
