package encode

import (
	"github.com/fatih/color"
)

type ColorAttr int

const (
	TagColor ColorAttr = iota
	NameColor
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			TagColor:   color.RGB(74, 92, 138).SprintfFunc(),
			NameColor:  color.RGB(196, 96, 16).SprintfFunc(),
			ValueColor: color.RGB(8, 196, 16).SprintfFunc(),
			SepColor:   color.RGB(255, 0, 196).SprintfFunc(),
		},
	}
}

func (c *Colors) Color(attr ColorAttr, v string) string {
	f, ok := c.Map[attr]
	if !ok {
		return c.Default("%s", v)
	}
	return f("%s", v)
}

func colorDefault(f string, args ...any) string {
	return color.New(color.Reset).Sprintf(f, args...)
}

func colorNone(_ ColorAttr, v string) string {
	return v
}
