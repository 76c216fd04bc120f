package encode

import (
	"strings"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	CommentColor ColorAttr = iota
	TagColor
	AttrNameColor
	ValueColor
	LinkColor
	TextColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefaultf,
		Map: map[ColorAttr]func(string, ...any) string{
			CommentColor:  color.BlueString,
			TagColor:      color.RGB(74, 92, 138).SprintfFunc(),
			AttrNameColor: color.RGB(196, 96, 16).SprintfFunc(),
			ValueColor:    color.RGB(8, 196, 16).SprintfFunc(),
			LinkColor:     color.RGB(168, 0, 196).SprintfFunc(),
			TextColor:     color.RGB(198, 198, 46).SprintfFunc(),
			SepColor:      color.RGB(255, 0, 196).SprintfFunc(),
		},
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(_ ColorAttr, v string) string { return v }

func colorDefaultf(v string, _ ...any) string { return v }

func (c *Colors) Color(a ColorAttr, s string) string {
	return c.Get(a)(s)
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}
