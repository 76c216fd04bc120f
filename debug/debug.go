package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Passes bool
	Merge  bool
	Links  bool
	IDs    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Passes = boolEnv("SVGCLEAN_DEBUG_PASSES")
	d.Merge = boolEnv("SVGCLEAN_DEBUG_MERGE")
	d.Links = boolEnv("SVGCLEAN_DEBUG_LINKS")
	d.IDs = boolEnv("SVGCLEAN_DEBUG_IDS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Passes() bool {
	return d.Passes
}
func Merge() bool {
	return d.Merge
}
func Links() bool {
	return d.Links
}
func IDs() bool {
	return d.IDs
}
