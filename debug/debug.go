package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Lock   bool
	Set    bool
	Select bool
}

var d *debug

func init() {
	d = &debug{}
	d.Lock = boolEnv("DOM_DEBUG_LOCK")
	d.Set = boolEnv("DOM_DEBUG_SET")
	d.Select = boolEnv("DOM_DEBUG_SELECT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Lock reports whether guard acquisition and release are logged.
func Lock() bool {
	return d.Lock
}

// Set reports whether attribute mutations are logged.
func Set() bool {
	return d.Set
}

// Select reports whether selector evaluations are logged.
func Select() bool {
	return d.Select
}

func enabled() bool {
	return d.Lock || d.Set || d.Select
}
