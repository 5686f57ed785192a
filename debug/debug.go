package debug

import (
	"os"
	"strconv"
)

// debug holds flags read once from NESTED_DEBUG_* environment variables.
type debug struct {
	Walk   bool
	Set    bool
	Delete bool
	Format bool
	Eval   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Walk = boolEnv("NESTED_DEBUG_WALK")
	d.Set = boolEnv("NESTED_DEBUG_SET")
	d.Delete = boolEnv("NESTED_DEBUG_DELETE")
	d.Format = boolEnv("NESTED_DEBUG_FORMAT")
	d.Eval = boolEnv("NESTED_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Walk() bool {
	return d.Walk
}
func Set() bool {
	return d.Set
}
func Delete() bool {
	return d.Delete
}
func Format() bool {
	return d.Format
}
func Eval() bool {
	return d.Eval
}
