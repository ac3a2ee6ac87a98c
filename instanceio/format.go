package instanceio

import "github.com/ferrotap/torpedosched/instance"

// Format renders inst back into the line-oriented text format Parse
// reads: the twelve scalar properties in instance.PropertyNames order,
// then every BF line, then every converter line. This is Parse's
// inverse, grounded on original_source/instance.py's
// Instance.__repr__, which the "echo_ins" command prints to round-trip
// an instance for testing. The rendering itself lives on
// instance.Instance.String; Format is the public entry point the CLI
// uses so callers don't need to know the type carries a Stringer.
func Format(inst *instance.Instance) string {
	return inst.String()
}
