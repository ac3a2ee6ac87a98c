package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ferrotap/torpedosched/instance"
)

var parseCmd = &cobra.Command{
	Use:   "parse <instance-file>",
	Short: "Parse an instance and echo its normalized scalar properties",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

// runParse mirrors original_source/main.py's "parse" command: a
// json.dumps(indent=4) rendering of get_properties(), in declaration
// order rather than Go's alphabetical map-key order.
func runParse(cmd *cobra.Command, args []string) error {
	inst, err := readInstance(args[0])
	if err != nil {
		return err
	}

	props := inst.Properties()
	var b strings.Builder
	b.WriteString("{\n")
	for i, name := range instance.PropertyNames {
		sep := ","
		if i == len(instance.PropertyNames)-1 {
			sep = ""
		}
		fmt.Fprintf(&b, "    %q: %d%s\n", name, props[name], sep)
	}
	b.WriteString("}")

	fmt.Fprintln(cmd.OutOrStdout(), b.String())
	return nil
}
