package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ferrotap/torpedosched/instanceio"
)

var echoInsCmd = &cobra.Command{
	Use:   "echo-ins <instance-file>",
	Short: "Parse and re-emit an instance, for round-trip testing",
	Args:  cobra.ExactArgs(1),
	RunE:  runEchoIns,
}

func runEchoIns(cmd *cobra.Command, args []string) error {
	inst, err := readInstance(args[0])
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), instanceio.Format(inst))
	return nil
}
