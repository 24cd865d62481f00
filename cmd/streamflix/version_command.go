package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Waddenn/streamflix/internal/appinfo"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			info := appinfo.Default()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", info.Product, info.Version, info.Platform)
			return nil
		},
	}
}
