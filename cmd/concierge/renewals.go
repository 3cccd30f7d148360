package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var renewalsCmd = &cobra.Command{
	Use:   "renewals",
	Short: "Print the renewal calendar with current statuses",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadProfile()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), store.RenewalReport(time.Now()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renewalsCmd)
}
