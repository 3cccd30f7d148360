package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <query>...",
	Short: "Ask the concierge a single question",
	Example: `  concierge ask "What renewals do I have coming up?"
  concierge ask --session trip "Draft an email to my insurance provider"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := buildConcierge(cmd)
		if err != nil {
			return err
		}

		reply, err := c.Ask(cmd.Context(), flagSession, strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), reply)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
