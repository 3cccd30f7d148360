package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive conversation",
	Long: `Starts a read-eval-print loop against the concierge. The session keeps
the full conversation history.

Special inputs: "history" prints the transcript, "clear" wipes it,
"exit" or "quit" leaves the loop.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := buildConcierge(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Life Admin Concierge. Type 'exit' to leave.")

		scanner := bufio.NewScanner(cmd.InOrStdin())
		for {
			fmt.Fprint(out, "> ")
			if !scanner.Scan() {
				return scanner.Err()
			}
			input := strings.TrimSpace(scanner.Text())
			switch input {
			case "":
				continue
			case "exit", "quit":
				return nil
			case "history":
				history, err := c.History(flagSession)
				if err != nil {
					fmt.Fprintf(out, "(no history: %v)\n", err)
					continue
				}
				for _, msg := range history {
					fmt.Fprintf(out, "[%s] %s\n", msg.Role, msg.Content)
				}
				continue
			case "clear":
				if err := c.ClearSession(flagSession); err != nil {
					fmt.Fprintf(out, "(nothing to clear: %v)\n", err)
					continue
				}
				fmt.Fprintln(out, "Session cleared.")
				continue
			}

			reply, err := c.Ask(cmd.Context(), flagSession, input)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, reply)
		}
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
