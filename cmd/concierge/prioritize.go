package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lifeadmin/concierge/core"
	"github.com/lifeadmin/concierge/eisenhower"
)

var flagEnergy string

var prioritizeCmd = &cobra.Command{
	Use:   "prioritize <task>...",
	Short: "Rank tasks with the Eisenhower matrix, offline",
	Long: `Ranks tasks without any model involvement. Each task is given as
"description:urgent:important" where urgent and important are booleans
and default to false.`,
	Example: `  concierge prioritize -e HIGH "Renew car insurance:true:true" "Sort photos" "Plan savings:false:true"`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks := make([]core.Task, 0, len(args))
		for _, arg := range args {
			task, err := parseTask(arg)
			if err != nil {
				return err
			}
			tasks = append(tasks, task)
		}

		energy, err := core.ParseEnergyLevel(flagEnergy)
		if err != nil {
			return fmt.Errorf("%w (use LOW or HIGH)", err)
		}

		plan, err := eisenhower.Prioritize(tasks, energy, time.Now())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Plan for %s energy:\n", plan.Energy)
		i := 0
		for task, slot := range plan.Schedule() {
			fmt.Fprintf(out, "%d. [%s] %s (%s)\n", i+1, plan.Ranked[i].Quadrant, task.Description, slot)
			i++
		}
		return nil
	},
}

func parseTask(arg string) (core.Task, error) {
	parts := strings.Split(arg, ":")
	task := core.Task{Description: strings.TrimSpace(parts[0])}
	if task.Description == "" {
		return core.Task{}, fmt.Errorf("task %q has no description", arg)
	}
	if len(parts) > 3 {
		return core.Task{}, fmt.Errorf("task %q: expected description:urgent:important", arg)
	}
	var err error
	if len(parts) > 1 {
		if task.Urgent, err = strconv.ParseBool(strings.TrimSpace(parts[1])); err != nil {
			return core.Task{}, fmt.Errorf("task %q: urgent must be a boolean", arg)
		}
	}
	if len(parts) > 2 {
		if task.Important, err = strconv.ParseBool(strings.TrimSpace(parts[2])); err != nil {
			return core.Task{}, fmt.Errorf("task %q: important must be a boolean", arg)
		}
	}
	return task, nil
}

func init() {
	prioritizeCmd.Flags().StringVarP(&flagEnergy, "energy", "e", "HIGH", "current energy level: LOW or HIGH")
	rootCmd.AddCommand(prioritizeCmd)
}
