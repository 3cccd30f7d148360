// Command concierge is the CLI entry point for the Life Admin Concierge:
// one-shot questions, an interactive chat loop, the renewal calendar, and
// offline task prioritization.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lifeadmin/concierge"
	"github.com/lifeadmin/concierge/dispatcher"
	"github.com/lifeadmin/concierge/logging"
	"github.com/lifeadmin/concierge/model"
	anthropicmodel "github.com/lifeadmin/concierge/model/anthropic"
	geminimodel "github.com/lifeadmin/concierge/model/gemini"
	openaimodel "github.com/lifeadmin/concierge/model/openai"
	"github.com/lifeadmin/concierge/profile"
)

var (
	flagData     string
	flagProvider string
	flagSession  string
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "concierge",
	Short: "Life Admin Concierge - a personal assistant for life administration",
	Long: `Life Admin Concierge helps with renewals, deadlines, calendar events,
email drafts and Eisenhower task prioritization, with your personal
profile injected as context.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagData, "data", "", "path to a YAML profile file (defaults to built-in sample data)")
	rootCmd.PersistentFlags().StringVar(&flagProvider, "provider", "auto", "model provider: auto, gemini, openai, anthropic or mock")
	rootCmd.PersistentFlags().StringVar(&flagSession, "session", "default", "session ID for conversation continuity")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "structured logging to stdout")
}

// loadProfile resolves the personal context store from --data, falling back
// to the built-in sample.
func loadProfile() (*profile.Store, error) {
	if flagData == "" {
		return profile.Sample(), nil
	}
	store, err := profile.Load(flagData)
	if err != nil {
		return nil, fmt.Errorf("load profile %s: %w", flagData, err)
	}
	return store, nil
}

// buildModel resolves the answer-generation model from --provider and the
// conventional API key environment variables. Without a key the CLI runs in
// demo mode on the deterministic degraded paths.
func buildModel(cmd *cobra.Command) (model.Model, error) {
	provider := flagProvider
	if provider == "auto" {
		switch {
		case os.Getenv("GEMINI_API_KEY") != "" || os.Getenv("GOOGLE_API_KEY") != "":
			provider = "gemini"
		case os.Getenv("OPENAI_API_KEY") != "":
			provider = "openai"
		case os.Getenv("ANTHROPIC_API_KEY") != "":
			provider = "anthropic"
		default:
			provider = "mock"
		}
	}

	switch provider {
	case "gemini":
		return geminimodel.NewModel(cmd.Context())
	case "openai":
		return openaimodel.NewModel(), nil
	case "anthropic":
		return anthropicmodel.NewModel(), nil
	case "mock":
		fmt.Fprintln(os.Stderr, "No API key found, running in demo mode with deterministic responses.")
		return model.NewMockModel("demo", "mock"), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", provider)
	}
}

// buildConcierge wires a Concierge from the global flags.
func buildConcierge(cmd *cobra.Command) (*concierge.Concierge, error) {
	store, err := loadProfile()
	if err != nil {
		return nil, err
	}
	mdl, err := buildModel(cmd)
	if err != nil {
		return nil, err
	}

	var logger logging.Logger = logging.NoOpLogger{}
	var hooks []dispatcher.ActionHook
	if flagVerbose {
		cl := logging.NewSlogLogger(logging.LogLevelDebug, "text", false)
		logger = cl
		hooks = append(hooks, &dispatcher.LogHook{Logger: cl})
	}

	return concierge.New(func(o *concierge.Options) {
		o.Profile = store
		o.Model = mdl
		o.Logger = logger
		o.Hooks = hooks
	}), nil
}
