package notifyctl

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"notifyd/pkg/types"
)

// Config carries the CLI-wide settings resolved from flags and environment.
type Config struct {
	ServerURL string
	Timeout   time.Duration
}

func defaultConfig() *Config {
	server := "http://localhost:8080"
	if v := os.Getenv("NOTIFYD_SERVER"); v != "" {
		server = v
	}
	return &Config{ServerURL: server, Timeout: 10 * time.Second}
}

// Execute parses args and runs the matching command.
func Execute(args []string) error {
	root := buildRootCmdWith(defaultConfig())
	root.SetArgs(args)
	return root.Execute()
}

// buildRootCmdWith constructs the Cobra command tree wired to the fn* actions.
func buildRootCmdWith(cfg *Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "notifyctl",
		Short:         "Operate a running notifyd daemon",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags -> Config
	root.PersistentFlags().String("server", cfg.ServerURL, "Base URL of the notifyd daemon (defaults NOTIFYD_SERVER or http://localhost:8080)")
	root.PersistentFlags().Duration("timeout", cfg.Timeout, "HTTP request timeout")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if f := cmd.InheritedFlags().Lookup("server"); f != nil {
			if v := f.Value.String(); v != "" {
				cfg.ServerURL = v
			}
		}
		if f := cmd.InheritedFlags().Lookup("timeout"); f != nil {
			if d, err := time.ParseDuration(f.Value.String()); err == nil && d > 0 {
				cfg.Timeout = d
			}
		}
	}

	publishCmd := &cobra.Command{
		Use:     "publish <name> [body-json]",
		Short:   "Broadcast a notification by name",
		Example: "  notifyctl publish ORDER_PLACED '{\"id\":42}'\n  notifyctl publish ORDER_PLACED --async",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := types.PublishRequest{Name: args[0]}
			if len(args) == 2 {
				var body any
				if err := json.Unmarshal([]byte(args[1]), &body); err != nil {
					return fmt.Errorf("body must be valid JSON: %w", err)
				}
				req.Body = body
			}
			req.Type, _ = cmd.Flags().GetString("type")
			req.Sender, _ = cmd.Flags().GetString("sender")
			async, _ := cmd.Flags().GetBool("async")
			return fnPublish(cfg, req, async)
		},
	}
	publishCmd.Flags().Bool("async", false, "Dispatch to asynchronous observers")
	publishCmd.Flags().String("type", "", "Optional notification type tag")
	publishCmd.Flags().String("sender", "", "Optional sender label")
	root.AddCommand(publishCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show the hub status snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return fnStatus(cfg)
		},
	}
	root.AddCommand(statusCmd)

	mediatorsCmd := &cobra.Command{
		Use:   "mediators",
		Short: "List registered mediators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return fnMediators(cfg)
		},
	}
	root.AddCommand(mediatorsCmd)

	// completion command
	completionCmd := &cobra.Command{Use: "completion", Short: "Generate the autocompletion script for the specified shell"}
	completionCmd.AddCommand(&cobra.Command{Use: "bash", Short: "Bash completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenBashCompletion(os.Stdout) }})
	completionCmd.AddCommand(&cobra.Command{Use: "zsh", Short: "Zsh completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenZshCompletion(os.Stdout) }})
	completionCmd.AddCommand(&cobra.Command{Use: "fish", Short: "Fish completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenFishCompletion(os.Stdout, true) }})
	root.AddCommand(completionCmd)

	return root
}
