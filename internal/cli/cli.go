// Package cli defines the multilingual command line: serving the site and
// inspecting the message tree.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/guttosm/multilingual/config"
	"github.com/guttosm/multilingual/internal/app"
	"github.com/guttosm/multilingual/internal/logger"
)

// options are the flags shared by every command. Empty values keep the
// environment configuration.
type options struct {
	messagesDir string
	logLevel    string
	port        string
	namespace   string
}

// NewRootCommand builds the command tree. load supplies the base
// configuration, normally config.Load.
func NewRootCommand(load func() config.Config) *cobra.Command {
	opts := &options{}
	var cfg config.Config

	root := &cobra.Command{
		Use:   "multilingual",
		Short: "Multi-locale marketing site",
		Long: `Serves the multilingual site and inspects its message tree.

The message tree lives under MESSAGES_DIR:
  global/<locale>.json
  pages/<page>/<locale>.json
  components/<component>/<locale>.json

Running without a subcommand starts the server.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg = opts.apply(load())
			if err := cfg.Validate(); err != nil {
				return err
			}
			app.InitializeLogger(cfg.Log)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cfg)
		},
	}

	root.PersistentFlags().StringVar(&opts.messagesDir, "messages-dir", "", "message tree root (overrides MESSAGES_DIR)")
	root.PersistentFlags().StringVarP(&opts.logLevel, "log-level", "l", "", "log level: debug, info, warn, error (overrides LOG_LEVEL)")

	serveCmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"s"},
		Short:   "Start the HTTP server",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cfg)
		},
	}
	serveCmd.Flags().StringVarP(&opts.port, "port", "p", "", "listen port (overrides PORT)")

	resolveCmd := &cobra.Command{
		Use:   "resolve <locale>",
		Short: "Print the merged dictionary for a locale as JSON",
		Long: `Resolve reads the message tree exactly as a page request would and prints
the merged dictionary. Files that cannot be read or parsed are logged and
show up as empty namespaces.

Examples:
  multilingual resolve et
  multilingual resolve ru -n HomePage`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, cfg, args[0], opts.namespace)
		},
	}
	resolveCmd.Flags().StringVarP(&opts.namespace, "namespace", "n", "", "print a single namespace")

	localesCmd := &cobra.Command{
		Use:   "locales",
		Short: "List the supported locales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocales(cmd, cfg)
		},
	}

	root.AddCommand(serveCmd, resolveCmd, localesCmd)
	return root
}

// Execute runs the command line with configuration from the environment.
func Execute(ctx context.Context) error {
	return NewRootCommand(config.Load).ExecuteContext(ctx)
}

func (o *options) apply(cfg config.Config) config.Config {
	if o.messagesDir != "" {
		cfg.Site.MessagesDir = o.messagesDir
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.port != "" {
		cfg.Server.Port = o.port
	}
	return cfg
}

func runServe(ctx context.Context, cfg config.Config) error {
	router, err := app.InitializeApp(cfg)
	if err != nil {
		return err
	}
	return app.NewServer(router, cfg.Server.Port).Run(ctx)
}

func runResolve(cmd *cobra.Command, cfg config.Config, locale, namespace string) error {
	resolver, _ := app.NewResolver(cfg.Site)
	log := logger.WithContext(map[string]interface{}{
		"command":      "resolve",
		"messages_dir": cfg.Site.MessagesDir,
	})

	dict, err := resolver.WithLogger(log).Resolve(locale)
	if err != nil {
		return err
	}

	var out any = dict
	if namespace != "" {
		out = dict.Namespace(namespace)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode dictionary: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func runLocales(cmd *cobra.Command, cfg config.Config) error {
	lines := make([]string, 0, len(cfg.Site.Locales))
	for _, l := range cfg.Site.Locales {
		if l == cfg.Site.DefaultLocale {
			l += " (default)"
		}
		lines = append(lines, l)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lines, "\n"))
	return err
}
