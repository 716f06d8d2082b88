// Command futbolpath serves and queries shortest teammate paths between
// soccer players.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/futbolpath/futbolpath/client"
	"github.com/futbolpath/futbolpath/internal/config"
)

// Build-time variables set via ldflags.
var (
	commit    = ""
	buildDate = ""
)

const defaultURL = "http://localhost:3040"

var (
	apiClient *client.Client
	flagURL   string
	flagFmt   string
)

func versionString() string {
	if commit != "" && buildDate != "" {
		return fmt.Sprintf("futbolpath version %s (commit: %s, built: %s)", config.Version, commit, buildDate)
	}

	return fmt.Sprintf("futbolpath version %s", config.Version)
}

type configFile struct {
	URL           string                   `yaml:"url"`
	Profiles      map[string]configProfile `yaml:"profiles"`
	ActiveProfile string                   `yaml:"active_profile"`
}

type configProfile struct {
	URL string `yaml:"url"`
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "futbolpath",
		Short:   "Shortest teammate paths between soccer players",
		Version: versionString(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := resolveFormat(); err != nil {
				return err
			}

			resolveConfig()
			apiClient = client.New(flagURL, client.WithUserAgent("futbolpath-cli/"+config.Version))

			return nil
		},
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagURL, "url", defaultURL, "futbolpath server URL (env: FUTBOLPATH_URL)")
	rootCmd.PersistentFlags().StringVar(&flagFmt, "format", "", "Output format: json|yaml|table (default table on a terminal, json otherwise)")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newPathCmd())
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newGraphCmd())
	rootCmd.AddCommand(newHealthCmd())
	rootCmd.AddCommand(newReadyCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// resolveConfig fills flagURL from FUTBOLPATH_URL, then from
// ~/.futbolpath/config.yaml. An explicit --url always wins.
func resolveConfig() {
	if flagURL != defaultURL {
		return
	}

	if v := os.Getenv("FUTBOLPATH_URL"); v != "" {
		flagURL = v
		return
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}

	data, err := os.ReadFile(filepath.Join(home, ".futbolpath", "config.yaml"))
	if err != nil {
		return
	}

	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return
	}

	resolved := cfg.URL

	if cfg.Profiles != nil {
		name := cfg.ActiveProfile
		if name == "" {
			name = "default"
		}

		if p, ok := cfg.Profiles[name]; ok && p.URL != "" {
			resolved = p.URL
		}
	}

	if resolved != "" {
		flagURL = resolved
	}
}
