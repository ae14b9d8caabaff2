package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/petralia/cfdnsctl/internal/config"
	"github.com/petralia/cfdnsctl/internal/infrastructure/cloudflare"
	"github.com/petralia/cfdnsctl/internal/infrastructure/state"
	"github.com/petralia/cfdnsctl/internal/records"
	"github.com/petralia/cfdnsctl/internal/zones"
)

var (
	configPath   string
	zoneOverride string
	showVersion  bool
)

var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "cfdnsctl",
	Short: "Cloudflare DNS record management tool",
	Long:  "cfdnsctl manages DNS records in Cloudflare zones from the command line.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if showVersion {
			fmt.Println(Version)
			os.Exit(0)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&zoneOverride, "zone", "z", "", "Zone ID, overrides the selected session zone")
	rootCmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runtime wires the configured API client, the session zone store and
// the services on top of them.
type runtime struct {
	cfg   *config.Config
	api   *cloudflare.Client
	store *state.ZoneStore
}

func newRuntime() (*runtime, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &runtime{
		cfg:   cfg,
		api:   cloudflare.NewClient(cfg.Credentials(), cloudflare.WithBaseURL(cfg.BaseURL)),
		store: state.NewZoneStore(cfg.StateFile),
	}, nil
}

func (r *runtime) recordService() *records.Service {
	return records.NewService(r.api, r.store)
}

func (r *runtime) zoneService() *zones.Service {
	return zones.NewService(r.api)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
	os.Exit(1)
}
