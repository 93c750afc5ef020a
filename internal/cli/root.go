package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gianzellweger/crossinfo/internal/config"
	"github.com/gianzellweger/crossinfo/internal/dash"
	"github.com/gianzellweger/crossinfo/internal/logger"
	"github.com/gianzellweger/crossinfo/internal/probe"
)

var (
	// Global flags
	cfgFile string
	logFile string

	// Version info (set from main)
	Version = "0.1.0"
)

// rootCmd represents the base command. Running it with no subcommand
// starts the dashboard.
var rootCmd = &cobra.Command{
	Use:   "crossinfo",
	Short: "Cross-platform system information dashboard",
	Long: `Crossinfo is a terminal dashboard that shows live information about
the local machine: CPU load per core, memory and swap, disks, batteries,
network interfaces, running processes and temperature sensors.`,
	SilenceUsage: true,
	RunE:         runDashboard,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write diagnostic logs to this file")
}

// SetVersion sets the version for the CLI
func SetVersion(v string) {
	Version = v
	rootCmd.Version = v
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg := config.LoadOrDefault(cfgFile)

	// The flag wins over the config file.
	path := cfg.Logging.File
	if logFile != "" {
		path = logFile
	}

	log, closer, err := logger.New(path, cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	if closer != nil {
		defer closer.Close()
	}

	return dash.Run(probe.New(), log)
}
