// Package cli provides the rpaperd command-line entrypoint.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kestrelwm/rpaperd/internal/daemon"
	"github.com/kestrelwm/rpaperd/internal/logging"
	"github.com/kestrelwm/rpaperd/internal/pathutil"
	"github.com/kestrelwm/rpaperd/internal/version"
	"github.com/spf13/cobra"
)

var (
	flagConfigPath string
	flagSocketPath string
	flagForeground bool
	flagVerbose    bool

	rootCmd = &cobra.Command{
		Use:   "rpaperd",
		Short: "A per-display wallpaper and palette daemon",
		Long: `rpaperd is a long-running background service that derives per-display
wallpaper renderings, extracts 16-entry color palettes from images via
k-means clustering, and materializes those palettes into user-authored
configuration templates, all driven over a Unix domain socket.`,
		Version:      version.Short(),
		SilenceUsage: true,
		RunE:         runDaemon,
	}
)

// Execute runs the root command. Called once from main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfigPath, "config", "c", pathutil.ConfigPath(), "path to config.json")
	rootCmd.PersistentFlags().StringVarP(&flagSocketPath, "socket", "s", pathutil.SocketPath(), "path to the daemon's Unix socket")
	rootCmd.PersistentFlags().BoolVarP(&flagForeground, "foreground", "f", true, "run in the foreground (rpaperd does not currently daemonize itself)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug-level logging")

	rootCmd.SetVersionTemplate(version.String() + "\n")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}

func runDaemon(cmd *cobra.Command, args []string) error {
	log := logging.New(os.Stdout, flagVerbose)

	if err := daemon.EnsureSingleInstance(); err != nil {
		return err
	}

	d, err := daemon.New(daemon.Options{
		ConfigPath: flagConfigPath,
		SocketPath: flagSocketPath,
		Verbose:    flagVerbose,
	}, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return d.Run(ctx)
}
