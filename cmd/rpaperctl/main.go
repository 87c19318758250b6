// Command rpaperctl is a thin reference client for rpaperd's socket
// protocol: it assembles one JSON request line from its flags, writes it
// to the daemon's Unix socket, and prints the JSON reply.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"os"

	"github.com/kestrelwm/rpaperd/internal/pathutil"
	"github.com/kestrelwm/rpaperd/internal/request"
	"github.com/spf13/cobra"
)

var (
	flagSocketPath string
	flagImage      string
	flagAffectAll  bool
	flagWSet       bool
	flagWCache     bool
	flagCSet       bool
	flagCCache     bool
	flagSetCommand string
	flagGetConfig  bool
)

var rootCmd = &cobra.Command{
	Use:          "rpaperctl",
	Short:        "Send a wallpaper request to rpaperd",
	SilenceUsage: true,
	RunE:         runRequest,
}

func init() {
	rootCmd.Flags().StringVarP(&flagSocketPath, "socket", "s", pathutil.SocketPath(), "path to the daemon's Unix socket")
	rootCmd.Flags().StringVarP(&flagImage, "image", "i", "", "path to an image or a directory of images")
	rootCmd.Flags().BoolVar(&flagAffectAll, "affect-all", false, "apply the request to every image in the directory named by --image")
	rootCmd.Flags().BoolVar(&flagWSet, "w-set", false, "set the rendered wallpaper")
	rootCmd.Flags().BoolVar(&flagWCache, "w-cache", false, "render and cache the wallpaper without setting it")
	rootCmd.Flags().BoolVar(&flagCSet, "c-set", false, "compute the palette and apply it to templates")
	rootCmd.Flags().BoolVar(&flagCCache, "c-cache", false, "compute and cache the palette without applying templates")
	rootCmd.Flags().StringVar(&flagSetCommand, "set-command", "", "override the configured wallpaper set command for this request")
	rootCmd.Flags().BoolVar(&flagGetConfig, "get-config", false, "ask the daemon to echo its current configuration")
}

func runRequest(cmd *cobra.Command, args []string) error {
	req := request.Request{
		AffectAll:  flagAffectAll,
		WSet:       flagWSet,
		WCache:     flagWCache,
		CSet:       flagCSet,
		CCache:     flagCCache,
		GetConfig:  flagGetConfig,
	}
	if flagImage != "" {
		req.Image = &flagImage
	}
	if flagSetCommand != "" {
		req.SetCommand = &flagSetCommand
	}

	conn, err := net.Dial("unix", flagSocketPath)
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", flagSocketPath, err)
	}
	defer conn.Close()

	line, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}
	line = append(line, '\n')
	if _, err := conn.Write(line); err != nil {
		return fmt.Errorf("writing request: %w", err)
	}

	reply, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil {
		return fmt.Errorf("reading reply: %w", err)
	}

	var pretty map[string]any
	if err := json.Unmarshal([]byte(reply), &pretty); err != nil {
		fmt.Println(reply)
		return nil
	}
	out, err := json.MarshalIndent(pretty, "", "  ")
	if err != nil {
		fmt.Println(reply)
		return nil
	}
	fmt.Println(string(out))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
