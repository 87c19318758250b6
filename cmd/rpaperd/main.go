// Command rpaperd runs the wallpaper and palette daemon.
package main

import "github.com/kestrelwm/rpaperd/internal/cli"

func main() {
	cli.Execute()
}
