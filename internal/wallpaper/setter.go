package wallpaper

import (
	"github.com/kestrelwm/rpaperd/internal/fingerprint"
	"github.com/kestrelwm/rpaperd/internal/logging"
	"github.com/kestrelwm/rpaperd/internal/pathutil"
	"github.com/kestrelwm/rpaperd/internal/process"
)

// SetOptions bundles the inputs needed to apply a wallpaper: the render
// inputs plus the shell command template each display's cache path is
// substituted into and spawned against.
type SetOptions struct {
	RenderOptions
	SetCommand string
}

// SetWallpaper ensures every display's cache file exists (re-rendering if
// any is missing) and then spawns the set command for each display,
// substituting {image}/{default_image}/{display} per the source's
// parse_set_command. The spawn is fire-and-forget: SetWallpaper does not
// wait for the external command to finish.
func SetWallpaper(log *logging.Logger, runner process.Runner, opts SetOptions) error {
	if opts.SetCommand == "" {
		return nil
	}

	if !CachedPathsExist(opts.Displays, opts.Operations, opts.ImagePath, opts.WallpapersDir) {
		if err := CacheWallpaper(log, opts.RenderOptions); err != nil {
			return err
		}
	}

	if log != nil {
		log.Info("Setting wallpaper...")
	}

	paths := fingerprint.CachePathsForDisplays(opts.Displays, opts.Operations, opts.ImagePath, opts.WallpapersDir)
	for i, d := range opts.Displays {
		command := process.Substitute(opts.SetCommand, pathutil.ExpandUser(paths[i]), opts.ImagePath, d.Name)
		if err := runner.Spawn(command); err != nil {
			return err
		}
	}
	return nil
}
