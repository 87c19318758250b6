// Package pathutil provides filesystem path helpers shared by the daemon:
// well-known directory locations, tilde expansion, and basename/hash
// helpers used when building cache fingerprints.
package pathutil

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// SocketName is the Unix domain socket filename under /tmp.
	SocketName = "rpaperd.sock"

	configDirName  = "rpaperd"
	cacheDirName   = "rpaperd"
	rwalSubdir     = "rwal"
	walSubdir      = "wallpapers"
	colorsFileName = "colors"
	configFileName = "config.json"
)

// SocketPath returns the default Unix socket path, "/tmp/rpaperd.sock".
func SocketPath() string {
	return filepath.Join(os.TempDir(), SocketName)
}

// ConfigDir returns "~/.config/rpaperd", expanded.
func ConfigDir() string {
	return ExpandUser(filepath.Join("~", ".config", configDirName))
}

// ConfigPath returns "~/.config/rpaperd/config.json", expanded.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), configFileName)
}

// CacheDir returns "~/.cache/rpaperd", expanded.
func CacheDir() string {
	return ExpandUser(filepath.Join("~", ".cache", cacheDirName))
}

// ColorsDir returns "~/.cache/rpaperd/rwal", expanded.
func ColorsDir() string {
	return filepath.Join(CacheDir(), rwalSubdir)
}

// ColorsPath returns "~/.cache/rpaperd/rwal/colors", expanded.
func ColorsPath() string {
	return filepath.Join(ColorsDir(), colorsFileName)
}

// WallpapersDir returns "~/.cache/rpaperd/wallpapers", expanded.
func WallpapersDir() string {
	return filepath.Join(CacheDir(), walSubdir)
}

// WellKnownDirs returns the four directories the bootstrap watcher ensures
// exist: config dir, cache dir, colors dir, wallpapers dir.
func WellKnownDirs() []string {
	return []string{ConfigDir(), CacheDir(), ColorsDir(), WallpapersDir()}
}

// ExpandUser expands a leading "~" into the current user's home directory.
// Paths not starting with "~" are returned unchanged.
func ExpandUser(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, ok := os.LookupEnv("HOME")
	if !ok || home == "" {
		return path
	}
	rest := strings.TrimPrefix(path, "~")
	rest = strings.TrimPrefix(rest, string(filepath.Separator))
	rest = strings.TrimPrefix(rest, "/")
	if rest == "" {
		return home
	}
	return filepath.Join(home, rest)
}

// ImageName returns the basename of an image path.
func ImageName(path string) string {
	return filepath.Base(path)
}

// HashString returns the lowercase hex SHA-256 digest of s.
func HashString(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// UnixTimestampMillis returns the current time as Unix milliseconds.
func UnixTimestampMillis() int64 {
	return time.Now().UnixMilli()
}

// Exists reports whether a file or directory exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
