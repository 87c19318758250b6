package request

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/kestrelwm/rpaperd/internal/colour"
	"github.com/kestrelwm/rpaperd/internal/config"
	"github.com/kestrelwm/rpaperd/internal/fingerprint"
	"github.com/kestrelwm/rpaperd/internal/imageops"
	"github.com/kestrelwm/rpaperd/internal/logging"
	"github.com/kestrelwm/rpaperd/internal/pathutil"
	"github.com/kestrelwm/rpaperd/internal/process"
	"github.com/kestrelwm/rpaperd/internal/template"
	"github.com/kestrelwm/rpaperd/internal/wallpaper"
)

// affectAllBatchSize bounds "affect_all" directory-wide processing to 4
// concurrent images at a time.
const affectAllBatchSize = 4

// replyWaitTimeout bounds the context given to each template's synchronous
// ExecBefore commands while templates are applied.
const replyWaitTimeout = 5 * time.Second

// Handler processes one parsed Request against a cloned live Config
// snapshot, matching the source's per-connection Request/process pattern.
type Handler struct {
	Config *config.Config
	Runner process.Runner
	Log    *logging.Logger
}

// NewHandler builds a Handler bound to a cloned config snapshot; callers
// must pass an already-cloned Config so concurrent requests never share
// mutable state.
func NewHandler(cfg *config.Config, runner process.Runner, log *logging.Logger) *Handler {
	return &Handler{Config: cfg, Runner: runner, Log: log}
}

// Handle parses raw (one JSON request line) and produces its Reply.
func (h *Handler) Handle(raw string) Reply {
	start := pathutil.UnixTimestampMillis()

	var req Request
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		return finish(Reply{StartTime: start, Error: "error while deserializing request"}, start)
	}

	if h.Config.LastCallFile != nil {
		_ = os.WriteFile(*h.Config.LastCallFile, []byte(raw), 0o644)
	}

	reply := Reply{StartTime: start}
	h.attachInfoFields(&req, &reply)

	if req.Image == nil {
		reply.Message = "ok"
		return finish(reply, start)
	}

	imagePath := pathutil.ExpandUser(*req.Image)
	info, err := os.Stat(imagePath)
	if err != nil {
		reply.Error = "path does not exists"
		return finish(reply, start)
	}

	merged := MergeConfig(h.Config, req)
	ops := operationsOrZero(merged)
	params := paramsOrDefault(merged)

	if req.GetCCache {
		paletteCachePath := fingerprint.PaletteCachePath(ops, params, imagePath, pathutil.ColorsDir())
		lines, err := colour.Run(colour.RunOptions{
			ImagePath:      imagePath,
			CacheFilePath:  paletteCachePath,
			Params:         params,
			Operations:     ops,
			ColorsSentinel: pathutil.ColorsPath(),
		})
		if err == nil {
			reply.CCache = lines
		}
	}
	if req.GetWCache && merged.Displays != nil {
		reply.WCache = fingerprint.CachePathsForDisplays(merged.Displays, ops, imagePath, pathutil.WallpapersDir())
	}

	var images []string
	if info.IsDir() {
		scanned, err := wallpaper.ScanDirectory(imagePath)
		if err != nil {
			reply.Error = "file is not an image or has unsuported format"
			return finish(reply, start)
		}
		if req.AffectAll {
			images = scanned
		} else {
			one, err := wallpaper.SelectRandom(scanned)
			if err != nil {
				reply.Error = "file is not an image or has unsuported format"
				return finish(reply, start)
			}
			images = []string{one}
		}
	} else if !isSupportedImage(imagePath) {
		reply.Error = "file is not an image or has unsuported format"
		return finish(reply, start)
	} else {
		images = []string{imagePath}
	}

	h.processImages(images, req, merged, ops, params)

	reply.Message = "ok"
	return finish(reply, start)
}

func isSupportedImage(path string) bool {
	for _, ext := range wallpaper.SupportedExtensions() {
		if strings.HasSuffix(strings.ToLower(path), ext) {
			return true
		}
	}
	return false
}

func (h *Handler) attachInfoFields(req *Request, reply *Reply) {
	if req.GetConfig {
		reply.Config = h.Config
	}
	if req.GetDisplays {
		reply.Displays = h.Config.Displays
	}
	if req.GetTemplates {
		reply.Templates = h.Config.Templates
	}
	if req.GetImageOps {
		reply.ImageOps = h.Config.ImageOperations
	}
	if req.GetRwalParams {
		reply.RwalParams = h.Config.RwalParams
	}
	if req.GetCurrentColorscheme {
		if data, err := os.ReadFile(pathutil.ColorsPath()); err == nil {
			reply.CurrentColorscheme = strings.Split(strings.TrimRight(string(data), "\n"), "\n")
		}
	}
}

// processImages runs the per-image action fan-out. Directory-mode
// "affect_all" requests are processed in batches of affectAllBatchSize;
// all other cases are a single-element batch.
func (h *Handler) processImages(images []string, req Request, merged *config.Config, ops imageops.Operations, params colour.Params) {
	for start := 0; start < len(images); start += affectAllBatchSize {
		end := start + affectAllBatchSize
		if end > len(images) {
			end = len(images)
		}
		var wg sync.WaitGroup
		for _, image := range images[start:end] {
			wg.Add(1)
			go func(image string) {
				defer wg.Done()
				h.processOneImage(image, req, merged, ops, params)
			}(image)
		}
		wg.Wait()
	}
}

// processOneImage launches the four independent actions for one image
// concurrently and waits for all to complete before returning.
func (h *Handler) processOneImage(image string, req Request, merged *config.Config, ops imageops.Operations, params colour.Params) {
	var wg sync.WaitGroup

	if req.CCache && !req.CSet {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.cachePalette(image, ops, params)
		}()
	}
	if req.WCache && !req.WSet {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.cacheWallpaper(image, merged, ops)
		}()
	}
	if req.CSet {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.applyTemplates(image, merged, ops, params)
		}()
	}
	if req.WSet {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.setWallpaper(image, merged, ops)
		}()
	}

	wg.Wait()
}

func (h *Handler) cachePalette(image string, ops imageops.Operations, params colour.Params) {
	cachePath := fingerprint.PaletteCachePath(ops, params, image, pathutil.ColorsDir())
	_, err := colour.Run(colour.RunOptions{
		ImagePath:      image,
		CacheFilePath:  cachePath,
		Params:         params,
		Operations:     ops,
		ColorsSentinel: pathutil.ColorsPath(),
	})
	if err != nil && h.Log != nil {
		h.Log.Error("caching palette for %s: %v", image, err)
	}
}

func (h *Handler) cacheWallpaper(image string, merged *config.Config, ops imageops.Operations) {
	if merged.Displays == nil || merged.ResizeAlgorithm == nil {
		return
	}
	err := wallpaper.CacheWallpaper(h.Log, wallpaper.RenderOptions{
		ImagePath:     image,
		Displays:      merged.Displays,
		Operations:    ops,
		ResizeAlgo:    imageops.ParseAlgorithm(*merged.ResizeAlgorithm),
		WallpapersDir: pathutil.WallpapersDir(),
	})
	if err != nil && h.Log != nil {
		h.Log.Error("caching wallpaper for %s: %v", image, err)
	}
}

func (h *Handler) setWallpaper(image string, merged *config.Config, ops imageops.Operations) {
	if merged.Displays == nil || merged.ResizeAlgorithm == nil || merged.SetCommand == nil {
		return
	}
	err := wallpaper.SetWallpaper(h.Log, h.Runner, wallpaper.SetOptions{
		RenderOptions: wallpaper.RenderOptions{
			ImagePath:     image,
			Displays:      merged.Displays,
			Operations:    ops,
			ResizeAlgo:    imageops.ParseAlgorithm(*merged.ResizeAlgorithm),
			WallpapersDir: pathutil.WallpapersDir(),
		},
		SetCommand: *merged.SetCommand,
	})
	if err != nil && h.Log != nil {
		h.Log.Error("setting wallpaper for %s: %v", image, err)
	}
}

func (h *Handler) applyTemplates(image string, merged *config.Config, ops imageops.Operations, params colour.Params) {
	if merged.Templates == nil {
		return
	}
	cachePath := fingerprint.PaletteCachePath(ops, params, image, pathutil.ColorsDir())
	lines, err := colour.Run(colour.RunOptions{
		ImagePath:      image,
		CacheFilePath:  cachePath,
		Params:         params,
		Operations:     ops,
		ColorsSentinel: pathutil.ColorsPath(),
	})
	if err != nil {
		if h.Log != nil {
			h.Log.Error("computing palette for %s: %v", image, err)
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), replyWaitTimeout)
	defer cancel()

	for _, path := range merged.Templates {
		tmpl, err := template.New(path)
		if err != nil {
			if h.Log != nil {
				h.Log.Error("loading template %s: %v", path, err)
			}
			continue
		}
		if err := tmpl.Apply(ctx, lines, h.Runner); err != nil && h.Log != nil {
			h.Log.Error("applying template %s: %v", path, err)
		}
	}
}

func finish(reply Reply, start int64) Reply {
	reply.StartTime = start
	reply.EndTime = pathutil.UnixTimestampMillis()
	reply.TimeElapsed = reply.EndTime - start
	return reply
}
