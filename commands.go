package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/logging"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/fsnotify/fsnotify"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Changes arriving within this window trigger a single render
const watchDebounce = 200 * time.Millisecond

var logger = logging.New("whitted", false)

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		logger = logging.New("whitted", true)
	}
}

// createScene opens a scene by name from the default scenes directory
func createScene(name string) (*scene.Scene, error) {
	return scene.Open(name, "scenes", logging.Discard())
}

func sceneArg(ctx *cli.Context) (string, error) {
	if ctx.NArg() != 1 {
		return "", errors.New("missing scene argument")
	}
	return ctx.Args().First(), nil
}

func overrides(ctx *cli.Context) scene.Overrides {
	return scene.Overrides{
		Width:       ctx.Int("width"),
		Height:      ctx.Int("height"),
		Supersample: ctx.Int("supersample"),
		MaxDepth:    ctx.Int("max-depth"),
	}
}

// outputPath returns the --out flag, or a timestamped file under output/<scene>
func outputPath(ctx *cli.Context, sceneName string) string {
	if out := ctx.String("out"); out != "" {
		return out
	}
	timestamp := time.Now().Format("20060102_150405")
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.png", timestamp))
}

// renderToFile renders s and saves the image
func renderToFile(s *scene.Scene, out string) error {
	img, stats := renderer.NewRaytracer(s, logger).Render()
	logger.Debugf("render statistics\n%s", stats.Table())

	if err := renderer.Save(img, out); err != nil {
		return err
	}
	logger.Infof("Render saved as %s", out)
	return nil
}

func renderCommand(ctx *cli.Context) error {
	setupLogging(ctx)

	name, err := sceneArg(ctx)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	s, err := scene.Open(name, ctx.String("scenes-dir"), logger)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	s.Apply(overrides(ctx))

	if err := renderToFile(s, outputPath(ctx, s.Name)); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	return nil
}

func statsCommand(ctx *cli.Context) error {
	setupLogging(ctx)

	name, err := sceneArg(ctx)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	s, err := scene.Open(name, ctx.String("scenes-dir"), logger)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	stats, ok := s.BVHStats()
	if !ok {
		return cli.NewExitError(fmt.Sprintf("scene %q does not use a BVH (%d primitives in a list)", s.Name, s.Primitives), 1)
	}
	fmt.Print(renderer.BVHTable(stats))
	return nil
}

func scenesCommand(ctx *cli.Context) error {
	setupLogging(ctx)

	infos, err := scene.ListScenes(ctx.String("scenes-dir"), logger)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	fmt.Print(scenesTable(infos))
	return nil
}

func scenesTable(infos []scene.SceneInfo) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"ID", "Name", "Type", "Description"})
	for _, info := range infos {
		table.Append([]string{info.ID, info.Name, info.Type, info.Description})
	}
	table.Render()
	return buf.String()
}

func watchCommand(ctx *cli.Context) error {
	setupLogging(ctx)

	name, err := sceneArg(ctx)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	dir := ctx.String("scenes-dir")

	s, err := scene.Open(name, dir, logger)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	if s.Path == "" {
		return cli.NewExitError(fmt.Sprintf("scene %q is built in; watch needs a scene file", name), 1)
	}

	// The output path is fixed so every render replaces the previous one
	out := outputPath(ctx, s.Name)
	render := func(s *scene.Scene) {
		s.Apply(overrides(ctx))
		if err := renderToFile(s, out); err != nil {
			logger.Errorf("Render failed: %v", err)
		}
	}
	render(s)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	defer watcher.Close()

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := watchScene(watcher, s); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	return watchLoop(sigCtx, watcher, func() {
		next, err := scene.LoadFile(s.Path, logger)
		if err != nil {
			logger.Errorf("Reload failed: %v", err)
			return
		}
		// Models may have been added or removed
		if err := rewatch(watcher, s, next); err != nil {
			logger.Errorf("Failed to update watched files: %v", err)
		}
		s = next
		render(s)
	})
}

// watchedFiles returns the scene file and every model it references
func watchedFiles(s *scene.Scene) []string {
	return append([]string{s.Path}, s.Files...)
}

func watchScene(watcher *fsnotify.Watcher, s *scene.Scene) error {
	for _, path := range watchedFiles(s) {
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		logger.Debugf("Watching %s", path)
	}
	return nil
}

// rewatch swaps the watch list from the files of prev to those of next
func rewatch(watcher *fsnotify.Watcher, prev, next *scene.Scene) error {
	for _, path := range watchedFiles(prev) {
		// Editors that replace files drop the watch themselves
		_ = watcher.Remove(path)
	}
	return watchScene(watcher, next)
}

// watchLoop calls reload once per burst of file changes until ctx is done
func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, reload func()) error {
	logger.Infof("Watching for changes, press Ctrl-C to stop")

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				logger.Debugf("Change detected: %s", event)
				pending = time.After(watchDebounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Errorf("Watch error: %v", err)
		case <-pending:
			pending = nil
			reload()
		}
	}
}
