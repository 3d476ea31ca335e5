package scene

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string // Name accepted by Open
	Name        string // Display name
	Description string // Optional description
	Type        string // "builtin" or "toml"
	FilePath    string // Path to the scene file (toml type only)
}

// ListSceneFiles returns the *.toml scenes in dir sorted by name. A missing directory has no scenes.
func ListSceneFiles(dir string, logger core.Logger) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.toml"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, filePath := range files {
		info, err := ParseSceneMetadata(filePath)
		if err != nil {
			// Keep listing the other files
			if logger != nil {
				logger.Printf("Warning: failed to parse metadata for %s: %v", filePath, err)
			}
			continue
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes, nil
}

// ListScenes returns the built-in scenes followed by the scene files in dir
func ListScenes(dir string, logger core.Logger) ([]SceneInfo, error) {
	files, err := ListSceneFiles(dir, logger)
	if err != nil {
		return nil, err
	}
	return append(builtinInfos(), files...), nil
}

// ParseSceneMetadata extracts metadata from the leading "# Scene:" and "# Description:" comments
func ParseSceneMetadata(filePath string) (SceneInfo, error) {
	nameWithoutExt := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))

	// Fallback values
	info := SceneInfo{
		ID:       nameWithoutExt,
		Name:     titleCase(nameWithoutExt),
		Type:     "toml",
		FilePath: filePath,
	}

	file, err := os.Open(filePath)
	if err != nil {
		return info, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Stop parsing at first non-comment line
		if !strings.HasPrefix(line, "#") {
			break
		}

		content := strings.TrimSpace(strings.TrimPrefix(line, "#"))
		if value, ok := strings.CutPrefix(content, "Scene:"); ok {
			info.Name = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(content, "Description:"); ok {
			info.Description = strings.TrimSpace(value)
		}
	}

	return info, scanner.Err()
}

// Open builds a scene by name: a built-in scene, a path to a .toml file, or the ID of a
// scene file in dir
func Open(name, dir string, logger core.Logger) (*Scene, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty scene name", core.ErrInvalidArgument)
	}
	if b, ok := builtinScenes[name]; ok {
		return b.build(logger)
	}
	if strings.HasSuffix(name, ".toml") {
		return LoadFile(name, logger)
	}

	path := filepath.Join(dir, name+".toml")
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: unknown scene %q", core.ErrInvalidArgument, name)
	}
	return LoadFile(path, logger)
}

// titleCase converts a filename-style string to title case
// e.g., "mirror-balls" -> "Mirror Balls"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
