package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SceneInfo describes a scene file found on disk
type SceneInfo struct {
	ID          string // File name without extension, usable as a -scene argument
	Name        string // Display name
	Description string // Optional description
	FilePath    string // Path to the YAML file
}

// DefaultScenesDirs are searched in order by FindScenesDir
var DefaultScenesDirs = []string{"scenes", "../scenes"}

// FindScenesDir returns the first existing directory, or "" if none exist
func FindScenesDir(candidates []string) string {
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return path
		}
	}
	return ""
}

// ListScenes scans dir for *.yaml scene files, sorted by display name.
// A missing directory yields an empty list.
func ListScenes(dir string) ([]SceneInfo, error) {
	if dir == "" {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("scanning scenes directory: %w", err)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, filePath := range files {
		info, err := ParseSceneMetadata(filePath)
		if err != nil {
			return nil, err
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})

	return scenes, nil
}

// ParseSceneMetadata reads "# Scene:" and "# Description:" lines from the
// comment block at the top of a scene file. The name falls back to the file
// name in title case.
func ParseSceneMetadata(filePath string) (SceneInfo, error) {
	id := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	info := SceneInfo{
		ID:       id,
		Name:     titleCase(id),
		FilePath: filePath,
	}

	file, err := os.Open(filePath)
	if err != nil {
		return info, fmt.Errorf("reading scene metadata: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
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

// ResolveScene maps a scene argument to a file path. Arguments that name an
// existing file are used as-is; otherwise the argument is looked up by ID
// among the scenes in dir.
func ResolveScene(arg, dir string) (string, error) {
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		return arg, nil
	}

	scenes, err := ListScenes(dir)
	if err != nil {
		return "", err
	}
	for _, s := range scenes {
		if s.ID == arg {
			return s.FilePath, nil
		}
	}

	return "", fmt.Errorf("scene %q: %w", arg, os.ErrNotExist)
}

// titleCase converts a filename-style string to title case
// e.g., "two-spheres" -> "Two Spheres"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
