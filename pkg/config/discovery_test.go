package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"two-spheres", "Two Spheres"},
		{"ground_plane", "Ground Plane"},
		{"UPPER-case", "Upper Case"},
		{"simple", "Simple"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			if result := titleCase(tc.input); result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func createScenesDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"zeta.yaml":      "# Scene: Alpha Scene\n# Description: Sorted first by name\nambient: [0, 0, 0]\n",
		"beta-test.yaml": "ambient: [0, 0, 0]\n",
		"notes.txt":      "# Scene: ignored\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	return dir
}

func TestListScenes(t *testing.T) {
	scenes, err := ListScenes(createScenesDir(t))
	if err != nil {
		t.Fatalf("ListScenes failed: %v", err)
	}

	if len(scenes) != 2 {
		t.Fatalf("Expected 2 yaml scenes, got %d: %+v", len(scenes), scenes)
	}

	if scenes[0].ID != "zeta" || scenes[0].Name != "Alpha Scene" || scenes[0].Description != "Sorted first by name" {
		t.Errorf("Unexpected first scene %+v", scenes[0])
	}
	if scenes[1].ID != "beta-test" || scenes[1].Name != "Beta Test" || scenes[1].Description != "" {
		t.Errorf("Unexpected second scene %+v", scenes[1])
	}

	empty, err := ListScenes("")
	if err != nil || len(empty) != 0 {
		t.Errorf("Expected empty list without a directory, got %v, %v", empty, err)
	}
}

func TestResolveScene(t *testing.T) {
	dir := createScenesDir(t)

	path, err := ResolveScene("zeta", dir)
	if err != nil {
		t.Fatalf("ResolveScene by ID failed: %v", err)
	}
	if path != filepath.Join(dir, "zeta.yaml") {
		t.Errorf("Unexpected path %s", path)
	}

	direct := filepath.Join(dir, "beta-test.yaml")
	if path, err := ResolveScene(direct, ""); err != nil || path != direct {
		t.Errorf("Expected direct path to resolve to itself, got %q, %v", path, err)
	}

	if _, err := ResolveScene("missing", dir); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}

func TestFindScenesDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.yaml")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if got := FindScenesDir([]string{filepath.Join(dir, "nope"), file, dir}); got != dir {
		t.Errorf("Expected %s, got %q", dir, got)
	}
	if got := FindScenesDir([]string{filepath.Join(dir, "nope")}); got != "" {
		t.Errorf("Expected no directory, got %q", got)
	}
}
