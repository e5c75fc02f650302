package fonts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Inter", "Inter-Bold.ttf"))
	touch(t, filepath.Join(dir, "Mono.OTF"))
	touch(t, filepath.Join(dir, "README.md"))

	got, err := ScanDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != "Inter/Inter-Bold.ttf" || got[1] != "Mono.OTF" {
		t.Fatalf("got %v", got)
	}

	missing, err := ScanDir(filepath.Join(dir, "nope"))
	if err != nil || len(missing) != 0 {
		t.Fatalf("missing dir: %v %v", missing, err)
	}
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Open_Sans", "OpenSans-Bold.ttf"))
	touch(t, filepath.Join(dir, "Open_Sans", "OpenSans-Regular.ttf"))
	touch(t, filepath.Join(dir, "Lato-Light.otf"))

	tests := []struct {
		search string
		want   string
	}{
		{"open sans", filepath.Join(dir, "Open_Sans", "OpenSans-Regular.ttf")},
		{"OpenSans-Bold", filepath.Join(dir, "Open_Sans", "OpenSans-Bold.ttf")},
		{"lato", filepath.Join(dir, "Lato-Light.otf")},
		{filepath.Join(dir, "Lato-Light.otf"), filepath.Join(dir, "Lato-Light.otf")},
	}
	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			got, err := Find(tt.search, []string{filepath.Join(dir, "missing"), dir})
			if err != nil || got != tt.want {
				t.Fatalf("got %q, %v want %q", got, err, tt.want)
			}
		})
	}

	for _, search := range []string{"", "  ", "Comic"} {
		if _, err := Find(search, []string{dir}); !errors.Is(err, ErrNotFound) {
			t.Errorf("Find(%q): got %v want ErrNotFound", search, err)
		}
	}
}
