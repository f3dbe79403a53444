package ioutils

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/handiism/mp3-organizer/internal/model"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"normal-file.mp3", "normal-file.mp3"},
		{"file:with:colons.mp3", "file_with_colons.mp3"},
		{"file<with>brackets.mp3", "file_with_brackets.mp3"},
		{"file/with\\slashes.mp3", "file_with_slashes.mp3"},
		{"file|with|pipes.mp3", "file_with_pipes.mp3"},
		{"file?with*wildcards.mp3", "file_with_wildcards.mp3"},
		{"file\"with\"quotes.mp3", "file_with_quotes.mp3"},
		{"trailing dots...", "trailing dots"},
		{"multiple   spaces", "multiple spaces"},
		{"trailing spaces   ", "trailing spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := SanitizeFileName(tt.input)
			if got != tt.want {
				t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestListingsAreSorted(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.mp3", "A.MP3", "c.txt", "a.mp3"} {
		writeFile(t, filepath.Join(dir, name), nil)
	}
	for _, name := range []string{"Zeta", "alpha", "Beta"} {
		if err := os.Mkdir(filepath.Join(dir, name), 0o755); err != nil {
			t.Fatal(err)
		}
	}

	dirs, err := SubDirs(dir)
	if err != nil {
		t.Fatal(err)
	}
	wantDirs := []string{"Beta", "Zeta", "alpha"}
	if len(dirs) != len(wantDirs) {
		t.Fatalf("SubDirs() = %v, want %v", dirs, wantDirs)
	}
	for i := range wantDirs {
		if dirs[i] != wantDirs[i] {
			t.Errorf("SubDirs()[%d] = %q, want %q", i, dirs[i], wantDirs[i])
		}
	}

	mp3s, err := MP3Files(dir)
	if err != nil {
		t.Fatal(err)
	}
	wantMP3s := []string{"A.MP3", "a.mp3", "b.mp3"}
	if len(mp3s) != len(wantMP3s) {
		t.Fatalf("MP3Files() = %v, want %v", mp3s, wantMP3s)
	}
	for i := range wantMP3s {
		if mp3s[i] != filepath.Join(dir, wantMP3s[i]) {
			t.Errorf("MP3Files()[%d] = %q, want %q", i, mp3s[i], wantMP3s[i])
		}
	}
}

func TestFindCover(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "01. Intro.mp3"), nil)
	writeFile(t, filepath.Join(dir, "folder.png"), []byte("png"))
	writeFile(t, filepath.Join(dir, "cover.jpg"), []byte("jpg"))

	cover, err := FindCover(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cover == nil {
		t.Fatal("expected a cover")
	}
	if cover.FileName != "cover.jpg" || cover.MIMEType != model.MIMEJPEG || string(cover.Data) != "jpg" {
		t.Errorf("unexpected cover: %s %s %q", cover.FileName, cover.MIMEType, cover.Data)
	}
}

func TestFindCover_None(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "01. Intro.mp3"), nil)

	cover, err := FindCover(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cover != nil {
		t.Errorf("expected no cover, got %s", cover.FileName)
	}
}

func TestSafeRename(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "foo.mp3")
	dst := filepath.Join(dir, "02. Foo.mp3")
	writeFile(t, src, []byte("new"))

	if err := SafeRename(src, dst); err != nil {
		t.Fatalf("SafeRename() error: %v", err)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Error("source should be gone")
	}
	if data, _ := os.ReadFile(dst); string(data) != "new" {
		t.Errorf("dst content = %q", data)
	}
}

func TestSafeRename_NeverOverwrites(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "foo.mp3")
	dst := filepath.Join(dir, "02. Foo.mp3")
	writeFile(t, src, []byte("new"))
	writeFile(t, dst, []byte("existing"))

	err := SafeRename(src, dst)
	if !errors.Is(err, ErrTargetExists) {
		t.Fatalf("SafeRename() error = %v, want ErrTargetExists", err)
	}
	if data, _ := os.ReadFile(dst); string(data) != "existing" {
		t.Errorf("existing file was modified: %q", data)
	}
	if data, _ := os.ReadFile(src); string(data) != "new" {
		t.Errorf("source was modified: %q", data)
	}
}

func TestSafeRename_SameFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "02. Foo.mp3")
	writeFile(t, src, []byte("data"))

	if err := SafeRename(src, src); err != nil {
		t.Errorf("renaming a file onto itself should succeed, got %v", err)
	}
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestFitCover(t *testing.T) {
	svc := NewImageService()
	ctx := context.Background()

	small := model.NewCoverImage("cover.png", encodePNG(t, 40, 20))
	got, err := svc.FitCover(ctx, small, 100)
	if err != nil {
		t.Fatal(err)
	}
	if got != small {
		t.Error("covers within bounds should be returned unchanged")
	}

	large := model.NewCoverImage("cover.png", encodePNG(t, 300, 150))
	got, err = svc.FitCover(ctx, large, 100)
	if err != nil {
		t.Fatal(err)
	}
	if got.MIMEType != model.MIMEJPEG {
		t.Errorf("MIMEType = %q, want %q", got.MIMEType, model.MIMEJPEG)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(got.Data))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 100 || cfg.Height != 50 {
		t.Errorf("resized to %dx%d, want 100x50", cfg.Width, cfg.Height)
	}

	unchanged, err := svc.FitCover(ctx, large, 0)
	if err != nil || unchanged != large {
		t.Error("maxSize 0 disables resizing")
	}
}
