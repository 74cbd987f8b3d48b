package asset

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/stagekit/core"
	"github.com/lixenwraith/stagekit/loading"
)

func writeTestPNG(t *testing.T, dir string) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode failed: %v", err)
	}
	path := filepath.Join(dir, "sprite.png")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestTextureLoadThroughStorage(t *testing.T) {
	path := writeTestPNG(t, t.TempDir())
	s := NewStorage()

	ticket, err := s.Textures.TakeTicket("sprite")
	if err != nil {
		t.Fatalf("TakeTicket failed: %v", err)
	}
	if err := s.Textures.Load("sprite", path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	tex, err := s.Textures.GetByTicket(ticket)
	if err != nil {
		t.Fatalf("GetByTicket failed: %v", err)
	}
	if w, h := tex.Size(); w != 4 || h != 2 {
		t.Errorf("Texture size (%d, %d), want (4, 2)", w, h)
	}
}

func TestTextureLoadFailureWrapped(t *testing.T) {
	s := NewStorage()

	err := s.Textures.Load("missing", "/nonexistent/missing.png")
	if !errors.Is(err, loading.ErrLoadFailure) {
		t.Errorf("Expected ErrLoadFailure, got %v", err)
	}
}

func TestDirectoryCoversAllKinds(t *testing.T) {
	s := NewStorage()
	d := s.Directory()

	kinds := []core.StorageKind{
		core.StorageTexture,
		core.StorageFont,
		core.StorageSound,
		core.StorageMusic,
	}
	for _, kind := range kinds {
		if _, err := d.Resolve(kind, "asset"); err != nil {
			t.Errorf("Resolve(%s) failed: %v", kind, err)
		}
	}
}

func TestStorageLockFreezesAllStores(t *testing.T) {
	s := NewStorage()
	s.Lock()

	if _, err := s.Textures.TakeTicket("late"); !errors.Is(err, loading.ErrAlreadyLocked) {
		t.Errorf("Textures not locked: %v", err)
	}
	if _, err := s.Fonts.TakeTicket("late"); !errors.Is(err, loading.ErrAlreadyLocked) {
		t.Errorf("Fonts not locked: %v", err)
	}
	if _, err := s.Sounds.TakeTicket("late"); !errors.Is(err, loading.ErrAlreadyLocked) {
		t.Errorf("Sounds not locked: %v", err)
	}
	if _, err := s.Music.TakeTicket("late"); !errors.Is(err, loading.ErrAlreadyLocked) {
		t.Errorf("Music not locked: %v", err)
	}
}

func TestFontLoaderRejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bogus.ttf")
	if err := os.WriteFile(path, []byte("not a font"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := (FontLoader{}).Load(FontArgs{Path: path, Size: 16}); err == nil {
		t.Errorf("Expected parse error for garbage font data")
	}
}
