package settings

import (
	"fmt"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

func openTestStore(t *testing.T) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	store, err := gdata.Open(gdata.Config{AppName: fmt.Sprintf("arcade_test_%d", time.Now().UnixNano())})
	if err != nil {
		t.Skipf("gdata unavailable: %v", err)
	}
	return store
}

func TestMemoryOnly(t *testing.T) {
	m := NewManager(nil)
	if m.Persistent() {
		t.Fatalf("nil store must not be persistent")
	}
	if err := m.Update(func(s *Settings) { s.Fuzzle = true; s.SoundVolume = 3 }); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := m.Get(); !got.Fuzzle || got.SoundVolume != 1 {
		t.Fatalf("unexpected settings %+v", got)
	}
	if err := m.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Get() != Default() {
		t.Fatalf("memory-only load resets to defaults")
	}
}

func TestRoundTripThroughStore(t *testing.T) {
	store := openTestStore(t)

	m := NewManager(store)
	if err := m.Load(); err != nil {
		t.Fatalf("Load empty: %v", err)
	}
	if m.Get() != Default() {
		t.Fatalf("expected defaults before the first save")
	}
	err := m.Update(func(s *Settings) {
		s.PlatformerTheme = "volcano"
		s.PuzzleTheme = "retro"
		s.Fuzzle = true
		s.SoundEnabled = false
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	again := NewManager(store)
	if err := again.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	got := again.Get()
	if got.PlatformerTheme != "volcano" || got.PuzzleTheme != "retro" || !got.Fuzzle || got.SoundEnabled {
		t.Fatalf("settings did not survive a reload: %+v", got)
	}
}

func TestLoadRejectsCorruptData(t *testing.T) {
	store := openTestStore(t)
	if err := store.SaveObjectProp(settingsObject, settingsProp, []byte("platformerTheme: [unterminated")); err != nil {
		t.Fatalf("SaveObjectProp: %v", err)
	}
	m := NewManager(store)
	if err := m.Load(); err == nil {
		t.Fatalf("expected a decode error")
	}
	if m.Get() != Default() {
		t.Fatalf("corrupt data leaves defaults")
	}
}
