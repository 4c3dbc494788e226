package editor

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestTextEntryTypesPath(t *testing.T) {
	var te TextEntry
	keys := []ebiten.Key{
		ebiten.KeyT, ebiten.KeyI, ebiten.KeyL, ebiten.KeyE, ebiten.KeyS,
		ebiten.KeySlash,
		ebiten.KeyM, ebiten.KeyA, ebiten.KeyP,
		ebiten.KeyPeriod,
		ebiten.KeyP, ebiten.KeyN, ebiten.KeyG,
	}
	for _, k := range keys {
		if !te.Feed(k, false) {
			t.Fatalf("key %v not handled", k)
		}
	}
	if got := te.String(); got != "tiles/map.png" {
		t.Fatalf("typed %q, want %q", got, "tiles/map.png")
	}
}

func TestTextEntryUnderscoreNeedsShift(t *testing.T) {
	var te TextEntry
	if te.Feed(ebiten.KeyMinus, false) {
		t.Fatalf("bare minus should be rejected")
	}
	if !te.Feed(ebiten.KeyMinus, true) {
		t.Fatalf("shift+minus should insert underscore")
	}
	if got := te.String(); got != "_" {
		t.Fatalf("got %q, want %q", got, "_")
	}
}

func TestTextEntryBackspace(t *testing.T) {
	var te TextEntry
	te.Feed(ebiten.KeyA, false)
	te.Feed(ebiten.KeyB, false)
	if !te.Feed(ebiten.KeyBackspace, false) {
		t.Fatalf("backspace on non-empty buffer should be handled")
	}
	if got := te.String(); got != "a" {
		t.Fatalf("got %q, want %q", got, "a")
	}
	te.Feed(ebiten.KeyBackspace, false)
	if te.Feed(ebiten.KeyBackspace, false) {
		t.Fatalf("backspace on empty buffer should be a no-op")
	}
}

func TestTextEntryRejectsOutsideAlphabet(t *testing.T) {
	var te TextEntry
	for _, k := range []ebiten.Key{ebiten.Key1, ebiten.KeySpace, ebiten.KeyComma, ebiten.KeySemicolon} {
		if te.Feed(k, false) {
			t.Fatalf("key %v should be outside the alphabet", k)
		}
	}
	if got := te.String(); got != "" {
		t.Fatalf("buffer should stay empty, got %q", got)
	}
}

func TestTextEntryReset(t *testing.T) {
	var te TextEntry
	te.Feed(ebiten.KeyA, false)
	te.Reset()
	if got := te.String(); got != "" {
		t.Fatalf("buffer after Reset = %q, want empty", got)
	}
}
