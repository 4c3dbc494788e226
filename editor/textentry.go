package editor

import "github.com/hajimehoshi/ebiten/v2"

// keyRunes maps every key usable in an asset path to the rune it
// inserts. Underscore is the one shifted entry and is handled in Feed.
var keyRunes = map[ebiten.Key]rune{
	ebiten.KeySlash:  '/',
	ebiten.KeyPeriod: '.',
}

func init() {
	for k := ebiten.KeyA; k <= ebiten.KeyZ; k++ {
		keyRunes[k] = rune('a' + int(k-ebiten.KeyA))
	}
}

// TextEntry accumulates a path typed on a restricted alphabet:
// lowercase letters, '/', '_' and '.'.
type TextEntry struct {
	buf []rune
}

// Feed applies one just-pressed key. It returns true if the key changed
// the buffer.
func (t *TextEntry) Feed(key ebiten.Key, shift bool) bool {
	switch {
	case key == ebiten.KeyBackspace:
		if len(t.buf) == 0 {
			return false
		}
		t.buf = t.buf[:len(t.buf)-1]
		return true
	case key == ebiten.KeyMinus && shift:
		t.buf = append(t.buf, '_')
		return true
	}
	r, ok := keyRunes[key]
	if !ok {
		return false
	}
	t.buf = append(t.buf, r)
	return true
}

func (t *TextEntry) String() string {
	return string(t.buf)
}

// Reset clears the buffer.
func (t *TextEntry) Reset() {
	t.buf = t.buf[:0]
}
