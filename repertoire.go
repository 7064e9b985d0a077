package ttf2bmp

// The atlas always contains the same 100 characters in the same order:
// printable ASCII 32..126, the letters Ё and ё, and the symbols №, ° and •.
// Cell positions in the output are defined by this order, so consumers can
// index the atlas without any side table. Progress reporting assumes the
// repertoire stays at 100 characters or fewer.

// supplement lists the non-ASCII tail of the repertoire.
var supplement = []rune{'Ё', 'ё', '№', '°', '•'}

// RepertoireSize is the number of characters in the atlas.
const RepertoireSize = 95 + 5

// Repertoire returns the full character repertoire in atlas order.
// The returned slice is a fresh copy on every call.
func Repertoire() []rune {
	rep := make([]rune, 0, RepertoireSize)
	for r := rune(' '); r <= '~'; r++ {
		rep = append(rep, r)
	}
	rep = append(rep, supplement...)
	return rep
}
