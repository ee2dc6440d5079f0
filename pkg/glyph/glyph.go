package glyph

import "tableflip.dev/todos/pkg/entry"

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 3)

	g = append(g, Glyph{
		Key:     " ",
		Symbol:  "○",
		Meaning: "open",
	}, Glyph{
		Key:     "x",
		Symbol:  "✔",
		Meaning: "completed",
	}, Glyph{
		Key:     "e",
		Symbol:  "✎",
		Meaning: "editing",
	})

	return g
}

func (g Glyph) String() string {
	return g.Symbol
}

// ForStatus returns the glyph drawn next to an entry with the given status.
func ForStatus(s entry.Status) Glyph {
	all := DefaultGlyphs()
	if int(s) < 0 || int(s) >= len(all) {
		return Glyph{Key: "?", Symbol: "?", Meaning: s.String()}
	}
	return all[s]
}
