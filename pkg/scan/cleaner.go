package scan

// CleanText normalizes recognized label text before name and date
// extraction. Carriage returns are stripped, tabs become spaces, dash-like
// and bar glyphs are canonicalized, and a small set of digit/letter
// confusions is corrected. The substitutions fire only at the adjacency
// boundaries printed expiry codes produce; letters inside ordinary words
// are left alone. All decisions are made against the input, so the
// transform is idempotent for realistic label text.
func CleanText(s string) string {
	rs := []rune(normalizeGlyphs(s))
	out := make([]rune, len(rs))
	copy(out, rs)

	for i, r := range rs {
		var prev, next rune
		if i > 0 {
			prev = rs[i-1]
		}
		if i+1 < len(rs) {
			next = rs[i+1]
		}
		switch {
		case r == 'O' && isDigit(next):
			out[i] = '0'
		case r == '0' && !isDigit(prev) && isUpperLetter(next):
			out[i] = 'O'
		case r == 'I' && isDigit(next):
			out[i] = '1'
		case r == 'S' && isDigit(next):
			out[i] = '5'
		case r == 'B' && isDigit(next):
			out[i] = '8'
		}
	}
	return string(out)
}

func normalizeGlyphs(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch r {
		case '\r':
			// dropped
		case '\t':
			out = append(out, ' ')
		case '–', '—', '■': // en dash, em dash, block glyph
			out = append(out, '-')
		case '|':
			out = append(out, 'I')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isUpperLetter(r rune) bool {
	return r >= 'A' && r <= 'Z'
}
