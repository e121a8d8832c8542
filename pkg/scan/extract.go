package scan

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Guess is the extractor's best effort at a product name and expiry date.
// Expiry is canonical YYYY-MM-DD or empty when no date pattern matched;
// the extractor never substitutes a default date.
type Guess struct {
	Name   string `json:"name"`
	Expiry string `json:"expiry,omitempty"`
}

type Extractor struct {
	stop    map[string]struct{}
	foodish []string
}

type Option func(*Extractor)

// WithStopWords replaces the stop-word list (uppercase tokens).
func WithStopWords(words []string) Option {
	return func(e *Extractor) {
		e.stop = make(map[string]struct{}, len(words))
		for _, w := range words {
			e.stop[strings.ToUpper(w)] = struct{}{}
		}
	}
}

// WithFoodWords replaces the foodish vocabulary (uppercase tokens).
func WithFoodWords(words []string) Option {
	return func(e *Extractor) {
		e.foodish = make([]string, 0, len(words))
		for _, w := range words {
			e.foodish = append(e.foodish, strings.ToUpper(w))
		}
	}
}

func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	WithStopWords(DefaultStopWords)(e)
	WithFoodWords(DefaultFoodWords)(e)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Derive runs the name and date heuristics over cleaned OCR output.
// lines are the recognized text lines in top-to-bottom order; text is the
// full recognized text (line breaks preserved for the name heuristic).
func (e *Extractor) Derive(text string, lines []string) Guess {
	seen := make(map[string]struct{})
	for _, l := range lines {
		if ymd := ParseDate(CleanText(l)); ymd != "" {
			seen[ymd] = struct{}{}
		}
	}

	// Earliest date wins: the soonest plausible date on packaging is most
	// often the true expiry. YYYY-MM-DD sorts chronologically.
	candidates := make([]string, 0, len(seen))
	for ymd := range seen {
		candidates = append(candidates, ymd)
	}
	sort.Strings(candidates)

	expiry := ""
	if len(candidates) > 0 {
		expiry = candidates[0]
	}

	return Guess{Name: e.guessName(CleanText(text)), Expiry: expiry}
}

var (
	reNumericYMD = regexp.MustCompile(`(\d{4})[-/](\d{1,2})[-/](\d{1,2})`)
	reNumericDMY = regexp.MustCompile(`(\d{1,2})[-/](\d{1,2})[-/](\d{2,4})`)
	reKeyword    = regexp.MustCompile(`(?i)\b(?:use\s*by|best\s*before|expiry|exp|bb|bbd)[:\s-]*([A-Za-z0-9/.\-\s]+)`)
	reDotted     = regexp.MustCompile(`^(\d{2,4})\.(\d{1,2})\.(\d{1,2})$`)
	reTailJunk   = regexp.MustCompile(`[^\w/.\-\s]`)
)

// keywordLayouts are tried in order against the tail of a keyword-anchored
// phrase like "Best before 12 Dec 2025".
var keywordLayouts = []string{"2/1/06", "2/1/2006", "2 Jan 2006", "02-01-2006", "2006-01-02"}

// ParseDate extracts a date from one line of label text and returns it in
// canonical YYYY-MM-DD form, or "" when no pattern yields a real calendar
// date. Patterns are tried in a fixed order and the first match decides;
// dates that would roll over (Feb 30 and the like) are rejected, never
// silently normalized.
func ParseDate(line string) string {
	s := strings.TrimSpace(line)

	// 2025-12-12 or 2025/12/12
	if m := reNumericYMD.FindStringSubmatch(s); m != nil {
		return formatYMD(atoi(m[1]), atoi(m[2]), atoi(m[3]))
	}

	// 12/12/2025 or 12-12-2025: day-before-month first, then month-before-day.
	if m := reNumericDMY.FindStringSubmatch(s); m != nil {
		a, b, y := atoi(m[1]), atoi(m[2]), atoi(m[3])
		if y < 100 {
			y += 2000
		}
		if ymd := formatYMD(y, b, a); ymd != "" {
			return ymd
		}
		return formatYMD(y, a, b)
	}

	// "Use by 12 Dec 2025", "Best before 12/12/25"
	if m := reKeyword.FindStringSubmatch(s); m != nil {
		tail := strings.TrimSpace(reTailJunk.ReplaceAllString(m[1], " "))
		fields := strings.Fields(tail)
		if len(fields) > 4 {
			fields = fields[:4]
		}
		parts := strings.Join(fields, " ")
		for _, layout := range keywordLayouts {
			if d, err := time.Parse(layout, parts); err == nil {
				return d.Format("2006-01-02")
			}
		}
	}

	// 25.10.19 (YY.MM.DD) or 2025.10.19 (YYYY.MM.DD); 2-digit years are 20xx.
	if m := reDotted.FindStringSubmatch(s); m != nil {
		y := atoi(m[1])
		if len(m[1]) == 2 {
			y += 2000
		}
		return formatYMD(y, atoi(m[2]), atoi(m[3]))
	}

	return ""
}

// formatYMD renders a calendar date, or "" when the components do not
// round-trip (rolled-over days are rejected).
func formatYMD(y, m, d int) string {
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || int(t.Month()) != m || t.Day() != d {
		return ""
	}
	return t.Format("2006-01-02")
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

var (
	reDigitRun   = regexp.MustCompile(`\d{3,}`)
	reWordJunk   = regexp.MustCompile(`[^\w\s\-]`)
	rePureDigits = regexp.MustCompile(`^\d+$`)
)

// guessName prefers short producty phrases and avoids marketing and
// boilerplate lines. Candidates are scored +2 for foodish vocabulary plus
// 3-|tokens-2| (two-word phrases peak); ties go to the longer phrase.
func (e *Extractor) guessName(text string) string {
	bestScore := 0
	bestPhrase := ""
	found := false

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if reDigitRun.MatchString(line) {
			continue // likely a barcode or nutrition-table row
		}

		words := strings.Fields(reWordJunk.ReplaceAllString(line, " "))
		if len(words) == 0 || len(words) > 6 {
			continue
		}

		nonStop := make([]string, 0, len(words))
		for _, w := range words {
			u := strings.ToUpper(w)
			if _, isStop := e.stop[u]; isStop || rePureDigits.MatchString(u) {
				continue
			}
			nonStop = append(nonStop, u)
		}
		if len(nonStop) < 1 || len(nonStop) > 4 {
			continue
		}

		phrase := strings.Join(nonStop, " ")
		score := 3 - abs(len(nonStop)-2)
		if e.isFoodish(phrase) {
			score += 2
		}

		if !found || score > bestScore || (score == bestScore && len(phrase) > len(bestPhrase)) {
			found = true
			bestScore = score
			bestPhrase = phrase
		}
	}

	return titleCase(bestPhrase)
}

func (e *Extractor) isFoodish(phrase string) bool {
	for _, w := range e.foodish {
		if strings.Contains(phrase, w) {
			return true
		}
	}
	return false
}

func titleCase(s string) string {
	if s == "" {
		return ""
	}
	words := strings.Split(strings.ToLower(s), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
