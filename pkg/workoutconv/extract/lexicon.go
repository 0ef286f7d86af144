// Package extract finds workout sections in a sheet grid, classifies them and
// builds typed templates from their rows.
package extract

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/oldmanchan-jpg/workout-tracker/pkg/workoutconv/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// KindRule maps a workout kind to the title keywords that select it.
type KindRule struct {
	Kind     models.Kind `yaml:"kind"`
	Keywords []string    `yaml:"keywords"`
}

// Lexicon holds every keyword the extractors recognize, one entry per
// language variant. Adding a language means extending these tables.
type Lexicon struct {
	// DayMarkers are the words for "day" that open a day header.
	DayMarkers []string `yaml:"day_markers"`
	// CanonicalDay replaces whichever day marker matched in section titles.
	CanonicalDay string `yaml:"canonical_day"`
	// Kinds are evaluated in order; the first rule with a matching keyword wins.
	Kinds []KindRule `yaml:"kinds"`
	// DefaultKind applies when no rule matches.
	DefaultKind models.Kind `yaml:"default_kind"`

	WarmupMarkers   []string `yaml:"warmup_markers"`
	MainMarkers     []string `yaml:"main_markers"`
	CooldownMarkers []string `yaml:"cooldown_markers"`
	ColumnHeaders   []string `yaml:"column_headers"`

	DurationMarkers []string `yaml:"duration_markers"`
	MinuteAMarkers  []string `yaml:"minute_a_markers"`
	MinuteBMarkers  []string `yaml:"minute_b_markers"`
	ExtraMarkers    []string `yaml:"extra_markers"`

	RoundUnits []string `yaml:"round_units"`
	RestUnits  []string `yaml:"rest_units"`

	// HeaderSearchRows bounds the strength column-header lookup.
	HeaderSearchRows int `yaml:"header_search_rows"`
}

// DefaultLexicon returns the English/Italian keyword tables.
func DefaultLexicon() Lexicon {
	return Lexicon{
		DayMarkers:   []string{"DAY", "GIORNO"},
		CanonicalDay: "DAY",
		Kinds: []KindRule{
			{Kind: models.KindInterval, Keywords: []string{"EMOM"}},
			{Kind: models.KindCircuit, Keywords: []string{"CIRCUIT", "CIRCUITO"}},
			{Kind: models.KindStrength, Keywords: []string{"STRENGTH", "FORZA"}},
		},
		DefaultKind:      models.KindStrength,
		WarmupMarkers:    []string{"RISCALDAMENTO", "WARM-UP"},
		MainMarkers:      []string{"ALLENAMENTO PRINCIPALE", "MAIN WORKOUT"},
		CooldownMarkers:  []string{"COOL-DOWN", "DEFATICAMENTO"},
		ColumnHeaders:    []string{"EXERCISE SELECTION", "ESERCIZIO / SEZIONE"},
		DurationMarkers:  []string{"EMOM"},
		MinuteAMarkers:   []string{"Minuto A"},
		MinuteBMarkers:   []string{"Minuto B"},
		ExtraMarkers:     []string{"Extra"},
		RoundUnits:       []string{"ROUND"},
		RestUnits:        []string{"sec"},
		HeaderSearchRows: 6,
	}
}

// Extend adds the entries of other to l. Kind rules with a known kind gain
// keywords; rules for new kinds are appended after the existing ones. Scalar
// fields of other replace l's when set.
func (l Lexicon) Extend(other Lexicon) Lexicon {
	out := l
	out.DayMarkers = union(l.DayMarkers, other.DayMarkers)
	out.WarmupMarkers = union(l.WarmupMarkers, other.WarmupMarkers)
	out.MainMarkers = union(l.MainMarkers, other.MainMarkers)
	out.CooldownMarkers = union(l.CooldownMarkers, other.CooldownMarkers)
	out.ColumnHeaders = union(l.ColumnHeaders, other.ColumnHeaders)
	out.DurationMarkers = union(l.DurationMarkers, other.DurationMarkers)
	out.MinuteAMarkers = union(l.MinuteAMarkers, other.MinuteAMarkers)
	out.MinuteBMarkers = union(l.MinuteBMarkers, other.MinuteBMarkers)
	out.ExtraMarkers = union(l.ExtraMarkers, other.ExtraMarkers)
	out.RoundUnits = union(l.RoundUnits, other.RoundUnits)
	out.RestUnits = union(l.RestUnits, other.RestUnits)

	out.Kinds = make([]KindRule, len(l.Kinds))
	for i, r := range l.Kinds {
		out.Kinds[i] = KindRule{Kind: r.Kind, Keywords: slices.Clone(r.Keywords)}
	}
	for _, r := range other.Kinds {
		idx := slices.IndexFunc(out.Kinds, func(k KindRule) bool { return k.Kind == r.Kind })
		if idx < 0 {
			out.Kinds = append(out.Kinds, KindRule{Kind: r.Kind, Keywords: slices.Clone(r.Keywords)})
			continue
		}
		out.Kinds[idx].Keywords = union(out.Kinds[idx].Keywords, r.Keywords)
	}

	if other.CanonicalDay != "" {
		out.CanonicalDay = other.CanonicalDay
	}
	if other.DefaultKind != "" {
		out.DefaultKind = other.DefaultKind
	}
	if other.HeaderSearchRows > 0 {
		out.HeaderSearchRows = other.HeaderSearchRows
	}
	return out
}

// Rules is a compiled Lexicon. It is immutable and safe for concurrent use.
type Rules struct {
	lex Lexicon

	dayHeader *regexp.Regexp
	duration  *regexp.Regexp
	minuteA   *regexp.Regexp
	minuteB   *regexp.Regexp
	extra     *regexp.Regexp
	stripA    *regexp.Regexp
	stripB    *regexp.Regexp
	stripX    *regexp.Regexp
	rounds    *regexp.Regexp
	rest      *regexp.Regexp
	station   *regexp.Regexp

	kinds    []KindRule
	warmup   []string
	main     []string
	cooldown []string
	headers  []string
}

// Compile validates the lexicon and builds its matchers.
func (l Lexicon) Compile() (*Rules, error) {
	if len(l.DayMarkers) == 0 {
		return nil, fmt.Errorf("lexicon: no day markers")
	}
	if l.CanonicalDay == "" {
		return nil, fmt.Errorf("lexicon: canonical day marker is empty")
	}
	if !l.DefaultKind.Valid() {
		return nil, fmt.Errorf("lexicon: invalid default kind %q", l.DefaultKind)
	}
	for _, r := range l.Kinds {
		if !r.Kind.Valid() {
			return nil, fmt.Errorf("lexicon: invalid kind %q", r.Kind)
		}
	}

	r := &Rules{
		lex:       l,
		dayHeader: regexp.MustCompile(`(?i)^(` + alternation(l.DayMarkers) + `)\s*(\d+)\s*-\s*(.+)$`),
		minuteA:   prefixPattern(l.MinuteAMarkers, `\b`),
		minuteB:   prefixPattern(l.MinuteBMarkers, `\b`),
		extra:     prefixPattern(l.ExtraMarkers, `\s*:`),
		stripA:    prefixPattern(l.MinuteAMarkers, `\b.*?\)\s*`),
		stripB:    prefixPattern(l.MinuteBMarkers, `\b.*?\)\s*`),
		stripX:    prefixPattern(l.ExtraMarkers, `\s*:\s*`),
		station:   regexp.MustCompile(`^\s*(\d+)\.\s*(.+)$`),
	}
	if len(l.DurationMarkers) > 0 {
		r.duration = regexp.MustCompile(`(?i)(?:` + alternation(l.DurationMarkers) + `)\s+(\d+)\s*MIN`)
	}
	if len(l.RoundUnits) > 0 {
		r.rounds = regexp.MustCompile(`(?i)(\d+)\s*(?:` + alternation(l.RoundUnits) + `)`)
	}
	if len(l.RestUnits) > 0 {
		r.rest = regexp.MustCompile(`(?i)(\d+)\s*(?:` + alternation(l.RestUnits) + `)`)
	}

	for _, k := range l.Kinds {
		r.kinds = append(r.kinds, KindRule{Kind: k.Kind, Keywords: upperAll(k.Keywords)})
	}
	r.warmup = upperAll(l.WarmupMarkers)
	r.main = upperAll(l.MainMarkers)
	r.cooldown = upperAll(l.CooldownMarkers)
	r.headers = upperAll(l.ColumnHeaders)
	return r, nil
}

// MustCompile is like Compile but panics on error.
func (l Lexicon) MustCompile() *Rules {
	r, err := l.Compile()
	if err != nil {
		panic(err)
	}
	return r
}

// DefaultRules returns the compiled default lexicon.
func DefaultRules() *Rules {
	return DefaultLexicon().MustCompile()
}

// Lexicon returns the tables the rules were compiled from.
func (r *Rules) Lexicon() Lexicon { return r.lex }

func (r *Rules) isWarmupMarker(a string) bool { return containsAny(upper(a), r.warmup) }
func (r *Rules) isMainMarker(a string) bool   { return containsAny(upper(a), r.main) }

func (r *Rules) isCooldownMarker(a string) bool {
	up := upper(a)
	for _, m := range r.cooldown {
		if strings.HasPrefix(up, m) {
			return true
		}
	}
	return false
}

func (r *Rules) isColumnHeader(a string) bool {
	return slices.Contains(r.headers, upper(strings.TrimSpace(a)))
}

// upper folds s with full Unicode case mapping. A Caser keeps state, so
// each call gets its own.
func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

func upperAll(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			out = append(out, upper(w))
		}
	}
	return out
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// alternation quotes each word and lets internal spaces match any run of
// whitespace.
func alternation(words []string) string {
	parts := make([]string, 0, len(words))
	for _, w := range words {
		fields := strings.Fields(w)
		if len(fields) == 0 {
			continue
		}
		for i, f := range fields {
			fields[i] = regexp.QuoteMeta(f)
		}
		parts = append(parts, strings.Join(fields, `\s*`))
	}
	return strings.Join(parts, "|")
}

// prefixPattern matches a row-leading marker followed by suffix. It returns
// nil when no markers are configured.
func prefixPattern(markers []string, suffix string) *regexp.Regexp {
	alt := alternation(markers)
	if alt == "" {
		return nil
	}
	return regexp.MustCompile(`(?i)^\s*(?:` + alt + `)` + suffix)
}

func union(a, b []string) []string {
	out := slices.Clone(a)
	for _, w := range b {
		if !slices.Contains(out, w) {
			out = append(out, w)
		}
	}
	return out
}
