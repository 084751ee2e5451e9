package shotcsv

import (
	"regexp"
	"strings"
)

// sampleLimit bounds how many leading data rows the positional
// heuristics look at.
const sampleLimit = 6

var (
	digitRun   = regexp.MustCompile(`^\d+$`)
	plainInt   = regexp.MustCompile(`^(0|[1-9]\d*)$`)
	reelValue  = regexp.MustCompile(`^[A-Za-z0-9_-]{1,8}$`)
	isoDate    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	alphaAnyRe = regexp.MustCompile(`[A-Za-z]`)
)

// Source describes where a canonical field comes from: a named header
// column or a zero-based positional column.
type Source struct {
	Header string
	Pos    int // valid only when Header is empty
}

// Mapping is the shared column-mapping decision used by both the
// importer and the previewer. It is computed once per file from the raw
// records and then applied to every row.
type Mapping struct {
	HasHeaders bool
	Headers    []string

	headerIndex map[string]int // lowered+trimmed header -> column
	slots       map[Field]int  // positional column per field
}

// InferMapping inspects the raw CSV records and decides how canonical
// fields map onto columns. The first record is treated as a header row
// when any of its cells spells a known field alias; otherwise columns
// are positional, adjusted by the index-column and reel-column
// heuristics.
func InferMapping(records [][]string) *Mapping {
	m := &Mapping{
		headerIndex: make(map[string]int),
		slots:       make(map[Field]int),
	}
	if len(records) == 0 {
		return m
	}

	first := records[0]
	for _, cell := range first {
		if knownHeaders[normalizeHeader(cell)] {
			m.HasHeaders = true
			break
		}
	}

	if m.HasHeaders {
		m.Headers = first
		for i, h := range first {
			key := normalizeHeader(h)
			if key == "" {
				continue
			}
			if _, taken := m.headerIndex[key]; !taken {
				m.headerIndex[key] = i
			}
		}
		return m
	}

	sample := sampleRows(records, sampleLimit)
	shift := detectIndexColumn(sample)
	reelCol := detectReelColumn(sample, shift)
	m.assignSlots(shift, reelCol)
	return m
}

// normalizeHeader folds a header cell into alias form: trimmed,
// lowercased, spaces turned into underscores.
func normalizeHeader(cell string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(cell)), " ", "_")
}

// sampleRows returns up to limit leading rows that have at least one
// non-blank cell.
func sampleRows(records [][]string, limit int) [][]string {
	var sample [][]string
	for _, row := range records {
		if rowEmpty(row) {
			continue
		}
		sample = append(sample, row)
		if len(sample) == limit {
			break
		}
	}
	return sample
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// detectIndexColumn returns 1 when the leading column looks like a
// spreadsheet row index (purely numeric in at least n-1 of the sampled
// rows), shifting every positional field right by one.
func detectIndexColumn(sample [][]string) int {
	if len(sample) == 0 {
		return 0
	}
	numeric := 0
	for _, row := range sample {
		if len(row) > 0 && digitRun.MatchString(strings.TrimSpace(row[0])) {
			numeric++
		}
	}
	if numeric >= 1 && numeric >= len(sample)-1 {
		return 1
	}
	return 0
}

// detectReelColumn scans columns after the code column (left to right,
// within the first sampleLimit columns past the index shift) for one
// whose values look like reel labels: short alphanumeric tokens that
// are neither dates nor plain integers. Zero-padded numbers like "01"
// count as reel labels, plain counters like "1" do not. A column needs
// at least two sampled values to be judged either way; the first
// decidable column settles the question, since a reel column can only
// sit directly between the code and the remaining fields. That means
// the scan stops at a decidable non-qualifying column rather than
// continuing to a later qualifying one: treating, say, a short artist
// login three columns over as the reel would shift every field after
// it. Returns -1 when no column qualifies.
func detectReelColumn(sample [][]string, shift int) int {
	for col := shift + 1; col < shift+sampleLimit; col++ {
		values := 0
		matches := 0
		for _, row := range sample {
			if col >= len(row) {
				continue
			}
			v := strings.TrimSpace(row[col])
			if v == "" {
				continue
			}
			values++
			if reelValue.MatchString(v) && !isoDate.MatchString(v) && !plainInt.MatchString(v) {
				matches++
			}
		}
		if values < 2 {
			continue
		}
		if float64(matches) >= 0.6*float64(values) {
			return col
		}
		return -1
	}
	return -1
}

// assignSlots lays the canonical field order onto columns. The reel
// slot is only present when the heuristic found a reel-like column;
// fields after it shift to the following columns.
func (m *Mapping) assignSlots(shift, reelCol int) {
	col := shift
	for _, f := range canonicalFields {
		if f == FieldReel {
			if reelCol >= 0 {
				m.slots[FieldReel] = reelCol
				col = reelCol + 1
			}
			continue
		}
		m.slots[f] = col
		col++
	}
}

// Resolve extracts every canonical field from one data row. Unmatched
// fields resolve to empty strings; defaulting (status) and version
// auto-fill happen in ExtractRows.
func (m *Mapping) Resolve(row []string) map[Field]string {
	out := make(map[Field]string, len(canonicalFields))
	for _, f := range canonicalFields {
		out[f] = m.resolveField(f, row)
	}
	return out
}

func (m *Mapping) resolveField(f Field, row []string) string {
	if m.HasHeaders {
		// First alias with a non-empty value wins.
		for _, alias := range fieldAliases[f] {
			col, ok := m.headerIndex[alias]
			if !ok || col >= len(row) {
				continue
			}
			if v := strings.TrimSpace(row[col]); v != "" {
				return v
			}
		}
		return ""
	}
	col, ok := m.slots[f]
	if !ok || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// SourceFor reports where a field would be read from, or nil when the
// mapping has no source for it. Used by the previewer.
func (m *Mapping) SourceFor(f Field) *Source {
	if m.HasHeaders {
		for _, alias := range fieldAliases[f] {
			if col, ok := m.headerIndex[alias]; ok {
				return &Source{Header: m.Headers[col]}
			}
		}
		return nil
	}
	if col, ok := m.slots[f]; ok {
		return &Source{Pos: col}
	}
	return nil
}

// CodeResolvable reports whether the mapping can produce a shot code at
// all, which is the minimum for an import to make sense.
func (m *Mapping) CodeResolvable() bool {
	return m.SourceFor(FieldCode) != nil
}
