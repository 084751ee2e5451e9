package shotcsv

import "strings"

// PreviewResult is the non-mutating import preview returned to the
// client before it commits anything. SuggestedMapping values are either
// a header name (string), a positional descriptor {"pos": n}, or nil.
type PreviewResult struct {
	HasHeaders       bool           `json:"has_headers"`
	Headers          []string       `json:"headers"`
	Sample           [][]string     `json:"sample"`
	SuggestedMapping map[string]any `json:"suggested_mapping"`
	CodeFound        bool           `json:"code_found"`
}

const previewSampleRows = 3

// Preview inspects a CSV upload and proposes a field mapping without
// touching the database. It shares the alias table and positional
// heuristics with the importer so that what the preview promises is
// what the import does. The reported has_headers flag itself is the
// looser display heuristic: the first row counts as headers when any
// cell contains a letter.
func Preview(data []byte) (*PreviewResult, error) {
	records, err := Parse(data)
	if err != nil {
		return nil, err
	}

	m := InferMapping(records)

	result := &PreviewResult{
		Headers:          []string{},
		Sample:           [][]string{},
		SuggestedMapping: make(map[string]any, len(canonicalFields)),
		CodeFound:        m.CodeResolvable(),
	}

	if len(records) > 0 {
		result.HasHeaders = rowHasAlpha(records[0])
	}
	if m.HasHeaders {
		result.Headers = records[0]
	}

	start := 0
	if m.HasHeaders {
		start = 1
	}
	for i := start; i < len(records) && len(result.Sample) < previewSampleRows; i++ {
		if rowEmpty(records[i]) {
			continue
		}
		result.Sample = append(result.Sample, records[i])
	}

	for _, f := range canonicalFields {
		src := m.SourceFor(f)
		switch {
		case src == nil:
			result.SuggestedMapping[string(f)] = nil
		case src.Header != "":
			result.SuggestedMapping[string(f)] = src.Header
		default:
			result.SuggestedMapping[string(f)] = map[string]int{"pos": src.Pos}
		}
	}

	return result, nil
}

func rowHasAlpha(row []string) bool {
	for _, cell := range row {
		if alphaAnyRe.MatchString(strings.TrimSpace(cell)) {
			return true
		}
	}
	return false
}
