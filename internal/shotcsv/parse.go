package shotcsv

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parse reads raw uploaded bytes as UTF-8 CSV. A leading byte-order
// mark is stripped and invalid byte sequences are replaced rather than
// rejected; only a structurally unreadable file fails.
func Parse(data []byte) ([][]string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	text := strings.ToValidUTF8(string(data), "�")

	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1 // rows may be ragged
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("decode csv: %w", err)
	}
	return records, nil
}
