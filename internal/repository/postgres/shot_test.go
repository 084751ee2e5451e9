package postgres

import (
	"fmt"
	"strings"
	"testing"
)

func TestBulkInsertQueryPlaceholders(t *testing.T) {
	query := bulkInsertQuery("vfx_shots", 3)

	if !strings.HasPrefix(query, "INSERT INTO vfx_shots (") {
		t.Fatalf("query = %q", query)
	}
	if got := strings.Count(query, "$"); got != 3*16 {
		t.Errorf("placeholder count = %d, want %d", got, 3*16)
	}
	if !strings.Contains(query, "$48)") {
		t.Errorf("last placeholder not $48: %q", query)
	}
}

func TestBulkInsertChunkWithinBindLimit(t *testing.T) {
	// Extended-protocol Bind carries the parameter count as an int16,
	// so a statement may never exceed 65535 parameters.
	if params := bulkInsertChunk * 16; params > 65535 {
		t.Fatalf("chunk of %d rows needs %d parameters", bulkInsertChunk, params)
	}

	query := bulkInsertQuery("vfx_shots", bulkInsertChunk)
	last := fmt.Sprintf("$%d)", bulkInsertChunk*16)
	if !strings.HasSuffix(query, last) {
		t.Errorf("full chunk query does not end with %s", last)
	}
}
