package shotcsv

import (
	"strings"
	"testing"
)

func TestPreviewHeadered(t *testing.T) {
	data := strings.Join([]string{
		"shot_code,reel,desc,artist,due",
		"SH010,01,rough comp,jdoe,2024-02-01",
		"SH020,01,final comp,asmith,2024-02-01",
		"SH030,02,paint fix,jdoe,2024-02-01",
		"SH040,02,roto,asmith,2024-02-01",
	}, "\n")

	p, err := Preview([]byte(data))
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}

	if !p.HasHeaders {
		t.Error("has_headers = false")
	}
	if len(p.Headers) != 5 || p.Headers[0] != "shot_code" {
		t.Errorf("headers = %v", p.Headers)
	}
	if len(p.Sample) != 3 {
		t.Errorf("sample rows = %d, want 3", len(p.Sample))
	}
	if p.Sample[0][0] != "SH010" {
		t.Errorf("sample starts at %q, want first data row", p.Sample[0][0])
	}
	if !p.CodeFound {
		t.Error("code_found = false")
	}

	if got := p.SuggestedMapping["code"]; got != "shot_code" {
		t.Errorf("code mapping = %v", got)
	}
	if got := p.SuggestedMapping["description"]; got != "desc" {
		t.Errorf("description mapping = %v", got)
	}
	if got := p.SuggestedMapping["status"]; got != nil {
		t.Errorf("status mapping = %v, want nil", got)
	}
}

func TestPreviewHeaderless(t *testing.T) {
	data := strings.Join([]string{
		"1,SH010,01,rough comp,jdoe",
		"2,SH020,01,final comp,asmith",
	}, "\n")

	p, err := Preview([]byte(data))
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}

	// The display heuristic still flags the first row as header-like
	// (it contains letters), but the mapping and samples treat the
	// file as headerless.
	if !p.HasHeaders {
		t.Error("advisory has_headers = false, want true (row contains letters)")
	}
	if len(p.Headers) != 0 {
		t.Errorf("headers = %v, want empty", p.Headers)
	}
	if len(p.Sample) != 2 {
		t.Errorf("sample rows = %d, want 2", len(p.Sample))
	}

	code, ok := p.SuggestedMapping["code"].(map[string]int)
	if !ok || code["pos"] != 1 {
		t.Errorf("code mapping = %v, want {pos:1}", p.SuggestedMapping["code"])
	}
	reel, ok := p.SuggestedMapping["reel"].(map[string]int)
	if !ok || reel["pos"] != 2 {
		t.Errorf("reel mapping = %v, want {pos:2}", p.SuggestedMapping["reel"])
	}
	if !p.CodeFound {
		t.Error("code_found = false")
	}
}

func TestPreviewNumericOnly(t *testing.T) {
	p, err := Preview([]byte("100,200\n300,400\n"))
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if p.HasHeaders {
		t.Error("has_headers = true for all-numeric first row")
	}
}

func TestPreviewEmpty(t *testing.T) {
	p, err := Preview([]byte(""))
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if p.HasHeaders || len(p.Sample) != 0 || p.CodeFound {
		t.Errorf("empty preview = %+v", p)
	}
}
