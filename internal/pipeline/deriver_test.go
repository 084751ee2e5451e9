package pipeline

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"shotline/internal/domain"
	"shotline/internal/domain/models"
)

func testDeriver() *Deriver {
	d := NewDeriver(DefaultConventions())
	d.now = func() time.Time {
		return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	}
	return d
}

func TestCompScriptPathDerived(t *testing.T) {
	root := t.TempDir()
	d := testDeriver()
	project := &models.Project{FolderPath: root}
	shot := &models.Shot{Code: "DCP_01_beach_v003"}

	got, err := d.CompScriptPath(project, shot)
	if err != nil {
		t.Fatalf("CompScriptPath: %v", err)
	}
	want := filepath.Join(root, "Comp", "01", "DCP_01_beach_v003", "DCP_01_beach_v003_comp_v001.nk")
	if got != want {
		t.Errorf("path = %q, want %q", got, want)
	}

	// Directory is created, the script file is not.
	if _, err := os.Stat(filepath.Dir(got)); err != nil {
		t.Errorf("comp dir not created: %v", err)
	}
	if _, err := os.Stat(got); !os.IsNotExist(err) {
		t.Errorf("script file should not exist yet")
	}
}

func TestCompScriptPathStoredWins(t *testing.T) {
	d := testDeriver()
	shot := &models.Shot{Code: "DCP_01_x", NukePath: "/stored/path.nk"}

	for i := 0; i < 2; i++ {
		got, err := d.CompScriptPath(&models.Project{}, shot)
		if err != nil {
			t.Fatalf("CompScriptPath: %v", err)
		}
		if got != "/stored/path.nk" {
			t.Errorf("call %d: path = %q", i, got)
		}
	}
}

func TestCompScriptPathExplicitReelNormalized(t *testing.T) {
	root := t.TempDir()
	d := testDeriver()
	project := &models.Project{FolderPath: root}
	shot := &models.Shot{Code: "DCP_01_beach", Reel: "02"}

	got, err := d.CompScriptPath(project, shot)
	if err != nil {
		t.Fatalf("CompScriptPath: %v", err)
	}
	if !strings.Contains(got, filepath.Join("Comp", "Reel_02")) {
		t.Errorf("explicit reel not normalized: %q", got)
	}
}

func TestCompScriptPathNoRoot(t *testing.T) {
	d := testDeriver()
	_, err := d.CompScriptPath(&models.Project{}, &models.Shot{Code: "X_01_y"})
	if !errors.Is(err, domain.ErrConfiguration) {
		t.Errorf("err = %v, want configuration error", err)
	}
}

func TestGenerateNextCompScriptMonotonic(t *testing.T) {
	root := t.TempDir()
	d := testDeriver()
	project := &models.Project{FolderPath: root}
	shot := &models.Shot{Code: "DCP_01_beach"}

	want := []string{"_comp_v001.nk", "_comp_v002.nk", "_comp_v003.nk"}
	for i, suffix := range want {
		path, err := d.GenerateNextCompScript(project, shot)
		if err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
		if !strings.HasSuffix(path, suffix) {
			t.Errorf("call %d: path = %q, want suffix %q", i, path, suffix)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read script: %v", err)
		}
		if !strings.Contains(string(content), "# shot: DCP_01_beach") {
			t.Errorf("script header missing shot code: %q", content)
		}
		if !strings.Contains(string(content), "2024-03-15T10:30:00Z") {
			t.Errorf("script header missing timestamp: %q", content)
		}
	}
}

func TestGenerateNextCompScriptIgnoresForeignFiles(t *testing.T) {
	root := t.TempDir()
	d := testDeriver()
	project := &models.Project{FolderPath: root}
	shot := &models.Shot{Code: "DCP_01_beach"}

	dir := filepath.Join(root, "Comp", "01", "DCP_01_beach")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{
		"DCP_01_beach_comp_v007.nk",
		"OTHER_01_x_comp_v099.nk",
		"DCP_01_beach_comp_vXYZ.nk",
		"notes.txt",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	path, err := d.GenerateNextCompScript(project, shot)
	if err != nil {
		t.Fatalf("GenerateNextCompScript: %v", err)
	}
	if !strings.HasSuffix(path, "_comp_v008.nk") {
		t.Errorf("path = %q, want v008", path)
	}
}

func TestGenerateNextCompScriptNoRoot(t *testing.T) {
	d := testDeriver()
	_, err := d.GenerateNextCompScript(&models.Project{}, &models.Shot{Code: "X_01_y"})
	if !errors.Is(err, domain.ErrConfiguration) {
		t.Errorf("err = %v, want configuration error", err)
	}
}

func TestGenerateStandardStructure(t *testing.T) {
	root := t.TempDir()
	d := testDeriver()
	project := &models.Project{FolderPath: root}
	shot := &models.Shot{Code: "DCP_02_cliff"}

	created, errs := d.GenerateStandardStructure(project, shot)
	if len(errs) != 0 {
		t.Fatalf("errs = %v", errs)
	}
	if len(created) != len(DefaultConventions().StructureFolders) {
		t.Fatalf("created = %d folders", len(created))
	}

	want := filepath.Join(root, "Comps", "02", "DCP_02_cliff", "Roto")
	found := false
	for _, path := range created {
		if path == want {
			found = true
		}
		if info, err := os.Stat(path); err != nil || !info.IsDir() {
			t.Errorf("folder %q not created", path)
		}
	}
	if !found {
		t.Errorf("Roto folder missing from %v", created)
	}
}

func TestGenerateStandardStructureNoRoot(t *testing.T) {
	d := testDeriver()
	created, errs := d.GenerateStandardStructure(&models.Project{}, &models.Shot{Code: "X_01_y"})
	if len(created) != 0 {
		t.Errorf("created = %v, want none", created)
	}
	if len(errs) != 1 || !strings.Contains(errs[0].Error, "not configured") {
		t.Errorf("errs = %v, want single configuration error", errs)
	}
}

func TestDeliverToClient(t *testing.T) {
	root := t.TempDir()
	src := t.TempDir()
	d := testDeriver()

	mov := filepath.Join(src, "shot.mov")
	if err := os.WriteFile(mov, []byte("mov-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}
	exrDir := filepath.Join(src, "renders")
	if err := os.MkdirAll(exrDir, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"f0001.exr", "f0002.EXR", "skip.tmp"} {
		if err := os.WriteFile(filepath.Join(exrDir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	project := &models.Project{FolderPath: root}
	shot := &models.Shot{Code: "DCP_01_beach", MovPath: mov, ExrPath: exrDir}

	result, err := d.DeliverToClient(project, shot)
	if err != nil {
		t.Fatalf("DeliverToClient: %v", err)
	}

	wantTarget := filepath.Join(root, "Client", "20240315A")
	if result.TargetFolder != wantTarget {
		t.Errorf("target = %q, want %q", result.TargetFolder, wantTarget)
	}
	if len(result.Errors) != 0 {
		t.Errorf("errors = %v", result.Errors)
	}

	if result.MovCopied == nil {
		t.Fatal("mov not copied")
	}
	if data, err := os.ReadFile(*result.MovCopied); err != nil || string(data) != "mov-bytes" {
		t.Errorf("mov copy content: %q, %v", data, err)
	}

	if result.ExrCopied == nil {
		t.Fatal("exr not copied")
	}
	for _, name := range []string{"f0001.exr", "f0002.EXR"} {
		if _, err := os.Stat(filepath.Join(wantTarget, "EXR", name)); err != nil {
			t.Errorf("exr %q not copied: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(wantTarget, "EXR", "skip.tmp")); !os.IsNotExist(err) {
		t.Error("non-exr file copied")
	}
}

func TestDeliverToClientMissingSources(t *testing.T) {
	root := t.TempDir()
	d := testDeriver()
	project := &models.Project{FolderPath: root}
	shot := &models.Shot{Code: "DCP_01_beach", MovPath: "/does/not/exist.mov"}

	result, err := d.DeliverToClient(project, shot)
	if err != nil {
		t.Fatalf("DeliverToClient: %v", err)
	}
	if result.MovCopied != nil || result.ExrCopied != nil {
		t.Errorf("result = %+v, want nothing copied", result)
	}
	if len(result.Errors) != 0 {
		t.Errorf("missing sources are skipped, not errors: %v", result.Errors)
	}
}

func TestDeliverToClientNoRoot(t *testing.T) {
	d := testDeriver()
	_, err := d.DeliverToClient(&models.Project{}, &models.Shot{Code: "X"})
	if !errors.Is(err, domain.ErrConfiguration) {
		t.Errorf("err = %v, want configuration error", err)
	}
}

func TestLoadConventionsDefaultsAndOverrides(t *testing.T) {
	conv, err := LoadConventions("")
	if err != nil {
		t.Fatalf("LoadConventions: %v", err)
	}
	if conv.CompDirName != "Comp" || conv.DeliveryBatchSuffix != "A" {
		t.Errorf("defaults = %+v", conv)
	}

	path := filepath.Join(t.TempDir(), "conv.yaml")
	data := "delivery_batch_suffix: B\nstructure_folders:\n  - comp\n  - Roto\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	conv, err = LoadConventions(path)
	if err != nil {
		t.Fatalf("LoadConventions: %v", err)
	}
	if conv.DeliveryBatchSuffix != "B" {
		t.Errorf("suffix = %q", conv.DeliveryBatchSuffix)
	}
	if len(conv.StructureFolders) != 2 {
		t.Errorf("folders = %v", conv.StructureFolders)
	}
	if conv.CompDirName != "Comp" {
		t.Errorf("unset field lost default: %q", conv.CompDirName)
	}
}
