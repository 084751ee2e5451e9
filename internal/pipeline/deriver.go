package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"shotline/internal/domain"
	"shotline/internal/domain/models"
	"shotline/internal/shotcode"
)

// Deriver computes deterministic shot paths under a project's root
// folder and performs the associated filesystem side effects.
type Deriver struct {
	conv Conventions
	now  func() time.Time
}

// NewDeriver creates a deriver with the given conventions.
func NewDeriver(conv Conventions) *Deriver {
	return &Deriver{conv: conv, now: time.Now}
}

// DeliveryResult reports what a client delivery copied. MovCopied and
// ExrCopied are nil when the corresponding source was absent.
type DeliveryResult struct {
	MovCopied    *string            `json:"mov_copied"`
	ExrCopied    *string            `json:"exr_copied"`
	TargetFolder string             `json:"target_folder"`
	Errors       []domain.ItemError `json:"errors"`
}

func rootFolder(project *models.Project) (string, error) {
	if strings.TrimSpace(project.FolderPath) == "" {
		return "", &domain.ConfigurationError{Message: "project folder_path not configured"}
	}
	return project.FolderPath, nil
}

// compDir is the per-shot comp-script directory. The reel comes from
// the shot's explicit reel when present, else from the code's second
// segment; shotcode keeps that fallback identical across call sites.
func (d *Deriver) compDir(root string, shot *models.Shot) string {
	reel := shotcode.ResolveReel(shot.Reel, shot.Code)
	return filepath.Join(root, d.conv.CompDirName, reel, shot.Code)
}

// CompScriptPath returns the shot's comp-script path. A stored nuke
// path wins unchanged; otherwise the conventional v001 path is derived
// and its directory created (idempotent).
func (d *Deriver) CompScriptPath(project *models.Project, shot *models.Shot) (string, error) {
	if shot.NukePath != "" {
		return shot.NukePath, nil
	}

	root, err := rootFolder(project)
	if err != nil {
		return "", err
	}

	dir := d.compDir(root, shot)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.IOError{Path: dir, Err: err}
	}
	return filepath.Join(dir, shot.Code+"_comp_v001.nk"), nil
}

// GenerateNextCompScript writes a placeholder comp script with the next
// free version number for the shot and returns its path. Numbering
// scans the existing <code>_comp_v<NNN>.nk files and continues from the
// highest.
func (d *Deriver) GenerateNextCompScript(project *models.Project, shot *models.Shot) (string, error) {
	root, err := rootFolder(project)
	if err != nil {
		return "", err
	}

	dir := d.compDir(root, shot)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.IOError{Path: dir, Err: err}
	}

	next := d.nextCompVersion(dir, shot.Code)
	path := filepath.Join(dir, fmt.Sprintf("%s_comp_v%03d.nk", shot.Code, next))

	content := fmt.Sprintf("# Nuke placeholder\n# shot: %s\n# created: %sZ\n",
		shot.Code, d.now().UTC().Format("2006-01-02T15:04:05"))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", &domain.IOError{Path: path, Err: err}
	}
	return path, nil
}

func (d *Deriver) nextCompVersion(dir, code string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 1
	}

	max := 0
	prefix := code + "_comp_v"
	for _, entry := range entries {
		name := entry.Name()
		rest, ok := strings.CutPrefix(name, prefix)
		if !ok {
			continue
		}
		numPart, ok := strings.CutSuffix(rest, ".nk")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(numPart)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max + 1
}

// GenerateStandardStructure creates the fixed working-folder set under
// <root>/<structure>/<reel>/<code>/. Each folder attempt is
// independent; failures are collected per folder and never abort the
// rest. A missing project root yields no created folders and a single
// configuration error entry.
func (d *Deriver) GenerateStandardStructure(project *models.Project, shot *models.Shot) ([]string, []domain.ItemError) {
	created := []string{}
	errs := []domain.ItemError{}

	root, err := rootFolder(project)
	if err != nil {
		errs = append(errs, domain.ItemError{Name: d.conv.StructureDirName, Error: err.Error()})
		return created, errs
	}

	reel := shotcode.ResolveReel(shot.Reel, shot.Code)
	base := filepath.Join(root, d.conv.StructureDirName, reel, shot.Code)

	for _, folder := range d.conv.StructureFolders {
		path := filepath.Join(base, folder)
		if err := os.MkdirAll(path, 0o755); err != nil {
			errs = append(errs, domain.ItemError{Name: folder, Error: err.Error()})
			continue
		}
		created = append(created, path)
	}
	return created, errs
}

// DeliverToClient copies the shot's deliverables into the dated client
// batch folder: the mov file into MOV/, the exr file (or every .exr in
// the exr directory) into EXR/. Copy failures are collected per item.
func (d *Deriver) DeliverToClient(project *models.Project, shot *models.Shot) (*DeliveryResult, error) {
	root, err := rootFolder(project)
	if err != nil {
		return nil, err
	}

	batch := d.now().UTC().Format("20060102") + d.conv.DeliveryBatchSuffix
	target := filepath.Join(root, d.conv.ClientDirName, batch)
	movDir := filepath.Join(target, "MOV")
	exrDir := filepath.Join(target, "EXR")

	result := &DeliveryResult{TargetFolder: target, Errors: []domain.ItemError{}}

	for _, dir := range []string{movDir, exrDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, &domain.IOError{Path: dir, Err: err}
		}
	}

	if shot.MovPath != "" {
		if info, err := os.Stat(shot.MovPath); err == nil && info.Mode().IsRegular() {
			dest := filepath.Join(movDir, filepath.Base(shot.MovPath))
			if err := copyFile(shot.MovPath, dest); err != nil {
				result.Errors = append(result.Errors, domain.ItemError{Name: shot.MovPath, Error: err.Error()})
			} else {
				result.MovCopied = &dest
			}
		}
	}

	if shot.ExrPath != "" {
		switch info, err := os.Stat(shot.ExrPath); {
		case err != nil:
			// Source missing; nothing to copy.
		case info.IsDir():
			copied := d.copyExrDir(shot.ExrPath, exrDir, result)
			if copied {
				result.ExrCopied = &exrDir
			}
		case info.Mode().IsRegular():
			dest := filepath.Join(exrDir, filepath.Base(shot.ExrPath))
			if err := copyFile(shot.ExrPath, dest); err != nil {
				result.Errors = append(result.Errors, domain.ItemError{Name: shot.ExrPath, Error: err.Error()})
			} else {
				result.ExrCopied = &dest
			}
		}
	}

	return result, nil
}

// copyExrDir copies every *.exr file in src into dest, collecting
// per-file errors. Reports whether at least one file was copied.
func (d *Deriver) copyExrDir(src, dest string, result *DeliveryResult) bool {
	entries, err := os.ReadDir(src)
	if err != nil {
		result.Errors = append(result.Errors, domain.ItemError{Name: src, Error: err.Error()})
		return false
	}

	copied := false
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".exr") {
			continue
		}
		from := filepath.Join(src, entry.Name())
		to := filepath.Join(dest, entry.Name())
		if err := copyFile(from, to); err != nil {
			result.Errors = append(result.Errors, domain.ItemError{Name: from, Error: err.Error()})
			continue
		}
		copied = true
	}
	return copied
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
