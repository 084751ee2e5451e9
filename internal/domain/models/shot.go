package models

import (
	"encoding/json"
	"time"

	"shotline/internal/shotcode"
)

// Shot is one tracked unit of work within a project, identified by a
// project-unique code.
type Shot struct {
	ID          string    `json:"id" db:"id"`
	ProjectID   string    `json:"project_id" db:"project_id"`
	Code        string    `json:"code" db:"code"`
	Reel        string    `json:"reel" db:"reel"`
	Description string    `json:"description" db:"description"`
	AssignedTo  string    `json:"assigned_to" db:"assigned_to"`
	StartDate   string    `json:"start_date" db:"start_date"`
	DueDate     string    `json:"due_date" db:"due_date"`
	Status      string    `json:"status" db:"status"`
	PlatePath   string    `json:"plate_path" db:"plate_path"`
	MovPath     string    `json:"mov_path" db:"mov_path"`
	ExrPath     string    `json:"exr_path" db:"exr_path"`
	Version     string    `json:"version" db:"version"`
	NukePath    string    `json:"nuke_path" db:"nuke_path"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// DisplayVersion is the version label shown to clients: derived from
// the code when it carries a version marker, else the stored field.
// Recomputed on every call since codes are editable.
func (s *Shot) DisplayVersion() string {
	return shotcode.ExtractVersion(s.Code, s.Version)
}

// MarshalJSON emits the derived version label instead of the stored
// one so the API and the CSV export always agree.
func (s Shot) MarshalJSON() ([]byte, error) {
	type alias Shot
	return json.Marshal(struct {
		alias
		Version string `json:"version"`
	}{alias(s), s.DisplayVersion()})
}
