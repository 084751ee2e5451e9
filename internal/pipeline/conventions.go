// Package pipeline derives the convention-based filesystem layout for
// comp scripts, shot working folders and client deliveries.
package pipeline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Conventions are the studio folder-naming rules. They are resolved
// once at startup (optionally from a YAML file) and injected; nothing
// reads them from ambient state afterwards.
type Conventions struct {
	// CompDirName is the per-reel comp-script tree, e.g. <root>/Comp.
	CompDirName string `yaml:"comp_dir"`
	// StructureDirName is the shot working tree, e.g. <root>/Comps.
	StructureDirName string `yaml:"structure_dir"`
	// ClientDirName holds dated delivery batches, e.g. <root>/Client.
	ClientDirName string `yaml:"client_dir"`
	// StructureFolders are created under each shot's working folder.
	StructureFolders []string `yaml:"structure_folders"`
	// DeliveryBatchSuffix is the fixed per-day batch label appended to
	// the YYYYMMDD delivery folder name.
	DeliveryBatchSuffix string `yaml:"delivery_batch_suffix"`
}

// DefaultConventions returns the studio defaults.
func DefaultConventions() Conventions {
	return Conventions{
		CompDirName:      "Comp",
		StructureDirName: "Comps",
		ClientDirName:    "Client",
		StructureFolders: []string{
			"Annotations", "CG Assets", "comp", "DeNoise",
			"MM", "Paint", "precomp", "Roto",
		},
		DeliveryBatchSuffix: "A",
	}
}

// LoadConventions reads a YAML conventions file, filling omitted fields
// from the defaults. An empty path returns the defaults unchanged.
func LoadConventions(path string) (Conventions, error) {
	conv := DefaultConventions()
	if path == "" {
		return conv, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return conv, fmt.Errorf("read conventions file: %w", err)
	}

	var loaded Conventions
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return conv, fmt.Errorf("parse conventions file: %w", err)
	}

	if loaded.CompDirName != "" {
		conv.CompDirName = loaded.CompDirName
	}
	if loaded.StructureDirName != "" {
		conv.StructureDirName = loaded.StructureDirName
	}
	if loaded.ClientDirName != "" {
		conv.ClientDirName = loaded.ClientDirName
	}
	if len(loaded.StructureFolders) > 0 {
		conv.StructureFolders = loaded.StructureFolders
	}
	if loaded.DeliveryBatchSuffix != "" {
		conv.DeliveryBatchSuffix = loaded.DeliveryBatchSuffix
	}
	return conv, nil
}
