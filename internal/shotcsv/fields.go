package shotcsv

// Field is a canonical shot field name as used in CSV mapping.
type Field string

const (
	FieldCode        Field = "code"
	FieldReel        Field = "reel"
	FieldDescription Field = "description"
	FieldAssignedTo  Field = "assigned_to"
	FieldStartDate   Field = "start_date"
	FieldDueDate     Field = "due_date"
	FieldStatus      Field = "status"
	FieldPlatePath   Field = "plate_path"
	FieldMovPath     Field = "mov_path"
	FieldExrPath     Field = "exr_path"
	FieldVersion     Field = "version"
)

// DefaultStatus is applied when a row resolves no status value.
const DefaultStatus = "Not Started"

// canonicalFields is the positional column order for headerless files.
// Reel is optional in that order; the reel-column heuristic decides
// whether it occupies a column at all.
var canonicalFields = []Field{
	FieldCode,
	FieldReel,
	FieldDescription,
	FieldAssignedTo,
	FieldStartDate,
	FieldDueDate,
	FieldStatus,
	FieldPlatePath,
	FieldMovPath,
	FieldExrPath,
	FieldVersion,
}

// fieldAliases maps each canonical field to the accepted header
// spellings, in priority order. Header matching is case-insensitive
// after trimming.
var fieldAliases = map[Field][]string{
	FieldCode:        {"code", "shot_code", "shot", "shotcode"},
	FieldReel:        {"reel", "sequence", "seq"},
	FieldDescription: {"description", "desc", "notes"},
	FieldAssignedTo:  {"assigned_to", "artist", "assignee", "assigned"},
	FieldStartDate:   {"start_date", "start"},
	FieldDueDate:     {"due_date", "due", "deadline"},
	FieldStatus:      {"status"},
	FieldPlatePath:   {"plate_path", "plate"},
	FieldMovPath:     {"mov_path", "mov", "quicktime"},
	FieldExrPath:     {"exr_path", "exr"},
	FieldVersion:     {"version", "ver"},
}

// knownHeaders is the flattened alias set, used to decide whether the
// first record of a file is a header row.
var knownHeaders = func() map[string]bool {
	m := make(map[string]bool)
	for _, aliases := range fieldAliases {
		for _, a := range aliases {
			m[a] = true
		}
	}
	return m
}()
