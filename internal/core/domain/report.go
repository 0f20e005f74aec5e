package domain

// ReportColumns returns the report header in output order.
func ReportColumns() []string {
	return []string{
		"exported_at",
		"id",
		"folder",
		"name",
		"created_at",
		"updated_at",
		"starred",
		"views",
		"likes",
		"reads",
		"comments",
	}
}

// ReportRow is one rendered line of the export report.
// Every value is already formatted; fields absent at the source
// render as empty strings rather than failing the row.
type ReportRow struct {
	// ExportedAt is the report generation timestamp.
	ExportedAt string

	// ID is the document identifier.
	ID string

	// Folder is the document's directory path, empty when unknown.
	Folder string

	// Name is the document's display name.
	Name string

	// CreatedAt is the document creation time.
	CreatedAt string

	// UpdatedAt is the document's last update time.
	UpdatedAt string

	// Starred is "Yes" or "No".
	Starred string

	// Views is the view counter.
	Views string

	// Likes is the like counter.
	Likes string

	// Reads is the read counter from the document's stats.
	Reads string

	// Comments is the comment counter from the document's stats.
	Comments string
}

// Strings returns the row values in ReportColumns order.
func (r ReportRow) Strings() []string {
	return []string{
		r.ExportedAt,
		r.ID,
		r.Folder,
		r.Name,
		r.CreatedAt,
		r.UpdatedAt,
		r.Starred,
		r.Views,
		r.Likes,
		r.Reads,
		r.Comments,
	}
}
