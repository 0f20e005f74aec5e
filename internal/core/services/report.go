package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/custodia-labs/docket-cli/internal/core/domain"
)

// reportTimeOffset shifts timestamps into the report audience's timezone
// (UTC+8). The generation timestamp and each document timestamp apply the
// offset independently, matching the upstream reports this one replaces.
const reportTimeOffset = 8 * time.Hour

// timestampLayout is the timestamp format used in report cells.
const timestampLayout = "2006-01-02 15:04:05"

// dateLayout is the date format used in report names.
const dateLayout = "20060102"

// Assembler renders fetched documents into the CSV report.
type Assembler struct {
	prefix string
}

// NewAssembler creates an assembler naming reports with the given prefix.
func NewAssembler(prefix string) *Assembler {
	return &Assembler{prefix: prefix}
}

// ReportName returns "<prefix>_<YYYYMMDD>.csv" using the shifted date of now.
func (a *Assembler) ReportName(now time.Time) string {
	date := now.UTC().Add(reportTimeOffset).Format(dateLayout)
	return fmt.Sprintf("%s_%s.csv", a.prefix, date)
}

// Rows maps documents onto report rows. Attributes absent at the source
// render as empty cells, and a document whose directory is not in the
// table gets an empty folder.
func (a *Assembler) Rows(docs []domain.Record, table *domain.PathTable, now time.Time) []domain.ReportRow {
	exportedAt := now.UTC().Add(reportTimeOffset).Format(timestampLayout)

	rows := make([]domain.ReportRow, 0, len(docs))
	for _, doc := range docs {
		name, _ := doc.StringAttr("name")
		rows = append(rows, domain.ReportRow{
			ExportedAt: exportedAt,
			ID:         doc.ID,
			Folder:     folderPath(doc, table),
			Name:       name,
			CreatedAt:  timestampCell(doc, "created_at"),
			UpdatedAt:  timestampCell(doc, "updated_at"),
			Starred:    starredCell(doc),
			Views:      counterCell(doc, "view_count"),
			Likes:      counterCell(doc, "like_count"),
			Reads:      statsCell(doc, "read_count"),
			Comments:   statsCell(doc, "comment_count"),
		})
	}
	return rows
}

// CSV renders the header and rows as a CSV document.
func (a *Assembler) CSV(rows []domain.ReportRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(domain.ReportColumns()); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row.Strings()); err != nil {
			return nil, fmt.Errorf("write row %s: %w", row.ID, err)
		}
	}
	w.Flush()

	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush report: %w", err)
	}
	return buf.Bytes(), nil
}

// timestampCell formats an epoch-seconds attribute with the report offset.
func timestampCell(doc domain.Record, attr string) string {
	t, ok := doc.TimeAttr(attr)
	if !ok {
		return ""
	}
	return t.Add(reportTimeOffset).Format(timestampLayout)
}

// starredCell renders the star flag; an absent flag counts as not starred.
func starredCell(doc domain.Record) string {
	if starred, _ := doc.BoolAttr("starred"); starred {
		return "Yes"
	}
	return "No"
}

// counterCell renders a numeric attribute, empty when absent.
func counterCell(doc domain.Record, attr string) string {
	n, ok := doc.Int64Attr(attr)
	if !ok {
		return ""
	}
	return strconv.FormatInt(n, 10)
}

// statsCell renders a counter from the document's resolved stats record.
func statsCell(doc domain.Record, attr string) string {
	n, ok := doc.Related("stats").Int64Attr(attr)
	if !ok {
		return ""
	}
	return strconv.FormatInt(n, 10)
}

// folderPath resolves the document's directory reference through the table.
func folderPath(doc domain.Record, table *domain.PathTable) string {
	ref := doc.Related("directory")
	if ref == nil || table == nil {
		return ""
	}
	return table.Lookup(ref.ID)
}
