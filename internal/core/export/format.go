// Package export turns a grouped report into a downloadable file
package export

import (
	"time"

	"hourglass/internal/core/reporting"
	perr "hourglass/internal/platform/errors"
)

// FileTypeID is the stored file type selector
type FileTypeID int

const (
	FileTypeExcel FileTypeID = 0
	FileTypeCSV   FileTypeID = 1
	FileTypePDF   FileTypeID = 2
)

// Column is a show-column toggle
type Column int

const (
	ColumnEstimatedTime Column = iota + 1
	ColumnDate
	ColumnNotes
	ColumnStartFinish
)

var columnCaptions = map[Column]string{
	ColumnEstimatedTime: "Show Estimated Hours",
	ColumnDate:          "Show Date",
	ColumnNotes:         "Show Notes",
	ColumnStartFinish:   "Show Start/Finish Time",
}

// Caption is the dropdown label
func (c Column) Caption() string { return columnCaptions[c] }

// Columns lists the toggles in id order
func Columns() []Column {
	return []Column{ColumnEstimatedTime, ColumnDate, ColumnNotes, ColumnStartFinish}
}

// Document is everything a renderer needs
type Document struct {
	Brand         string
	SingleProject string // "" unless exactly one project was filtered
	From, To      time.Time
	Report        reporting.Report
	Columns       []Column
	GeneratedAt   time.Time
}

// Shows reports whether c was selected
func (d Document) Shows(c Column) bool {
	for _, x := range d.Columns {
		if x == c {
			return true
		}
	}
	return false
}

// Format is an output file kind. The set of implementations is closed.
type Format interface {
	ID() FileTypeID
	Extension() string
	ContentType() string
	// Deferred is true while the format renders an empty payload
	Deferred() bool
	Render(doc Document) ([]byte, error)
	sealed()
}

type (
	Excel struct{}
	CSV   struct{}
	PDF   struct{}
)

func (Excel) ID() FileTypeID { return FileTypeExcel }
func (CSV) ID() FileTypeID   { return FileTypeCSV }
func (PDF) ID() FileTypeID   { return FileTypePDF }

func (Excel) Extension() string { return ".xlsx" }
func (CSV) Extension() string   { return ".csv" }
func (PDF) Extension() string   { return ".pdf" }

func (Excel) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}
func (CSV) ContentType() string { return "application/csv" }
func (PDF) ContentType() string { return "application/pdf" }

func (Excel) Deferred() bool { return true }
func (CSV) Deferred() bool   { return true }
func (PDF) Deferred() bool   { return false }

// TODO: render real spreadsheets once the column layout for xlsx is agreed
func (Excel) Render(Document) ([]byte, error) { return []byte{}, nil }
func (CSV) Render(Document) ([]byte, error)   { return []byte{}, nil }

func (Excel) sealed() {}
func (CSV) sealed()   {}
func (PDF) sealed()   {}

// Formats lists every format in id order
func Formats() []Format { return []Format{Excel{}, CSV{}, PDF{}} }

// FormatByID resolves a selector; nil means Excel
func FormatByID(id *int) (Format, error) {
	if id == nil {
		return Excel{}, nil
	}
	for _, f := range Formats() {
		if int(f.ID()) == *id {
			return f, nil
		}
	}
	return nil, perr.InvalidArgf("unknown file type id %d", *id)
}

// FileName builds "<brand> <project|Reports> Jan 2 - Feb 3<ext>"
func FileName(brand, singleProject string, from, to time.Time, f Format) string {
	subject := "Reports"
	if singleProject != "" {
		subject = singleProject
	}
	return brand + " " + subject + " " + from.Format("Jan 2") + " - " + to.Format("Jan 2") + f.Extension()
}
