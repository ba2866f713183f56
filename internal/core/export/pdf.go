package export

import (
	"bytes"
	"fmt"
	"time"

	"hourglass/internal/core/reporting"
	"hourglass/internal/core/timesheet"
	perr "hourglass/internal/platform/errors"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

const (
	pageMargin = 12.0
	rowHeight  = 6.0
)

// core fonts only know cp1252
var cp1252 = encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())

func latin(s string) string {
	out, err := cp1252.String(s)
	if err != nil {
		return s
	}
	return out
}

type column struct {
	title string
	width float64
	align string
	cell  func(e timesheet.TimeEntry) string
}

func (d Document) layout() []column {
	cols := []column{}
	if d.Shows(ColumnDate) {
		cols = append(cols, column{"Date", 24, "L", func(e timesheet.TimeEntry) string { return e.Date.Format(time.DateOnly) }})
	}
	if d.Report.Dimension == nil || d.Report.Dimension.ID() != reporting.GroupByMember {
		cols = append(cols, column{"Member", 36, "L", func(e timesheet.TimeEntry) string {
			if e.Member == nil {
				return ""
			}
			return e.Member.FullName
		}})
	}
	if d.Report.Dimension == nil || d.Report.Dimension.ID() != reporting.GroupByProject {
		cols = append(cols, column{"Project", 36, "L", func(e timesheet.TimeEntry) string {
			if e.Project == nil {
				return ""
			}
			return e.Project.Name
		}})
	}
	cols = append(cols, column{"Task", 26, "L", func(e timesheet.TimeEntry) string {
		if e.TaskType == nil {
			return ""
		}
		return e.TaskType.Name
	}})
	if d.Shows(ColumnNotes) {
		cols = append(cols, column{"Notes", 60, "L", func(e timesheet.TimeEntry) string { return e.Description }})
	}
	if d.Shows(ColumnStartFinish) {
		cols = append(cols, column{"Start", 16, "C", func(e timesheet.TimeEntry) string { return clock(e.TimeFrom) }})
		cols = append(cols, column{"Finish", 16, "C", func(e timesheet.TimeEntry) string { return clock(e.TimeTo) }})
	}
	cols = append(cols, column{"Actual", 20, "R", func(e timesheet.TimeEntry) string { return hours(e.Actual) }})
	if d.Shows(ColumnEstimatedTime) {
		cols = append(cols, column{"Estimated", 22, "R", func(e timesheet.TimeEntry) string { return hours(e.Estimated) }})
	}
	return cols
}

// Render draws one table per group followed by the grand total
func (PDF) Render(doc Document) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	title := FileName(doc.Brand, doc.SingleProject, doc.From, doc.To, PDF{})
	pdf.SetTitle(title, true)
	pdf.SetCreator(doc.Brand, true)
	if !doc.GeneratedAt.IsZero() {
		pdf.SetCreationDate(doc.GeneratedAt)
		pdf.SetModificationDate(doc.GeneratedAt)
	}
	pdf.AddPage()

	heading := doc.Brand + " Reports"
	if doc.SingleProject != "" {
		heading = doc.Brand + " " + doc.SingleProject
	}
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, latin(heading), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, rowHeight, fmt.Sprintf("%s - %s", doc.From.Format("Jan 2, 2006"), doc.To.Format("Jan 2, 2006")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	cols := doc.layout()
	dimension := "Group"
	if doc.Report.Dimension != nil {
		dimension = doc.Report.Dimension.Name()
	}
	if len(doc.Report.Groups) == 0 {
		pdf.CellFormat(0, rowHeight, "No time entries for this period.", "", 1, "L", false, 0, "")
	}
	for _, g := range doc.Report.Groups {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 8, latin(dimension+": "+g.Key.Name), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for _, c := range cols {
			pdf.CellFormat(c.width, rowHeight, c.title, "1", 0, c.align, true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 9)
		for _, e := range g.Entries {
			for _, c := range cols {
				pdf.CellFormat(c.width, rowHeight, fit(pdf, latin(c.cell(e)), c.width), "1", 0, c.align, false, 0, "")
			}
			pdf.Ln(-1)
		}
		totalRow(pdf, cols, "Total", g.Totals, doc.Shows(ColumnEstimatedTime))
		pdf.Ln(3)
	}
	totalRow(pdf, cols, "Grand Total", doc.Report.Totals, doc.Shows(ColumnEstimatedTime))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "render pdf")
	}
	return buf.Bytes(), nil
}

func totalRow(pdf *fpdf.Fpdf, cols []column, label string, t reporting.Totals, estimated bool) {
	pdf.SetFont("Helvetica", "B", 9)
	var lead float64
	tail := 1
	if estimated {
		tail = 2
	}
	for _, c := range cols[:len(cols)-tail] {
		lead += c.width
	}
	pdf.CellFormat(lead, rowHeight, label, "1", 0, "R", false, 0, "")
	pdf.CellFormat(cols[len(cols)-tail].width, rowHeight, hours(t.Actual), "1", 0, "R", false, 0, "")
	if estimated {
		pdf.CellFormat(cols[len(cols)-1].width, rowHeight, hours(t.Estimated), "1", 0, "R", false, 0, "")
	}
	pdf.Ln(-1)
}

// fit trims an already encoded single-byte string until it fits in width
func fit(pdf *fpdf.Fpdf, s string, width float64) string {
	limit := width - 2
	if pdf.GetStringWidth(s) <= limit {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > limit {
		s = s[:len(s)-1]
	}
	return s + "..."
}

func hours(d time.Duration) string {
	m := int(d.Round(time.Minute) / time.Minute)
	return fmt.Sprintf("%d:%02d", m/60, m%60)
}

func clock(secs int) string {
	return fmt.Sprintf("%02d:%02d", secs/3600, secs%3600/60)
}
