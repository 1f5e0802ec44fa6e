package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/samparc/medical-api/internal/models"
)

// ReportService renders back-office listings as PDF documents.
type ReportService struct {
	hospitalName string
	now          func() time.Time
}

func NewReportService(hospitalName string) *ReportService {
	return &ReportService{hospitalName: hospitalName, now: time.Now}
}

var appointmentColumns = []struct {
	title string
	width float64
}{
	{"#", 12},
	{"Patient", 45},
	{"Phone", 32},
	{"Department", 38},
	{"Preferred", 25},
	{"Status", 25},
	{"Submitted", 35},
	{"Email", 65},
}

// AppointmentsPDF renders appointments as a landscape A4 table.
func (s *ReportService) AppointmentsPDF(appointments []models.Appointment) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 12)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-10)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 6, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "R", false, 0, "")
	})
	pdf.AddPage()

	// Title
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(0, 102, 128)
	pdf.CellFormat(0, 10, s.hospitalName+" - Appointments", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated %s - %d appointment(s)",
		s.now().Format("02 Jan 2006 15:04"), len(appointments)), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	header := func() {
		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(230, 240, 245)
		for _, col := range appointmentColumns {
			pdf.CellFormat(col.width, 8, col.title, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 8)
	}
	header()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for i, apt := range appointments {
		if pdf.GetY() > 190 {
			pdf.AddPage()
			header()
		}
		fill := i%2 == 1
		pdf.SetFillColor(245, 245, 245)
		cells := []string{
			fmt.Sprintf("%d", apt.ID),
			apt.PatientName,
			apt.Phone,
			apt.Department,
			apt.PreferredDate,
			string(apt.Status),
			apt.SubmittedAt.Format("02 Jan 2006 15:04"),
			apt.Email,
		}
		for j, col := range appointmentColumns {
			pdf.CellFormat(col.width, 7, cellText(tr, cells[j], col.width), "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render appointments pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// cellText shortens s to fit a column of the given width, then translates it
// to the core font encoding. Truncation must see the UTF-8 text.
func cellText(tr func(string) string, s string, width float64) string {
	return tr(truncate(s, int(width/1.8)))
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return string(r[:max])
	}
	return string(r[:max-1]) + "."
}
