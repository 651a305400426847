package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/school-dashboard-api/internal/dto"
	"github.com/noah-isme/school-dashboard-api/internal/models"
	"github.com/noah-isme/school-dashboard-api/internal/repository"
	appErrors "github.com/noah-isme/school-dashboard-api/pkg/errors"
	"github.com/noah-isme/school-dashboard-api/pkg/export"
)

// Exporter renders a report dataset into a downloadable document.
type Exporter interface {
	Render(data export.Dataset) ([]byte, error)
}

// ExportFormat names a supported report download format.
type ExportFormat string

const (
	ExportPDF ExportFormat = "pdf"
	ExportCSV ExportFormat = "csv"
)

// ExportedReport is a rendered report ready to be served as a download.
type ExportedReport struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ReportService aggregates attendance over a date window and renders
// downloadable documents from the result.
type ReportService struct {
	students   repository.StudentRepository
	attendance repository.AttendanceRepository
	pdf        Exporter
	csv        Exporter
	archiver   *ExportArchiver
	logger     *zap.Logger
	now        func() time.Time
}

// NewReportService constructs the service with the default exporters. A nil
// archiver disables the on-disk export archive.
func NewReportService(students repository.StudentRepository, attendance repository.AttendanceRepository, archiver *ExportArchiver, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{
		students:   students,
		attendance: attendance,
		pdf:        export.NewPDFExporter(),
		csv:        export.NewCSVExporter(),
		archiver:   archiver,
		logger:     logger,
		now:        time.Now,
	}
}

// Attendance aggregates attendance counts over the query's window. Explicit
// start/end dates win; otherwise the period selects a canonical window
// ending today. Records with an excused status are not counted.
func (s *ReportService) Attendance(ctx context.Context, query dto.ReportQuery) (*models.AttendanceReport, error) {
	start, end, err := s.window(query)
	if err != nil {
		return nil, err
	}

	students, err := s.students.List(ctx, models.StudentFilter{ClassName: query.ClassName, Section: query.Section})
	if err != nil {
		return nil, err
	}
	scoped := query.ClassName != "" || query.Section != ""
	var inScope map[int64]bool
	if scoped {
		inScope = make(map[int64]bool, len(students))
		for _, student := range students {
			inScope[student.ID] = true
		}
	}

	records, err := s.attendance.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	report := &models.AttendanceReport{
		TotalStudents: len(students),
		Date:          end,
		ClassName:     query.ClassName,
		Section:       query.Section,
	}
	if start != end {
		report.StartDate = start
		report.EndDate = end
	}
	for _, record := range records {
		if scoped && !inScope[record.StudentID] {
			continue
		}
		switch record.Status {
		case models.AttendancePresent:
			report.PresentCount++
		case models.AttendanceAbsent:
			report.AbsentCount++
		case models.AttendanceLate:
			report.LateCount++
		}
	}
	return report, nil
}

// Export renders the attendance report as a downloadable document. Each call
// produces a fresh filename.
func (s *ReportService) Export(ctx context.Context, query dto.ReportQuery, format ExportFormat) (*ExportedReport, error) {
	report, err := s.Attendance(ctx, query)
	if err != nil {
		return nil, err
	}
	rows, err := s.detailRows(ctx, query, report)
	if err != nil {
		return nil, err
	}

	window := report.Date
	if report.StartDate != "" {
		window = report.StartDate + " - " + report.EndDate
	}
	dataset := export.Dataset{
		Title: "Attendance Report",
		Summary: []export.LabeledValue{
			{Label: "Window", Value: window},
			{Label: "Total students", Value: strconv.Itoa(report.TotalStudents)},
			{Label: "Present", Value: strconv.Itoa(report.PresentCount)},
			{Label: "Absent", Value: strconv.Itoa(report.AbsentCount)},
			{Label: "Late", Value: strconv.Itoa(report.LateCount)},
		},
		Headers: []string{"Student ID", "Date", "Status", "Notes"},
		Rows:    rows,
	}

	var exported *ExportedReport
	switch format {
	case ExportCSV:
		content, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render csv report")
		}
		exported = &ExportedReport{
			Filename:    fmt.Sprintf("attendance-report-%s.csv", uuid.NewString()),
			ContentType: "text/csv",
			Content:     content,
		}
	case ExportPDF:
		content, err := s.pdf.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render pdf report")
		}
		exported = &ExportedReport{
			Filename:    fmt.Sprintf("attendance-report-%s.pdf", uuid.NewString()),
			ContentType: "application/pdf",
			Content:     content,
		}
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported export format")
	}

	s.archiver.Archive(exported)
	return exported, nil
}

// detailRows lists the window's records, one table row per record.
func (s *ReportService) detailRows(ctx context.Context, query dto.ReportQuery, report *models.AttendanceReport) ([][]string, error) {
	start, end := report.StartDate, report.EndDate
	if start == "" {
		start, end = report.Date, report.Date
	}
	records, err := s.attendance.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	scoped := query.ClassName != "" || query.Section != ""
	var inScope map[int64]bool
	if scoped {
		students, err := s.students.List(ctx, models.StudentFilter{ClassName: query.ClassName, Section: query.Section})
		if err != nil {
			return nil, err
		}
		inScope = make(map[int64]bool, len(students))
		for _, student := range students {
			inScope[student.ID] = true
		}
	}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		if scoped && !inScope[record.StudentID] {
			continue
		}
		rows = append(rows, []string{
			strconv.FormatInt(record.StudentID, 10),
			record.Date,
			string(record.Status),
			record.Notes,
		})
	}
	return rows, nil
}

// window resolves the query into inclusive start/end dates. Week windows
// start on Sunday, matching the school week's reporting convention.
func (s *ReportService) window(query dto.ReportQuery) (string, string, error) {
	if query.StartDate != "" || query.EndDate != "" {
		start, end := query.StartDate, query.EndDate
		if start == "" {
			start = end
		}
		if end == "" {
			end = start
		}
		if start > end {
			return "", "", appErrors.Clone(appErrors.ErrValidation, "start must not be after end")
		}
		return start, end, nil
	}

	period := query.Period
	if period == "" {
		period = models.PeriodDay
	}
	today := s.now()
	switch period {
	case models.PeriodDay:
		date := today.Format(dateLayout)
		return date, date, nil
	case models.PeriodWeek:
		start := today.AddDate(0, 0, -int(today.Weekday()))
		return start.Format(dateLayout), today.Format(dateLayout), nil
	case models.PeriodMonth:
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return start.Format(dateLayout), today.Format(dateLayout), nil
	default:
		return "", "", appErrors.Clone(appErrors.ErrValidation, "unknown report period")
	}
}
