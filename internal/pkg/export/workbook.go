// Package export renders admin listings as Excel workbooks.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/genius/elearning/internal/app/models"
)

// ContentType is the MIME type of an .xlsx download
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const dateLayout = "02.01.2006 15:04"

// Sheet is a single worksheet: a header row followed by data rows
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]interface{}
}

// Build creates a workbook holding the sheet as its only (active) worksheet
func (s Sheet) Build() (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(s.Name)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create sheet %q: %w", s.Name, err)
	}
	f.SetActiveSheet(index)
	if s.Name != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			f.Close()
			return nil, err
		}
	}

	for i, header := range s.Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(s.Name, cell, header); err != nil {
			f.Close()
			return nil, err
		}
	}

	for r, row := range s.Rows {
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, r+2)
			if err := f.SetCellValue(s.Name, cell, value); err != nil {
				f.Close()
				return nil, err
			}
		}
	}

	return f, nil
}

// Write builds the workbook and streams it to w
func (s Sheet) Write(w io.Writer) error {
	f, err := s.Build()
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

// Submissions lays out the graded submissions of one exam or assignment
func Submissions(title string, subs []*models.Submission) Sheet {
	sheet := Sheet{
		Name:    "Submissions",
		Headers: []string{"#", "Student", "Phone", "Score", "Total Marks", "Percentage", "Submitted At", "Assessment"},
	}
	for i, s := range subs {
		name, phone := "", ""
		if s.User != nil {
			name, phone = s.User.Name, s.User.Phone
		}
		percentage := 0.0
		if s.TotalMarks > 0 {
			percentage = float64(s.Score) * 100 / float64(s.TotalMarks)
		}
		sheet.Rows = append(sheet.Rows, []interface{}{
			i + 1, name, phone, s.Score, s.TotalMarks,
			fmt.Sprintf("%.1f%%", percentage),
			s.SubmittedAt.Format(dateLayout), title,
		})
	}
	return sheet
}

// Subscriptions lays out subscriptions with their user and course
func Subscriptions(subs []*models.Subscription) Sheet {
	sheet := Sheet{
		Name:    "Subscriptions",
		Headers: []string{"#", "Student", "Phone", "Course", "Level", "Status", "Payment Method", "Receipt", "Subscribed At", "Expires At"},
	}
	for i, s := range subs {
		name, phone := "", ""
		if s.User != nil {
			name, phone = s.User.Name, s.User.Phone
		}
		course, level := "", ""
		if s.Course != nil {
			course = s.Course.Title
			if s.Course.EducationalLevel != nil {
				level = s.Course.EducationalLevel.NameAr
			}
		}
		expires := ""
		if s.ExpiresAt != nil {
			expires = s.ExpiresAt.Format(dateLayout)
		}
		sheet.Rows = append(sheet.Rows, []interface{}{
			i + 1, name, phone, course, level, string(s.Status), string(s.PaymentMethod),
			s.VodafoneReceipt, s.SubscribedAt.Format(dateLayout), expires,
		})
	}
	return sheet
}
