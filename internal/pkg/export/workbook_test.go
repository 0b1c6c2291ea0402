package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/genius/elearning/internal/app/models"
)

func TestSubmissionsSheet(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)
	sheet := Submissions("Midterm", []*models.Submission{
		{Score: 15, TotalMarks: 20, SubmittedAt: at, User: &models.UserSummary{Name: "Mona", Phone: "01000000001"}},
		{Score: 0, TotalMarks: 0, SubmittedAt: at},
	})

	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, []interface{}{1, "Mona", "01000000001", 15, 20, "75.0%", "01.03.2025 10:30", "Midterm"}, sheet.Rows[0])
	assert.Equal(t, "0.0%", sheet.Rows[1][5])
	assert.Equal(t, "", sheet.Rows[1][1])
}

func TestSubscriptionsSheet(t *testing.T) {
	expires := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	sheet := Subscriptions([]*models.Subscription{{
		Status:        models.SubscriptionActive,
		PaymentMethod: models.PaymentVodafone,
		ExpiresAt:     &expires,
		User:          &models.UserSummary{Name: "Omar", Phone: "01100000000"},
		Course: &models.Course{
			Title:            "Physics",
			EducationalLevel: &models.EducationalLevel{NameAr: "تالته ثانوي"},
		},
	}})

	require.Len(t, sheet.Rows, 1)
	row := sheet.Rows[0]
	assert.Equal(t, "Physics", row[3])
	assert.Equal(t, "تالته ثانوي", row[4])
	assert.Equal(t, "active", row[5])
	assert.Equal(t, "01.06.2025 00:00", row[9])
}

func TestSheetWrite_ProducesReadableWorkbook(t *testing.T) {
	sheet := Sheet{
		Name:    "Data",
		Headers: []string{"A", "B"},
		Rows:    [][]interface{}{{"x", 1}, {"y", 2}},
	}

	var buf bytes.Buffer
	require.NoError(t, sheet.Write(&buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Data"}, f.GetSheetList())
	rows, err := f.GetRows("Data")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B"}, {"x", "1"}, {"y", "2"}}, rows)
}
