package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int       { return &v }
func strp(v string) *string { return &v }

func TestReviewSerializesFullSurvey(t *testing.T) {
	review := Review{
		Semester:      SemesterSpring,
		Year:          2026,
		Overall:       5,
		Engagement:    intp(4),
		Fairness:      intp(5),
		Grading:       intp(3),
		Workload:      intp(2),
		Delivery:      strp("HYBRID"),
		GradeReceived: strp("A-"),
		HoursPerWeek:  intp(8),
		Tags:          []string{"group projects", "attendance matters"},
		EditedUntil:   time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
	}

	out, err := json.Marshal(review)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &got))

	assert.Equal(t, float64(4), got["engagement"])
	assert.Equal(t, float64(5), got["fairness"])
	assert.Equal(t, float64(3), got["grading"])
	assert.Equal(t, float64(2), got["workload"])
	assert.Equal(t, "HYBRID", got["delivery"])
	assert.Equal(t, "A-", got["gradeReceived"])
	assert.Equal(t, float64(8), got["hoursPerWeek"])
	assert.Equal(t, []interface{}{"group projects", "attendance matters"}, got["tags"])
	assert.Equal(t, "2026-03-02T12:00:00Z", got["editedUntil"])
}
