package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfessorStatsZeroValueSerializesEveryField(t *testing.T) {
	out, err := json.Marshal(ProfessorStats{})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"totalReviews": 0,
		"averageRating": 0,
		"averageDifficulty": 0,
		"wouldTakeAgainPercent": 0,
		"recommendPercent": 0
	}`, string(out), "a professor with no published reviews must report explicit zeros")
}

func TestCourseStatsZeroValueSerializesEveryField(t *testing.T) {
	out, err := json.Marshal(CourseStats{})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"totalReviews": 0,
		"averageRating": 0,
		"averageDifficulty": 0
	}`, string(out))
}
