package attainment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickOptionalNilQuotaSelectsEverything(t *testing.T) {
	optional := []QuestionScore{
		{QuestionID: 1, Marks: 5, Obtained: 5, Attempted: true},
		{QuestionID: 2, Marks: 8, Obtained: 8, Attempted: true},
	}

	pick := PickOptional(nil, optional)

	assert.Len(t, pick.Selected, 2)
	assert.Empty(t, pick.Rejected)
	assert.Equal(t, 13.0, pick.Obtained)
	assert.Equal(t, 13.0, pick.MaxPossible)
}

func TestPickOptionalKeepsHighestScores(t *testing.T) {
	optional := []QuestionScore{
		{QuestionID: 1, Marks: 10, Obtained: 5, Attempted: true},
		{QuestionID: 2, Marks: 10, Obtained: 8, Attempted: true},
		{QuestionID: 3, Marks: 10, Obtained: 6, Attempted: true},
	}

	pick := PickOptional(intPtr(2), optional)

	assert.Equal(t, []uint{2, 3}, questionIDs(pick.Selected))
	assert.Equal(t, []uint{1}, questionIDs(pick.Rejected))
	assert.Equal(t, 14.0, pick.Obtained)
	assert.Equal(t, 20.0, pick.MaxPossible)
}

func TestPickOptionalTieBreaksOnQuestionID(t *testing.T) {
	optional := []QuestionScore{
		{QuestionID: 9, Marks: 10, Obtained: 7, Attempted: true},
		{QuestionID: 3, Marks: 10, Obtained: 7, Attempted: true},
	}

	pick := PickOptional(intPtr(1), optional)

	assert.Equal(t, []uint{3}, questionIDs(pick.Selected))
	assert.Equal(t, []uint{9}, questionIDs(pick.Rejected))
}

func TestPickOptionalQuotaBeyondSetSize(t *testing.T) {
	optional := []QuestionScore{
		{QuestionID: 1, Marks: 5, Obtained: 3, Attempted: true},
	}

	pick := PickOptional(intPtr(4), optional)

	assert.Len(t, pick.Selected, 1)
	assert.Empty(t, pick.Rejected)
}

func TestPickOptionalZeroQuota(t *testing.T) {
	optional := []QuestionScore{
		{QuestionID: 1, Marks: 5, Obtained: 5, Attempted: true},
	}

	pick := PickOptional(intPtr(0), optional)

	assert.Empty(t, pick.Selected)
	assert.Len(t, pick.Rejected, 1)
	assert.Equal(t, 0.0, pick.Obtained)
	assert.Equal(t, 0.0, pick.MaxPossible)
}

// The denominator follows nominal question values, not the attempted set:
// skipping a high-value question still leaves it in the best-possible baseline.
func TestPickOptionalMaxPossibleIgnoresAttempts(t *testing.T) {
	optional := []QuestionScore{
		{QuestionID: 1, Marks: 20, Obtained: 0, Attempted: false},
		{QuestionID: 2, Marks: 5, Obtained: 5, Attempted: true},
		{QuestionID: 3, Marks: 5, Obtained: 4, Attempted: true},
	}

	pick := PickOptional(intPtr(2), optional)

	assert.Equal(t, []uint{2, 3}, questionIDs(pick.Selected))
	assert.Equal(t, 9.0, pick.Obtained)
	// top-2 by nominal marks: 20 + 5
	assert.Equal(t, 25.0, pick.MaxPossible)
}

func TestPickOptionalEmptySet(t *testing.T) {
	pick := PickOptional(intPtr(2), nil)

	assert.Empty(t, pick.Selected)
	assert.Empty(t, pick.Rejected)
	assert.Equal(t, 0.0, pick.Obtained)
	assert.Equal(t, 0.0, pick.MaxPossible)
}

func questionIDs(scores []QuestionScore) []uint {
	ids := make([]uint, len(scores))
	for i, s := range scores {
		ids[i] = s.QuestionID
	}
	return ids
}
