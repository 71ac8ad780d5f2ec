package attainment

import (
	"testing"

	"aims/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectBest(t *testing.T) {
	assert.Equal(t, -1, SelectBest(nil))

	attempts := []models.Attempt{
		{AttemptNumber: 1, MarksObtained: 4},
		{AttemptNumber: 2, MarksObtained: 9},
		{AttemptNumber: 3, MarksObtained: 7},
	}
	assert.Equal(t, 1, SelectBest(attempts))
}

func TestSelectBestTieTakesLatestAttempt(t *testing.T) {
	attempts := []models.Attempt{
		{AttemptNumber: 1, MarksObtained: 8},
		{AttemptNumber: 2, MarksObtained: 8},
		{AttemptNumber: 3, MarksObtained: 5},
	}
	assert.Equal(t, 1, SelectBest(attempts))
}

func TestReflagBestNoAttempts(t *testing.T) {
	f := newFixture(t)
	section := f.addSection(nil)
	q := f.addQuestion(section.ID, 10, false, nil)

	_, err := ReflagBest(f.db, 1, q.ID)
	assert.ErrorIs(t, err, ErrNoAttempts)
}

func TestReflagBestKeepsSingleFlag(t *testing.T) {
	f := newFixture(t)
	section := f.addSection(nil)
	q := f.addQuestion(section.ID, 10, false, nil)
	const studentID = 1

	submit := func(attemptNumber int, obtained float64) {
		a := models.Attempt{
			StudentID:     studentID,
			QuestionID:    q.ID,
			AttemptNumber: attemptNumber,
			MarksObtained: obtained,
			MaxMarks:      q.Marks,
		}
		require.NoError(t, f.db.Create(&a).Error)
		_, err := ReflagBest(f.db, studentID, q.ID)
		require.NoError(t, err)
	}

	submit(1, 6)
	submit(2, 9)
	submit(3, 4)

	var flagged []models.Attempt
	require.NoError(t, f.db.Where("student_id = ? AND question_id = ? AND is_best_attempt = ?", studentID, q.ID, true).Find(&flagged).Error)
	require.Len(t, flagged, 1)
	assert.Equal(t, 2, flagged[0].AttemptNumber)
	assert.Equal(t, 9.0, flagged[0].MarksObtained)
}

func TestReflagBestMirrorsMark(t *testing.T) {
	f := newFixture(t)
	section := f.addSection(nil)
	q := f.addQuestion(section.ID, 10, false, nil)
	const studentID = 7

	a1 := models.Attempt{StudentID: studentID, QuestionID: q.ID, AttemptNumber: 1, MarksObtained: 5, MaxMarks: 10}
	require.NoError(t, f.db.Create(&a1).Error)
	_, err := ReflagBest(f.db, studentID, q.ID)
	require.NoError(t, err)

	var mark models.Mark
	require.NoError(t, f.db.Where("student_id = ? AND question_id = ?", studentID, q.ID).First(&mark).Error)
	assert.Equal(t, 5.0, mark.MarksObtained)
	assert.Equal(t, f.exam.ID, mark.ExamID)

	// a better retry replaces the mirrored mark in place
	a2 := models.Attempt{StudentID: studentID, QuestionID: q.ID, AttemptNumber: 2, MarksObtained: 8, MaxMarks: 10}
	require.NoError(t, f.db.Create(&a2).Error)
	_, err = ReflagBest(f.db, studentID, q.ID)
	require.NoError(t, err)

	var marks []models.Mark
	require.NoError(t, f.db.Where("student_id = ? AND question_id = ?", studentID, q.ID).Find(&marks).Error)
	require.Len(t, marks, 1)
	assert.Equal(t, 8.0, marks[0].MarksObtained)
}

func TestReflagBestTieBreak(t *testing.T) {
	f := newFixture(t)
	section := f.addSection(nil)
	q := f.addQuestion(section.ID, 10, false, nil)
	const studentID = 3

	for n := 1; n <= 2; n++ {
		a := models.Attempt{StudentID: studentID, QuestionID: q.ID, AttemptNumber: n, MarksObtained: 7, MaxMarks: 10}
		require.NoError(t, f.db.Create(&a).Error)
	}

	best, err := ReflagBest(f.db, studentID, q.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, best.AttemptNumber)
}
