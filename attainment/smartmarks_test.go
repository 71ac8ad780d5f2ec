package attainment

import (
	"testing"

	"aims/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) addBestAttempt(studentID, questionID uint, obtained, max float64) {
	f.t.Helper()
	a := models.Attempt{
		StudentID:     studentID,
		QuestionID:    questionID,
		AttemptNumber: 1,
		MarksObtained: obtained,
		MaxMarks:      max,
		IsBestAttempt: true,
	}
	require.NoError(f.t, f.db.Create(&a).Error)
}

func TestSmartMarksMixedSection(t *testing.T) {
	f := newFixture(t)
	section := f.addSection(intPtr(2))
	const studentID = 1

	m1 := f.addQuestion(section.ID, 10, false, nil)
	m2 := f.addQuestion(section.ID, 10, false, nil)
	o1 := f.addQuestion(section.ID, 5, true, nil)
	o2 := f.addQuestion(section.ID, 8, true, nil)
	o3 := f.addQuestion(section.ID, 6, true, nil)

	f.addBestAttempt(studentID, m1.ID, 10, 10)
	f.addBestAttempt(studentID, m2.ID, 10, 10)
	f.addBestAttempt(studentID, o1.ID, 5, 5)
	f.addBestAttempt(studentID, o2.ID, 8, 8)
	f.addBestAttempt(studentID, o3.ID, 6, 6)

	result, err := f.calc.SmartMarks(f.exam.ID, studentID, section.ID)
	require.NoError(t, err)

	assert.Equal(t, 20.0, result.MandatoryMarks)
	assert.Equal(t, 14.0, result.OptionalMarks)
	assert.Equal(t, 34.0, result.TotalMarks)
	assert.Equal(t, 34.0, result.MaxPossible)
	assert.Equal(t, 100.0, result.Percentage)
	assert.Equal(t, 4, result.QuestionsAttempted)
	assert.ElementsMatch(t, []uint{o2.ID, o3.ID}, result.SelectedOptional)
	assert.Equal(t, []uint{o1.ID}, result.RejectedOptional)
}

func TestSmartMarksUnattemptedMandatoryCountsAgainstMax(t *testing.T) {
	f := newFixture(t)
	section := f.addSection(nil)
	const studentID = 2

	m1 := f.addQuestion(section.ID, 10, false, nil)
	f.addQuestion(section.ID, 10, false, nil) // never attempted

	f.addBestAttempt(studentID, m1.ID, 10, 10)

	result, err := f.calc.SmartMarks(f.exam.ID, studentID, section.ID)
	require.NoError(t, err)

	assert.Equal(t, 10.0, result.TotalMarks)
	assert.Equal(t, 20.0, result.MaxPossible)
	assert.Equal(t, 50.0, result.Percentage)
	assert.Equal(t, 1, result.QuestionsAttempted)
}

func TestSmartMarksEmptySection(t *testing.T) {
	f := newFixture(t)
	section := f.addSection(nil)

	result, err := f.calc.SmartMarks(f.exam.ID, 1, section.ID)
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.TotalMarks)
	assert.Equal(t, 0.0, result.MaxPossible)
	assert.Equal(t, 0.0, result.Percentage)
	assert.Empty(t, result.SelectedOptional)
}

func TestSmartMarksUnknownSection(t *testing.T) {
	f := newFixture(t)

	_, err := f.calc.SmartMarks(f.exam.ID, 1, 999)
	assert.ErrorIs(t, err, ErrSectionNotFound)
}

func TestSmartMarksSectionFromDifferentExam(t *testing.T) {
	f := newFixture(t)
	section := f.addSection(nil)

	_, err := f.calc.SmartMarks(f.exam.ID+1, 1, section.ID)
	assert.ErrorIs(t, err, ErrSectionNotFound)
}

func TestSmartMarksUsesBestAttemptPerQuestion(t *testing.T) {
	f := newFixture(t)
	section := f.addSection(nil)
	q := f.addQuestion(section.ID, 10, false, nil)
	const studentID = 4

	for n, obtained := range []float64{4, 9, 6} {
		a := models.Attempt{StudentID: studentID, QuestionID: q.ID, AttemptNumber: n + 1, MarksObtained: obtained, MaxMarks: 10}
		require.NoError(t, f.db.Create(&a).Error)
	}
	_, err := ReflagBest(f.db, studentID, q.ID)
	require.NoError(t, err)

	result, err := f.calc.SmartMarks(f.exam.ID, studentID, section.ID)
	require.NoError(t, err)

	assert.Equal(t, 9.0, result.TotalMarks)
	assert.Equal(t, 90.0, result.Percentage)
}
