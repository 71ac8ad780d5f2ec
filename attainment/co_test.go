package attainment

import (
	"testing"

	"aims/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCOAttainmentAcrossStudents(t *testing.T) {
	f := newFixture(t)
	co := f.addCourseOutcome("CO1", "design relational schemas")
	section := f.addSection(nil)
	q1 := f.addQuestion(section.ID, 10, false, uintPtr(co.ID))
	q2 := f.addQuestion(section.ID, 10, false, uintPtr(co.ID))

	f.addMark(1, q1.ID, 8, 10)
	f.addMark(1, q2.ID, 6, 10)
	f.addMark(2, q1.ID, 10, 10)
	f.addMark(2, q2.ID, 4, 10)

	result, err := f.calc.COAttainment(co.ID, f.semester.ID, f.class.ID, f.subject.ID)
	require.NoError(t, err)

	// (8+6+10+4) / 40
	assert.Equal(t, 70.0, result.Percentage)
	assert.Equal(t, 2, result.StudentCount)
	assert.Equal(t, 2, result.QuestionCount)
}

func TestCOAttainmentUnknownOutcome(t *testing.T) {
	f := newFixture(t)

	_, err := f.calc.COAttainment(999, f.semester.ID, f.class.ID, f.subject.ID)
	assert.ErrorIs(t, err, ErrCONotFound)
}

func TestCOAttainmentNoQuestionsIsZero(t *testing.T) {
	f := newFixture(t)
	co := f.addCourseOutcome("CO1", "normalization")

	result, err := f.calc.COAttainment(co.ID, f.semester.ID, f.class.ID, f.subject.ID)
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.Percentage)
	assert.Equal(t, 0, result.StudentCount)
	assert.Equal(t, 0, result.QuestionCount)

	// the zero result is still cached
	var count int64
	require.NoError(t, f.db.Model(&models.COAttainment{}).Where("co_id = ?", co.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCOAttainmentClampedAtHundred(t *testing.T) {
	f := newFixture(t)
	co := f.addCourseOutcome("CO1", "query optimization")
	section := f.addSection(nil)
	q := f.addQuestion(section.ID, 10, false, uintPtr(co.ID))

	// bonus marks above the nominal value
	f.addMark(1, q.ID, 12, 10)

	result, err := f.calc.COAttainment(co.ID, f.semester.ID, f.class.ID, f.subject.ID)
	require.NoError(t, err)

	assert.Equal(t, 100.0, result.Percentage)
}

func TestCOAttainmentHonorsQuestionWeight(t *testing.T) {
	f := newFixture(t)
	co := f.addCourseOutcome("CO1", "transactions")
	section := f.addSection(nil)
	q1 := f.addQuestion(section.ID, 10, false, uintPtr(co.ID))
	q2 := f.addQuestion(section.ID, 10, false, uintPtr(co.ID))
	require.NoError(t, f.db.Model(&models.Question{}).Where("id = ?", q2.ID).Update("co_weight", 0.5).Error)

	f.addMark(1, q1.ID, 10, 10)
	f.addMark(1, q2.ID, 0, 10)

	result, err := f.calc.COAttainment(co.ID, f.semester.ID, f.class.ID, f.subject.ID)
	require.NoError(t, err)

	// (10*1 + 0*0.5) / (10*1 + 10*0.5)
	assert.Equal(t, 66.67, result.Percentage)
}

func TestCOAttainmentRecomputeOverwritesCache(t *testing.T) {
	f := newFixture(t)
	co := f.addCourseOutcome("CO1", "indexes")
	section := f.addSection(nil)
	q := f.addQuestion(section.ID, 10, false, uintPtr(co.ID))
	f.addMark(1, q.ID, 5, 10)

	_, err := f.calc.COAttainment(co.ID, f.semester.ID, f.class.ID, f.subject.ID)
	require.NoError(t, err)

	require.NoError(t, f.db.Model(&models.Mark{}).
		Where("student_id = ? AND question_id = ?", 1, q.ID).
		Update("marks_obtained", 9).Error)

	result, err := f.calc.COAttainment(co.ID, f.semester.ID, f.class.ID, f.subject.ID)
	require.NoError(t, err)
	assert.Equal(t, 90.0, result.Percentage)

	var records []models.COAttainment
	require.NoError(t, f.db.Where("co_id = ?", co.ID).Find(&records).Error)
	require.Len(t, records, 1)
	assert.Equal(t, 90.0, records[0].AttainmentPercentage)
}

func TestCOAttainmentCarriesFullLevelVocabulary(t *testing.T) {
	f := newFixture(t)
	co := f.addCourseOutcome("CO1", "joins")
	section := f.addSection(nil)
	q := f.addQuestion(section.ID, 10, false, uintPtr(co.ID))
	require.NoError(t, f.db.Model(&models.Question{}).Where("id = ?", q.ID).
		Updates(map[string]interface{}{"bloom_level": models.BloomApply, "difficulty_level": models.DifficultyMedium}).Error)
	f.addMark(1, q.ID, 8, 10)

	result, err := f.calc.COAttainment(co.ID, f.semester.ID, f.class.ID, f.subject.ID)
	require.NoError(t, err)

	for _, level := range models.BloomLevels() {
		assert.Contains(t, result.BloomCounts, level)
		assert.Contains(t, result.BloomMastery, level)
	}
	assert.Equal(t, 1, result.BloomCounts[models.BloomApply])
	assert.Equal(t, 80.0, result.BloomMastery[models.BloomApply])
	assert.Equal(t, 1, result.DifficultyCounts[models.DifficultyMedium])
	assert.Equal(t, 0, result.DifficultyCounts[models.DifficultyHard])
}
