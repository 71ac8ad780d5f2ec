package attainment

import (
	"testing"

	"aims/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecomputeClassUnknownClass(t *testing.T) {
	f := newFixture(t)

	_, err := f.calc.RecomputeClass(999, f.semester.ID)
	assert.ErrorIs(t, err, ErrClassNotFound)
}

func TestRecomputeClassRefreshesEveryOutcome(t *testing.T) {
	f := newFixture(t)
	section := f.addSection(nil)

	co := f.addCourseOutcome("CO1", "design relational schemas")
	q := f.addQuestion(section.ID, 10, false, uintPtr(co.ID))
	f.addMark(1, q.ID, 8, 10)

	po := f.addProgramOutcome("PO1", "engineering knowledge")
	f.addMapping(co.ID, po.ID, 2)

	items, err := f.calc.RecomputeClass(f.class.ID, f.semester.ID)
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, "CO", items[0].Kind)
	assert.Equal(t, co.ID, items[0].OutcomeID)
	assert.Equal(t, 80.0, items[0].Percentage)
	assert.Equal(t, "PO", items[1].Kind)
	assert.Equal(t, po.ID, items[1].OutcomeID)
	assert.Equal(t, 80.0, items[1].Percentage)

	var coCount, poCount int64
	require.NoError(t, f.db.Model(&models.COAttainment{}).Count(&coCount).Error)
	require.NoError(t, f.db.Model(&models.POAttainment{}).Count(&poCount).Error)
	assert.Equal(t, int64(1), coCount)
	assert.Equal(t, int64(1), poCount)
}

func TestRecomputeClassScopedToSemester(t *testing.T) {
	f := newFixture(t)
	section := f.addSection(nil)

	good := f.addCourseOutcome("CO1", "transactions")
	q := f.addQuestion(section.ID, 10, false, uintPtr(good.ID))
	f.addMark(1, q.ID, 10, 10)

	// a subject in another semester stays out of this run
	otherSubject := models.Subject{Name: "Networks", Code: "CS601", DepartmentID: f.department.ID, SemesterID: f.semester.ID + 1}
	require.NoError(t, f.db.Create(&otherSubject).Error)
	otherCO := models.CourseOutcome{SubjectID: otherSubject.ID, Code: "CO1", Description: "routing"}
	require.NoError(t, f.db.Create(&otherCO).Error)

	items, err := f.calc.RecomputeClass(f.class.ID, f.semester.ID)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, good.ID, items[0].OutcomeID)
	assert.Empty(t, items[0].Error)
}
