package attainment

import (
	"testing"

	"aims/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) addMapping(coID, poID uint, strength int) {
	f.t.Helper()
	m := models.COPOMapping{COID: coID, POID: poID, MappingStrength: strength}
	require.NoError(f.t, f.db.Create(&m).Error)
}

// seedCO creates a course outcome with one tagged question scored so the
// outcome attains exactly the given percentage
func (f *fixture) seedCO(code string, sectionID uint, percentage float64) models.CourseOutcome {
	f.t.Helper()
	co := f.addCourseOutcome(code, code+" description")
	q := f.addQuestion(sectionID, 100, false, uintPtr(co.ID))
	f.addMark(1, q.ID, percentage, 100)
	return co
}

func TestPOAttainmentStrengthWeightedMean(t *testing.T) {
	f := newFixture(t)
	section := f.addSection(nil)
	po := f.addProgramOutcome("PO1", "engineering knowledge")

	coA := f.seedCO("CO1", section.ID, 50)
	coB := f.seedCO("CO2", section.ID, 80)
	coC := f.seedCO("CO3", section.ID, 100)
	f.addMapping(coA.ID, po.ID, 1)
	f.addMapping(coB.ID, po.ID, 2)
	f.addMapping(coC.ID, po.ID, 3)

	result, err := f.calc.POAttainment(po.ID, f.semester.ID, f.class.ID, f.department.ID)
	require.NoError(t, err)

	// (50*1 + 80*2 + 100*3) / 6
	assert.Equal(t, 85.0, result.Percentage)
	assert.Equal(t, 1, result.StudentCount)
	require.Len(t, result.Contributions, 3)
	assert.Equal(t, 50.0, result.Contributions[0].Attainment)
	assert.Equal(t, 1, result.Contributions[0].Weight)
}

func TestPOAttainmentUnknownOutcome(t *testing.T) {
	f := newFixture(t)

	_, err := f.calc.POAttainment(999, f.semester.ID, f.class.ID, f.department.ID)
	assert.ErrorIs(t, err, ErrPONotFound)
}

func TestPOAttainmentNoMappingsIsZero(t *testing.T) {
	f := newFixture(t)
	po := f.addProgramOutcome("PO1", "problem analysis")

	result, err := f.calc.POAttainment(po.ID, f.semester.ID, f.class.ID, f.department.ID)
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.Percentage)
	assert.Empty(t, result.Contributions)
}

// A mapped outcome with no authored questions keeps its full weight while
// contributing zero, dragging program attainment down
func TestPOAttainmentEmptyOutcomeDilutes(t *testing.T) {
	f := newFixture(t)
	section := f.addSection(nil)
	po := f.addProgramOutcome("PO1", "design solutions")

	full := f.seedCO("CO1", section.ID, 100)
	empty := f.addCourseOutcome("CO2", "no questions yet")
	f.addMapping(full.ID, po.ID, 1)
	f.addMapping(empty.ID, po.ID, 1)

	result, err := f.calc.POAttainment(po.ID, f.semester.ID, f.class.ID, f.department.ID)
	require.NoError(t, err)

	// (100*1 + 0*1) / 2
	assert.Equal(t, 50.0, result.Percentage)
}

func TestPOAttainmentIsolatesFailingOutcome(t *testing.T) {
	f := newFixture(t)
	section := f.addSection(nil)
	po := f.addProgramOutcome("PO1", "modern tool usage")

	good := f.seedCO("CO1", section.ID, 100)
	dead := f.addCourseOutcome("CO2", "to be removed")
	f.addMapping(good.ID, po.ID, 1)
	f.addMapping(dead.ID, po.ID, 1)
	require.NoError(t, f.db.Model(&models.CourseOutcome{}).Where("id = ?", dead.ID).Update("is_deleted", true).Error)

	result, err := f.calc.POAttainment(po.ID, f.semester.ID, f.class.ID, f.department.ID)
	require.NoError(t, err)

	assert.Equal(t, 50.0, result.Percentage)
	require.Len(t, result.Contributions, 2)
	assert.Empty(t, result.Contributions[0].Error)
	assert.NotEmpty(t, result.Contributions[1].Error)
	assert.Equal(t, 0.0, result.Contributions[1].Attainment)
	assert.Equal(t, 1, result.Contributions[1].Weight)
}

func TestPOAttainmentRecomputeOverwritesCache(t *testing.T) {
	f := newFixture(t)
	section := f.addSection(nil)
	po := f.addProgramOutcome("PO1", "lifelong learning")
	co := f.seedCO("CO1", section.ID, 60)
	f.addMapping(co.ID, po.ID, 2)

	_, err := f.calc.POAttainment(po.ID, f.semester.ID, f.class.ID, f.department.ID)
	require.NoError(t, err)
	_, err = f.calc.POAttainment(po.ID, f.semester.ID, f.class.ID, f.department.ID)
	require.NoError(t, err)

	var records []models.POAttainment
	require.NoError(t, f.db.Where("po_id = ?", po.ID).Find(&records).Error)
	require.Len(t, records, 1)
	assert.Equal(t, 60.0, records[0].AttainmentPercentage)
}
