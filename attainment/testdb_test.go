package attainment

import (
	"testing"

	"aims/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Department{},
		&models.Semester{},
		&models.Class{},
		&models.Subject{},
		&models.CourseOutcome{},
		&models.ProgramOutcome{},
		&models.COPOMapping{},
		&models.Exam{},
		&models.Section{},
		&models.Question{},
		&models.Attempt{},
		&models.Mark{},
		&models.COAttainment{},
		&models.POAttainment{},
	))
	return db
}

// fixture seeds the academic chain a computation needs: department,
// semester, class, subject and one exam bound to all of them
type fixture struct {
	t    *testing.T
	db   *gorm.DB
	calc *Calculator

	department models.Department
	semester   models.Semester
	class      models.Class
	subject    models.Subject
	exam       models.Exam
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := newTestDB(t)
	f := &fixture{t: t, db: db, calc: NewCalculator(NewGormStore(db))}

	f.department = models.Department{Name: "Computer Science", Code: "CS"}
	require.NoError(t, db.Create(&f.department).Error)

	f.semester = models.Semester{Number: 5, AcademicYear: "2025-26", IsActive: true}
	require.NoError(t, db.Create(&f.semester).Error)

	f.class = models.Class{Name: "5A", DepartmentID: f.department.ID, SemesterID: f.semester.ID}
	require.NoError(t, db.Create(&f.class).Error)

	f.subject = models.Subject{Name: "Databases", Code: "CS501", DepartmentID: f.department.ID, SemesterID: f.semester.ID, Credits: 4}
	require.NoError(t, db.Create(&f.subject).Error)

	f.exam = models.Exam{Title: "CIE 1", SubjectID: f.subject.ID, ClassID: f.class.ID, SemesterID: f.semester.ID}
	require.NoError(t, db.Create(&f.exam).Error)

	return f
}

func (f *fixture) addSection(quota *int) models.Section {
	f.t.Helper()
	section := models.Section{ExamID: f.exam.ID, Name: "Part A", QuestionsToAttempt: quota}
	require.NoError(f.t, f.db.Create(&section).Error)
	return section
}

func (f *fixture) addQuestion(sectionID uint, marks float64, optional bool, coID *uint) models.Question {
	f.t.Helper()
	q := models.Question{
		SectionID:       sectionID,
		Marks:           marks,
		IsOptional:      optional,
		COID:            coID,
		COWeight:        1.0,
		BloomLevel:      models.BloomUnknown,
		DifficultyLevel: models.DifficultyUnknown,
	}
	require.NoError(f.t, f.db.Create(&q).Error)
	return q
}

func (f *fixture) addMark(studentID, questionID uint, obtained, max float64) {
	f.t.Helper()
	mark := models.Mark{
		StudentID:     studentID,
		ExamID:        f.exam.ID,
		QuestionID:    questionID,
		MarksObtained: obtained,
		MaxMarks:      max,
	}
	require.NoError(f.t, f.db.Create(&mark).Error)
}

func (f *fixture) addCourseOutcome(code, description string) models.CourseOutcome {
	f.t.Helper()
	co := models.CourseOutcome{SubjectID: f.subject.ID, Code: code, Description: description}
	require.NoError(f.t, f.db.Create(&co).Error)
	return co
}

func (f *fixture) addProgramOutcome(code, description string) models.ProgramOutcome {
	f.t.Helper()
	po := models.ProgramOutcome{DepartmentID: f.department.ID, Code: code, Description: description}
	require.NoError(f.t, f.db.Create(&po).Error)
	return po
}

func intPtr(v int) *int    { return &v }
func uintPtr(v uint) *uint { return &v }
