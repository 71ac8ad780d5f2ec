package attainment

import (
	"aims/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// QuestionFilter narrows a question lookup. Subject/class/semester filters
// resolve through the owning section's exam.
type QuestionFilter struct {
	SubjectID  *uint
	ClassID    *uint
	SemesterID *uint
	COID       *uint
	SectionID  *uint
}

// MarkFilter narrows a mark lookup
type MarkFilter struct {
	StudentID   *uint
	ExamID      *uint
	QuestionIDs []uint
}

// Store is the narrow storage surface the engine computes over. The rest of
// the application talks to GORM directly; the engine only sees this.
type Store interface {
	GetSection(id uint) (models.Section, error)
	GetClass(id uint) (models.Class, error)
	GetCourseOutcome(id uint) (models.CourseOutcome, error)
	GetProgramOutcome(id uint) (models.ProgramOutcome, error)
	GetQuestions(f QuestionFilter) ([]models.Question, error)
	GetAttempts(studentID uint, questionIDs []uint) ([]models.Attempt, error)
	GetMarks(f MarkFilter) ([]models.Mark, error)
	GetCOPOMappings(coID, poID *uint) ([]models.COPOMapping, error)
	GetSubjects(departmentID, semesterID uint) ([]models.Subject, error)
	GetDepartmentSubjects(departmentID uint) ([]models.Subject, error)
	GetCourseOutcomes(subjectID uint) ([]models.CourseOutcome, error)
	GetProgramOutcomes(departmentID uint) ([]models.ProgramOutcome, error)
	UpsertCOAttainment(rec *models.COAttainment) error
	UpsertPOAttainment(rec *models.POAttainment) error
}

// GormStore adapts a GORM connection to the Store interface
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) GetSection(id uint) (models.Section, error) {
	var section models.Section
	err := s.db.Where("id = ? AND is_deleted = ?", id, false).First(&section).Error
	if err == gorm.ErrRecordNotFound {
		return section, ErrSectionNotFound
	}
	return section, err
}

func (s *GormStore) GetClass(id uint) (models.Class, error) {
	var class models.Class
	err := s.db.Where("id = ? AND is_deleted = ?", id, false).First(&class).Error
	if err == gorm.ErrRecordNotFound {
		return class, ErrClassNotFound
	}
	return class, err
}

func (s *GormStore) GetCourseOutcome(id uint) (models.CourseOutcome, error) {
	var co models.CourseOutcome
	err := s.db.Where("id = ? AND is_deleted = ?", id, false).First(&co).Error
	if err == gorm.ErrRecordNotFound {
		return co, ErrCONotFound
	}
	return co, err
}

func (s *GormStore) GetProgramOutcome(id uint) (models.ProgramOutcome, error) {
	var po models.ProgramOutcome
	err := s.db.Where("id = ? AND is_deleted = ?", id, false).First(&po).Error
	if err == gorm.ErrRecordNotFound {
		return po, ErrPONotFound
	}
	return po, err
}

func (s *GormStore) GetQuestions(f QuestionFilter) ([]models.Question, error) {
	q := s.db.Model(&models.Question{}).Where("questions.is_deleted = ?", false)

	if f.SectionID != nil {
		q = q.Where("questions.section_id = ?", *f.SectionID)
	}
	if f.COID != nil {
		q = q.Where("questions.co_id = ?", *f.COID)
	}
	if f.SubjectID != nil || f.ClassID != nil || f.SemesterID != nil {
		q = q.Joins("JOIN sections ON sections.id = questions.section_id").
			Joins("JOIN exams ON exams.id = sections.exam_id").
			Where("sections.is_deleted = ? AND exams.is_deleted = ?", false, false)
		if f.SubjectID != nil {
			q = q.Where("exams.subject_id = ?", *f.SubjectID)
		}
		if f.ClassID != nil {
			q = q.Where("exams.class_id = ?", *f.ClassID)
		}
		if f.SemesterID != nil {
			q = q.Where("exams.semester_id = ?", *f.SemesterID)
		}
	}

	var questions []models.Question
	err := q.Order("questions.id asc").Find(&questions).Error
	return questions, err
}

func (s *GormStore) GetAttempts(studentID uint, questionIDs []uint) ([]models.Attempt, error) {
	if len(questionIDs) == 0 {
		return nil, nil
	}
	var attempts []models.Attempt
	err := s.db.Where("student_id = ? AND question_id IN ? AND is_deleted = ?", studentID, questionIDs, false).
		Order("question_id asc, attempt_number asc").
		Find(&attempts).Error
	return attempts, err
}

func (s *GormStore) GetMarks(f MarkFilter) ([]models.Mark, error) {
	q := s.db.Model(&models.Mark{}).Where("is_deleted = ?", false)
	if f.StudentID != nil {
		q = q.Where("student_id = ?", *f.StudentID)
	}
	if f.ExamID != nil {
		q = q.Where("exam_id = ?", *f.ExamID)
	}
	if f.QuestionIDs != nil {
		if len(f.QuestionIDs) == 0 {
			return nil, nil
		}
		q = q.Where("question_id IN ?", f.QuestionIDs)
	}
	var marks []models.Mark
	err := q.Order("id asc").Find(&marks).Error
	return marks, err
}

func (s *GormStore) GetCOPOMappings(coID, poID *uint) ([]models.COPOMapping, error) {
	q := s.db.Model(&models.COPOMapping{}).Where("is_deleted = ?", false)
	if coID != nil {
		q = q.Where("co_id = ?", *coID)
	}
	if poID != nil {
		q = q.Where("po_id = ?", *poID)
	}
	var mappings []models.COPOMapping
	err := q.Order("id asc").Find(&mappings).Error
	return mappings, err
}

func (s *GormStore) GetSubjects(departmentID, semesterID uint) ([]models.Subject, error) {
	var subjects []models.Subject
	err := s.db.Where("department_id = ? AND semester_id = ? AND is_deleted = ?", departmentID, semesterID, false).
		Order("id asc").Find(&subjects).Error
	return subjects, err
}

func (s *GormStore) GetDepartmentSubjects(departmentID uint) ([]models.Subject, error) {
	var subjects []models.Subject
	err := s.db.Where("department_id = ? AND is_deleted = ?", departmentID, false).
		Order("id asc").Find(&subjects).Error
	return subjects, err
}

func (s *GormStore) GetCourseOutcomes(subjectID uint) ([]models.CourseOutcome, error) {
	var cos []models.CourseOutcome
	err := s.db.Where("subject_id = ? AND is_deleted = ?", subjectID, false).
		Order("id asc").Find(&cos).Error
	return cos, err
}

func (s *GormStore) GetProgramOutcomes(departmentID uint) ([]models.ProgramOutcome, error) {
	var pos []models.ProgramOutcome
	err := s.db.Where("department_id = ? AND is_deleted = ?", departmentID, false).
		Order("id asc").Find(&pos).Error
	return pos, err
}

// UpsertCOAttainment replaces the cached attainment row for its key tuple.
// Replace-by-key only: there is deliberately no accumulate path.
func (s *GormStore) UpsertCOAttainment(rec *models.COAttainment) error {
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "co_id"}, {Name: "semester_id"}, {Name: "class_id"}, {Name: "subject_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"attainment_percentage", "student_count", "question_count",
			"bloom_distribution", "difficulty_distribution", "computed_at", "updated_at",
		}),
	}).Create(rec).Error
}

// UpsertPOAttainment replaces the cached attainment row for its key tuple
func (s *GormStore) UpsertPOAttainment(rec *models.POAttainment) error {
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "po_id"}, {Name: "semester_id"}, {Name: "class_id"}, {Name: "department_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"attainment_percentage", "student_count", "co_contributions", "computed_at", "updated_at",
		}),
	}).Create(rec).Error
}
