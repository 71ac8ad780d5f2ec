package attainment

import (
	"aims/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SelectBest returns the index of the best attempt: highest marks obtained,
// ties broken by the most recent attempt number. Returns -1 for an empty set.
func SelectBest(attempts []models.Attempt) int {
	best := -1
	for i, a := range attempts {
		if best < 0 {
			best = i
			continue
		}
		if a.MarksObtained > attempts[best].MarksObtained {
			best = i
		} else if a.MarksObtained == attempts[best].MarksObtained && a.AttemptNumber > attempts[best].AttemptNumber {
			best = i
		}
	}
	return best
}

// ReflagBest re-evaluates the full attempt set for one (student, question),
// leaves exactly one attempt flagged best, and mirrors it into the marks
// table. The attempt rows are locked for the duration of the transaction so
// concurrent submissions cannot leave two attempts flagged, or none.
func ReflagBest(db *gorm.DB, studentID, questionID uint) (models.Attempt, error) {
	var best models.Attempt

	err := db.Transaction(func(tx *gorm.DB) error {
		q := tx.Where("student_id = ? AND question_id = ? AND is_deleted = ?", studentID, questionID, false)
		// sqlite has no row locks; its writes serialize on the database file
		if tx.Dialector.Name() != "sqlite" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var attempts []models.Attempt
		if err := q.Order("attempt_number asc").Find(&attempts).Error; err != nil {
			return err
		}
		if len(attempts) == 0 {
			return ErrNoAttempts
		}

		best = attempts[SelectBest(attempts)]

		if err := tx.Model(&models.Attempt{}).
			Where("student_id = ? AND question_id = ? AND id <> ? AND is_best_attempt = ?",
				studentID, questionID, best.ID, true).
			Update("is_best_attempt", false).Error; err != nil {
			return err
		}
		if !best.IsBestAttempt {
			if err := tx.Model(&models.Attempt{}).Where("id = ?", best.ID).
				Update("is_best_attempt", true).Error; err != nil {
				return err
			}
			best.IsBestAttempt = true
		}

		return mirrorMark(tx, best)
	})

	return best, err
}

// mirrorMark upserts the mark row for the best attempt so reporting always
// reads the current canonical score
func mirrorMark(tx *gorm.DB, best models.Attempt) error {
	var question models.Question
	if err := tx.First(&question, best.QuestionID).Error; err != nil {
		return err
	}
	var section models.Section
	if err := tx.First(&section, question.SectionID).Error; err != nil {
		return err
	}

	mark := models.Mark{
		StudentID:     best.StudentID,
		ExamID:        section.ExamID,
		QuestionID:    best.QuestionID,
		MarksObtained: best.MarksObtained,
		MaxMarks:      best.MaxMarks,
	}
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "student_id"}, {Name: "exam_id"}, {Name: "question_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"marks_obtained", "max_marks", "updated_at"}),
	}).Create(&mark).Error
}
