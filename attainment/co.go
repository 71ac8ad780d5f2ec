package attainment

import (
	"aims/models"
	"encoding/json"
	"time"
)

// COAttainmentResult is the computed attainment for one course outcome in
// one (semester, class, subject) context
type COAttainmentResult struct {
	COID              uint               `json:"co_id"`
	SemesterID        uint               `json:"semester_id"`
	ClassID           uint               `json:"class_id"`
	SubjectID         uint               `json:"subject_id"`
	Percentage        float64            `json:"percentage"`
	StudentCount      int                `json:"student_count"`
	QuestionCount     int                `json:"question_count"`
	BloomCounts       map[string]int     `json:"bloom_counts"`
	BloomMastery      map[string]float64 `json:"bloom_mastery"`
	DifficultyCounts  map[string]int     `json:"difficulty_counts"`
	DifficultyMastery map[string]float64 `json:"difficulty_mastery"`
}

// levelSnapshot is the JSON shape persisted on the attainment record
type levelSnapshot struct {
	Counts  map[string]int     `json:"counts"`
	Mastery map[string]float64 `json:"mastery"`
}

// COAttainment computes the attainment percentage for a course outcome over
// every recorded mark on its tagged questions, then overwrites the cached
// record for the (co, semester, class, subject) key. No questions or no
// marks is a zero result, not an error. Each mark contributes its obtained
// score against the question's nominal marks, both scaled by the question's
// CO weight; the result is clamped to 100.
func (c *Calculator) COAttainment(coID, semesterID, classID, subjectID uint) (COAttainmentResult, error) {
	result := COAttainmentResult{
		COID:       coID,
		SemesterID: semesterID,
		ClassID:    classID,
		SubjectID:  subjectID,
	}

	if _, err := c.store.GetCourseOutcome(coID); err != nil {
		return result, err
	}

	questions, err := c.store.GetQuestions(QuestionFilter{
		COID:       &coID,
		SubjectID:  &subjectID,
		ClassID:    &classID,
		SemesterID: &semesterID,
	})
	if err != nil {
		return result, err
	}
	result.QuestionCount = len(questions)

	questionIDs := make([]uint, len(questions))
	weightByQuestion := make(map[uint]float64, len(questions))
	marksByQuestion := make(map[uint]float64, len(questions))
	for i, q := range questions {
		questionIDs[i] = q.ID
		weightByQuestion[q.ID] = q.COWeight
		marksByQuestion[q.ID] = q.Marks
	}

	marks, err := c.store.GetMarks(MarkFilter{QuestionIDs: questionIDs})
	if err != nil {
		return result, err
	}

	var obtained, possible float64
	students := map[uint]struct{}{}
	for _, m := range marks {
		w := weightByQuestion[m.QuestionID]
		obtained += m.MarksObtained * w
		possible += marksByQuestion[m.QuestionID] * w
		students[m.StudentID] = struct{}{}
	}
	result.StudentCount = len(students)
	result.Percentage = Round2(ClampPercent(SafeDivide(obtained, possible, 0) * 100))

	result.BloomCounts = levelCounts(questions, bloomOf, models.BloomLevels())
	result.BloomMastery = levelMastery(questions, marks, bloomOf, models.BloomLevels())
	result.DifficultyCounts = levelCounts(questions, difficultyOf, models.DifficultyLevels())
	result.DifficultyMastery = levelMastery(questions, marks, difficultyOf, models.DifficultyLevels())

	if err := c.upsertCORecord(result); err != nil {
		return result, err
	}
	return result, nil
}

func (c *Calculator) upsertCORecord(result COAttainmentResult) error {
	bloomJSON, err := json.Marshal(levelSnapshot{Counts: result.BloomCounts, Mastery: result.BloomMastery})
	if err != nil {
		return err
	}
	difficultyJSON, err := json.Marshal(levelSnapshot{Counts: result.DifficultyCounts, Mastery: result.DifficultyMastery})
	if err != nil {
		return err
	}

	record := models.COAttainment{
		COID:                   result.COID,
		SemesterID:             result.SemesterID,
		ClassID:                result.ClassID,
		SubjectID:              result.SubjectID,
		AttainmentPercentage:   result.Percentage,
		StudentCount:           result.StudentCount,
		QuestionCount:          result.QuestionCount,
		BloomDistribution:      bloomJSON,
		DifficultyDistribution: difficultyJSON,
		ComputedAt:             time.Now(),
	}
	return c.store.UpsertCOAttainment(&record)
}
