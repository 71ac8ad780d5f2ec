package attainment

import "aims/models"

// SmartMarksResult is the section score after best-attempt selection and
// optional-question picking
type SmartMarksResult struct {
	ExamID             uint    `json:"exam_id"`
	StudentID          uint    `json:"student_id"`
	SectionID          uint    `json:"section_id"`
	MandatoryMarks     float64 `json:"mandatory_marks"`
	OptionalMarks      float64 `json:"optional_marks"`
	TotalMarks         float64 `json:"total_marks"`
	MaxPossible        float64 `json:"max_possible"`
	Percentage         float64 `json:"percentage"`
	QuestionsAttempted int     `json:"questions_attempted"`
	SelectedOptional   []uint  `json:"selected_optional"`
	RejectedOptional   []uint  `json:"rejected_optional"`
}

// Calculator computes smart marks and CO/PO attainment over a Store
type Calculator struct {
	store Store
}

func NewCalculator(store Store) *Calculator {
	return &Calculator{store: store}
}

// SmartMarks scores one section of an exam for one student. Mandatory
// questions always count (zero against full max when unattempted); optional
// questions count only when the picker selects them. A section with no
// questions is a zero result, not an error.
func (c *Calculator) SmartMarks(examID, studentID, sectionID uint) (SmartMarksResult, error) {
	result := SmartMarksResult{
		ExamID:           examID,
		StudentID:        studentID,
		SectionID:        sectionID,
		SelectedOptional: []uint{},
		RejectedOptional: []uint{},
	}

	section, err := c.store.GetSection(sectionID)
	if err != nil {
		return result, err
	}
	if section.ExamID != examID {
		return result, ErrSectionNotFound
	}

	questions, err := c.store.GetQuestions(QuestionFilter{SectionID: &sectionID})
	if err != nil {
		return result, err
	}
	if len(questions) == 0 {
		return result, nil
	}

	questionIDs := make([]uint, len(questions))
	for i, q := range questions {
		questionIDs[i] = q.ID
	}
	attempts, err := c.store.GetAttempts(studentID, questionIDs)
	if err != nil {
		return result, err
	}
	best := bestByQuestion(attempts)

	var mandatoryMax float64
	var optional []QuestionScore
	for _, q := range questions {
		if q.IsOptional {
			qs := QuestionScore{QuestionID: q.ID, Marks: q.Marks}
			if a, ok := best[q.ID]; ok {
				qs.Obtained = a.MarksObtained
				qs.Attempted = true
			}
			optional = append(optional, qs)
			continue
		}
		mandatoryMax += q.Marks
		if a, ok := best[q.ID]; ok {
			result.MandatoryMarks += a.MarksObtained
			result.QuestionsAttempted++
		}
	}

	pick := PickOptional(section.QuestionsToAttempt, optional)
	for _, qs := range pick.Selected {
		result.SelectedOptional = append(result.SelectedOptional, qs.QuestionID)
		if qs.Attempted {
			result.QuestionsAttempted++
		}
	}
	for _, qs := range pick.Rejected {
		result.RejectedOptional = append(result.RejectedOptional, qs.QuestionID)
	}

	result.OptionalMarks = pick.Obtained
	result.TotalMarks = result.MandatoryMarks + result.OptionalMarks
	result.MaxPossible = mandatoryMax + pick.MaxPossible
	result.Percentage = Round2(ClampPercent(SafeDivide(result.TotalMarks, result.MaxPossible, 0) * 100))

	return result, nil
}

// bestByQuestion resolves one canonical attempt per question, trusting the
// stored flag and falling back to the selection policy when no flag is set
func bestByQuestion(attempts []models.Attempt) map[uint]models.Attempt {
	grouped := map[uint][]models.Attempt{}
	for _, a := range attempts {
		grouped[a.QuestionID] = append(grouped[a.QuestionID], a)
	}

	out := make(map[uint]models.Attempt, len(grouped))
	for qid, group := range grouped {
		flagged := -1
		for i, a := range group {
			if a.IsBestAttempt {
				flagged = i
				break
			}
		}
		if flagged < 0 {
			flagged = SelectBest(group)
		}
		out[qid] = group[flagged]
	}
	return out
}
