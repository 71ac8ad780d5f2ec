package attainment

// RecomputeItem reports one outcome's recomputation inside a batch run.
// Failures stay on the item; they never abort the batch.
type RecomputeItem struct {
	Kind       string  `json:"kind"` // "CO" or "PO"
	OutcomeID  uint    `json:"outcome_id"`
	SubjectID  uint    `json:"subject_id,omitempty"`
	Percentage float64 `json:"percentage"`
	Error      string  `json:"error,omitempty"`
}

// RecomputeClass refreshes every cached CO and PO attainment record for one
// class in one semester. The whole run is synchronous; callers get the full
// per-outcome report when it returns.
func (c *Calculator) RecomputeClass(classID, semesterID uint) ([]RecomputeItem, error) {
	class, err := c.store.GetClass(classID)
	if err != nil {
		return nil, err
	}

	items := []RecomputeItem{}

	subjects, err := c.store.GetSubjects(class.DepartmentID, semesterID)
	if err != nil {
		return nil, err
	}
	for _, subject := range subjects {
		cos, err := c.store.GetCourseOutcomes(subject.ID)
		if err != nil {
			return nil, err
		}
		for _, co := range cos {
			item := RecomputeItem{Kind: "CO", OutcomeID: co.ID, SubjectID: subject.ID}
			result, err := c.COAttainment(co.ID, semesterID, classID, subject.ID)
			if err != nil {
				item.Error = err.Error()
			} else {
				item.Percentage = result.Percentage
			}
			items = append(items, item)
		}
	}

	pos, err := c.store.GetProgramOutcomes(class.DepartmentID)
	if err != nil {
		return nil, err
	}
	for _, po := range pos {
		item := RecomputeItem{Kind: "PO", OutcomeID: po.ID}
		result, err := c.POAttainment(po.ID, semesterID, classID, class.DepartmentID)
		if err != nil {
			item.Error = err.Error()
		} else {
			item.Percentage = result.Percentage
		}
		items = append(items, item)
	}

	return items, nil
}
