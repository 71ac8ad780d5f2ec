package attainment

import (
	"aims/models"
	"encoding/json"
	"time"
)

// COContribution is one course outcome's share of a program outcome
type COContribution struct {
	COID       uint    `json:"co_id"`
	Attainment float64 `json:"attainment"`
	Weight     int     `json:"weight"`
	Error      string  `json:"error,omitempty"`
}

// POAttainmentResult is the computed attainment for one program outcome
type POAttainmentResult struct {
	POID          uint             `json:"po_id"`
	SemesterID    uint             `json:"semester_id"`
	ClassID       uint             `json:"class_id"`
	DepartmentID  uint             `json:"department_id"`
	Percentage    float64          `json:"percentage"`
	StudentCount  int              `json:"student_count"`
	Contributions []COContribution `json:"co_contributions"`
}

// POAttainment computes the weighted mean of the mapped course outcomes'
// attainments, weighted by mapping strength, and overwrites the cached
// record for the (po, semester, class, department) key.
//
// A course outcome that fails to compute, or has no authored questions,
// contributes 0 while keeping its full weight in the denominator, so empty
// outcomes structurally depress program attainment. Observed source
// behavior, kept as-is; see DESIGN.md. One failing course outcome never
// aborts the rest of the loop.
func (c *Calculator) POAttainment(poID, semesterID, classID, departmentID uint) (POAttainmentResult, error) {
	result := POAttainmentResult{
		POID:          poID,
		SemesterID:    semesterID,
		ClassID:       classID,
		DepartmentID:  departmentID,
		Contributions: []COContribution{},
	}

	if _, err := c.store.GetProgramOutcome(poID); err != nil {
		return result, err
	}

	mappings, err := c.store.GetCOPOMappings(nil, &poID)
	if err != nil {
		return result, err
	}

	var weightedSum float64
	var totalWeight int
	for _, m := range mappings {
		contribution := COContribution{COID: m.COID, Weight: m.MappingStrength}

		co, err := c.store.GetCourseOutcome(m.COID)
		if err != nil {
			contribution.Error = err.Error()
		} else {
			coResult, err := c.COAttainment(m.COID, semesterID, classID, co.SubjectID)
			if err != nil {
				contribution.Error = err.Error()
			} else {
				contribution.Attainment = coResult.Percentage
				if coResult.StudentCount > result.StudentCount {
					result.StudentCount = coResult.StudentCount
				}
			}
		}

		weightedSum += contribution.Attainment * float64(contribution.Weight)
		totalWeight += contribution.Weight
		result.Contributions = append(result.Contributions, contribution)
	}

	result.Percentage = Round2(ClampPercent(SafeDivide(weightedSum, float64(totalWeight), 0)))

	if err := c.upsertPORecord(result); err != nil {
		return result, err
	}
	return result, nil
}

func (c *Calculator) upsertPORecord(result POAttainmentResult) error {
	contributionsJSON, err := json.Marshal(result.Contributions)
	if err != nil {
		return err
	}

	record := models.POAttainment{
		POID:                 result.POID,
		SemesterID:           result.SemesterID,
		ClassID:              result.ClassID,
		DepartmentID:         result.DepartmentID,
		AttainmentPercentage: result.Percentage,
		StudentCount:         result.StudentCount,
		COContributions:      contributionsJSON,
		ComputedAt:           time.Now(),
	}
	return c.store.UpsertPOAttainment(&record)
}
