package attainment

import "sort"

// QuestionScore pairs an optional question with its best-attempt outcome
type QuestionScore struct {
	QuestionID uint    `json:"question_id"`
	Marks      float64 `json:"marks"`    // nominal max marks
	Obtained   float64 `json:"obtained"` // best-attempt marks, 0 if unattempted
	Attempted  bool    `json:"attempted"`
}

// OptionalPick is the picker outcome. Rejected questions are retained for
// reporting but excluded from every total.
type OptionalPick struct {
	Selected    []QuestionScore `json:"selected"`
	Rejected    []QuestionScore `json:"rejected"`
	Obtained    float64         `json:"obtained"`     // sum of selected best-attempt marks
	MaxPossible float64         `json:"max_possible"` // sum of nominal marks over the top-N questions by marks
}

// PickOptional selects the quota-sized subset of optional questions that
// maximizes the student's score: greedy by best-attempt marks descending,
// ties broken by ascending question ID. A nil quota selects everything.
//
// The max-possible denominator is computed independently of attempt
// outcomes, from the N highest-value questions by nominal marks. A
// "best possible N questions" baseline, which can diverge from the attempted
// set when a high-value question went unattempted.
func PickOptional(quota *int, optional []QuestionScore) OptionalPick {
	byScore := make([]QuestionScore, len(optional))
	copy(byScore, optional)
	sort.SliceStable(byScore, func(i, j int) bool {
		if byScore[i].Obtained != byScore[j].Obtained {
			return byScore[i].Obtained > byScore[j].Obtained
		}
		return byScore[i].QuestionID < byScore[j].QuestionID
	})

	n := len(byScore)
	if quota != nil && *quota >= 0 && *quota < n {
		n = *quota
	}

	pick := OptionalPick{
		Selected: byScore[:n],
		Rejected: byScore[n:],
	}
	for _, qs := range pick.Selected {
		pick.Obtained += qs.Obtained
	}

	byValue := make([]QuestionScore, len(optional))
	copy(byValue, optional)
	sort.SliceStable(byValue, func(i, j int) bool {
		if byValue[i].Marks != byValue[j].Marks {
			return byValue[i].Marks > byValue[j].Marks
		}
		return byValue[i].QuestionID < byValue[j].QuestionID
	})
	for _, qs := range byValue[:n] {
		pick.MaxPossible += qs.Marks
	}

	return pick
}
