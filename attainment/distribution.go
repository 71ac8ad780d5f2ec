package attainment

import "aims/models"

func bloomOf(q models.Question) string {
	for _, level := range models.BloomLevels() {
		if q.BloomLevel == level {
			return level
		}
	}
	return models.BloomUnknown
}

func difficultyOf(q models.Question) string {
	for _, level := range models.DifficultyLevels() {
		if q.DifficultyLevel == level {
			return level
		}
	}
	return models.DifficultyUnknown
}

// levelCounts groups questions per level. Every vocabulary key is present in
// the output, zero when no question carries the level.
func levelCounts(questions []models.Question, levelOf func(models.Question) string, vocab []string) map[string]int {
	counts := make(map[string]int, len(vocab))
	for _, level := range vocab {
		counts[level] = 0
	}
	for _, q := range questions {
		counts[levelOf(q)]++
	}
	return counts
}

// levelMastery computes the attainment percentage per level over the marks
// recorded for the given questions. Levels with no questions or no marks
// resolve to 0; every vocabulary key is present.
func levelMastery(questions []models.Question, marks []models.Mark, levelOf func(models.Question) string, vocab []string) map[string]float64 {
	levelByQuestion := make(map[uint]string, len(questions))
	for _, q := range questions {
		levelByQuestion[q.ID] = levelOf(q)
	}

	obtained := map[string]float64{}
	possible := map[string]float64{}
	for _, m := range marks {
		level, ok := levelByQuestion[m.QuestionID]
		if !ok {
			continue
		}
		obtained[level] += m.MarksObtained
		possible[level] += m.MaxMarks
	}

	mastery := make(map[string]float64, len(vocab))
	for _, level := range vocab {
		mastery[level] = Round2(ClampPercent(SafeDivide(obtained[level], possible[level], 0) * 100))
	}
	return mastery
}

// BloomDistribution counts questions per Bloom's level for the filtered set
func (c *Calculator) BloomDistribution(f QuestionFilter) (map[string]int, error) {
	questions, err := c.store.GetQuestions(f)
	if err != nil {
		return nil, err
	}
	return levelCounts(questions, bloomOf, models.BloomLevels()), nil
}

// DifficultyDistribution counts questions per difficulty level for the filtered set
func (c *Calculator) DifficultyDistribution(f QuestionFilter) (map[string]int, error) {
	questions, err := c.store.GetQuestions(f)
	if err != nil {
		return nil, err
	}
	return levelCounts(questions, difficultyOf, models.DifficultyLevels()), nil
}

// BloomMastery computes the per-Bloom's-level attainment percentage for the
// filtered set
func (c *Calculator) BloomMastery(f QuestionFilter) (map[string]float64, error) {
	questions, marks, err := c.questionsWithMarks(f)
	if err != nil {
		return nil, err
	}
	return levelMastery(questions, marks, bloomOf, models.BloomLevels()), nil
}

// DifficultyMastery computes the per-difficulty-level attainment percentage
// for the filtered set
func (c *Calculator) DifficultyMastery(f QuestionFilter) (map[string]float64, error) {
	questions, marks, err := c.questionsWithMarks(f)
	if err != nil {
		return nil, err
	}
	return levelMastery(questions, marks, difficultyOf, models.DifficultyLevels()), nil
}

func (c *Calculator) questionsWithMarks(f QuestionFilter) ([]models.Question, []models.Mark, error) {
	questions, err := c.store.GetQuestions(f)
	if err != nil {
		return nil, nil, err
	}
	questionIDs := make([]uint, len(questions))
	for i, q := range questions {
		questionIDs[i] = q.ID
	}
	marks, err := c.store.GetMarks(MarkFilter{QuestionIDs: questionIDs})
	if err != nil {
		return nil, nil, err
	}
	return questions, marks, nil
}
