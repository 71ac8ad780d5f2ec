package attainment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tokens := tokenize("Design and apply relational database schemas, using normalization.")

	assert.Contains(t, tokens, "design")
	assert.Contains(t, tokens, "relational")
	assert.Contains(t, tokens, "database")
	assert.Contains(t, tokens, "schemas")
	assert.Contains(t, tokens, "normalization")
	// stop words and punctuation never survive
	assert.NotContains(t, tokens, "and")
	assert.NotContains(t, tokens, "apply")
	assert.NotContains(t, tokens, "using")
	assert.NotContains(t, tokens, "schemas,")
}

func TestJaccard(t *testing.T) {
	a := tokenize("alpha beta gamma")
	b := tokenize("beta gamma delta")

	assert.InDelta(t, 0.5, jaccard(a, b), 1e-9) // 2 shared of 4 total
	assert.Equal(t, 1.0, jaccard(a, a))
	assert.Equal(t, 0.0, jaccard(a, tokenize("epsilon")))
	assert.Equal(t, 0.0, jaccard(nil, nil))
}

func TestStrengthFor(t *testing.T) {
	assert.Equal(t, 0, strengthFor(0.09))
	assert.Equal(t, 1, strengthFor(0.10))
	assert.Equal(t, 1, strengthFor(0.24))
	assert.Equal(t, 2, strengthFor(0.25))
	assert.Equal(t, 2, strengthFor(0.44))
	assert.Equal(t, 3, strengthFor(0.45))
	assert.Equal(t, 3, strengthFor(1.0))
}

func TestSuggestMappings(t *testing.T) {
	f := newFixture(t)

	po1 := f.addProgramOutcome("PO1", "design database systems")
	f.addProgramOutcome("PO2", "ethics communication teamwork")
	co := f.addCourseOutcome("CO1", "design relational database schemas normalization")

	recommendations, err := f.calc.SuggestMappings(f.department.ID)
	require.NoError(t, err)

	require.Len(t, recommendations, 1)
	assert.Equal(t, co.ID, recommendations[0].COID)
	assert.Equal(t, po1.ID, recommendations[0].POID)
	// {design, database} shared of 6 distinct tokens
	assert.Equal(t, 0.33, recommendations[0].Similarity)
	assert.Equal(t, 2, recommendations[0].SuggestedStrength)
}

func TestSuggestMappingsSkipsExistingPairs(t *testing.T) {
	f := newFixture(t)

	po := f.addProgramOutcome("PO1", "design database systems")
	co := f.addCourseOutcome("CO1", "design relational database schemas normalization")
	f.addMapping(co.ID, po.ID, 2)

	recommendations, err := f.calc.SuggestMappings(f.department.ID)
	require.NoError(t, err)
	assert.Empty(t, recommendations)
}

func TestSuggestMappingsSortedBySimilarity(t *testing.T) {
	f := newFixture(t)

	f.addProgramOutcome("PO1", "design database systems")
	f.addProgramOutcome("PO2", "database normalization schemas design relational")
	f.addCourseOutcome("CO1", "design relational database schemas normalization")

	recommendations, err := f.calc.SuggestMappings(f.department.ID)
	require.NoError(t, err)

	require.Len(t, recommendations, 2)
	assert.GreaterOrEqual(t, recommendations[0].Similarity, recommendations[1].Similarity)
	assert.Equal(t, 3, recommendations[0].SuggestedStrength)
	assert.Equal(t, 1.0, recommendations[0].Similarity)
}
