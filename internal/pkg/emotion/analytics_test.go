package emotion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateEmpty(t *testing.T) {
	s := Aggregate(nil)

	assert.Equal(t, 0, s.TotalRecords)
	assert.Empty(t, s.Counts)
	assert.Equal(t, "", s.MostFrequent)
	assert.Equal(t, 0, s.PositiveRatio)
}

func TestAggregateCountsAndRatio(t *testing.T) {
	types := []string{"joy", "anxious", "joy", "calm", "sadness", "joy"}
	s := Aggregate(types)

	assert.Equal(t, 6, s.TotalRecords)
	assert.Equal(t, "joy", s.MostFrequent)

	sum := 0
	for _, c := range s.Counts {
		sum += c.Count
	}
	assert.Equal(t, s.TotalRecords, sum)

	// joy + calm = 4/6 ≈ 66.67 → 67
	assert.Equal(t, 67, s.PositiveRatio)
	assert.GreaterOrEqual(t, s.PositiveRatio, 0)
	assert.LessOrEqual(t, s.PositiveRatio, 100)
}

func TestAggregateStableTieBreak(t *testing.T) {
	// anxious 与 joy 同为 2 次，anxious 先出现
	s := Aggregate([]string{"anxious", "joy", "anxious", "joy", "calm"})

	require.Len(t, s.Counts, 3)
	assert.Equal(t, "anxious", s.Counts[0].Type)
	assert.Equal(t, "joy", s.Counts[1].Type)
	assert.Equal(t, "anxious", s.MostFrequent)
}

func TestAggregateAllPositive(t *testing.T) {
	s := Aggregate([]string{"joy", "calm", "gratitude"})
	assert.Equal(t, 100, s.PositiveRatio)
}

func TestTopN(t *testing.T) {
	top := TopN([]string{"walking", "rest", "walking", "music", "rest", "walking"}, 2)
	assert.Equal(t, []string{"walking", "rest"}, top)

	// n 大于种类数时全部返回
	top = TopN([]string{"walking"}, 3)
	assert.Equal(t, []string{"walking"}, top)

	assert.Empty(t, TopN(nil, 3))
}

func TestFallbackInsightDeterministic(t *testing.T) {
	s := Aggregate([]string{"joy", "joy", "anxious"})

	first := FallbackInsight(s)
	second := FallbackInsight(s)
	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestFallbackInsightToneBranches(t *testing.T) {
	high := FallbackInsight(Summary{TotalRecords: 10, MostFrequent: "joy", PositiveRatio: 70})
	mid := FallbackInsight(Summary{TotalRecords: 10, MostFrequent: "joy", PositiveRatio: 50})
	low := FallbackInsight(Summary{TotalRecords: 10, MostFrequent: "sadness", PositiveRatio: 20})

	assert.NotEqual(t, high, mid)
	assert.NotEqual(t, mid, low)
	assert.NotEqual(t, high, low)
}

func TestFallbackInsightEmpty(t *testing.T) {
	assert.Equal(t, NoDataInsight(), FallbackInsight(Summary{}))
}
