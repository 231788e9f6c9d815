package metrics

import (
	"testing"

	"github.com/fin-tools/ledger-lens/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopNWithOther_FewerThanN(t *testing.T) {
	items := []domain.ExpenseItem{
		{Name: "Rent", Value: 500},
		{Name: "Software", Value: 800},
	}

	ranked := TopNWithOther(items, 5)

	require.Len(t, ranked, 2)
	assert.Equal(t, "Software", ranked[0].Name)
	assert.Equal(t, "Rent", ranked[1].Name)
}

func TestTopNWithOther_BucketsRemainder(t *testing.T) {
	items := []domain.ExpenseItem{
		{Name: "Rent", Value: 500},
		{Name: "Software", Value: 800},
		{Name: "Travel", Value: 120},
		{Name: "Insurance", Value: 300},
		{Name: "Meals", Value: 80},
	}

	ranked := TopNWithOther(items, 3)

	require.Len(t, ranked, 4)
	assert.Equal(t, "Software", ranked[0].Name)
	assert.Equal(t, "Rent", ranked[1].Name)
	assert.Equal(t, "Insurance", ranked[2].Name)
	assert.Equal(t, OtherBucketName, ranked[3].Name)
	assert.Equal(t, 200.0, ranked[3].Value)
}

func TestTopNWithOther_StableTies(t *testing.T) {
	items := []domain.ExpenseItem{
		{Name: "A", Value: 100},
		{Name: "B", Value: 100},
		{Name: "C", Value: 100},
	}

	ranked := TopNWithOther(items, 2)

	require.Len(t, ranked, 3)
	assert.Equal(t, "A", ranked[0].Name)
	assert.Equal(t, "B", ranked[1].Name)
	assert.Equal(t, 100.0, ranked[2].Value)
}

func TestTopNWithOther_Empty(t *testing.T) {
	assert.Nil(t, TopNWithOther(nil, 5))
}

func TestTopNWithOther_DoesNotMutateInput(t *testing.T) {
	items := []domain.ExpenseItem{
		{Name: "Low", Value: 1},
		{Name: "High", Value: 9},
	}
	TopNWithOther(items, 1)
	assert.Equal(t, "Low", items[0].Name)
}

func TestGrowthRate(t *testing.T) {
	assert.Equal(t, 50.0, GrowthRate(150, 100))
	assert.Equal(t, -20.0, GrowthRate(80, 100))
	assert.Equal(t, 0.0, GrowthRate(123, 0))
	assert.Equal(t, 0.0, GrowthRate(0, 0))
	assert.Equal(t, 0.0, GrowthRate(-50, 0))
}

func TestProfitMargin(t *testing.T) {
	assert.Equal(t, 25.0, ProfitMargin(250, 1000))
	assert.Equal(t, -10.0, ProfitMargin(-100, 1000))
	assert.Equal(t, 0.0, ProfitMargin(500, 0))
	assert.Equal(t, 0.0, ProfitMargin(500, -100))
}

func TestSeriesGrowth(t *testing.T) {
	s := domain.PeriodSeries{
		{Label: "Q1", Value: 100},
		{Label: "Q2", Value: 200},
		{Label: "Q3", Value: 300},
	}
	assert.Equal(t, 50.0, SeriesGrowth(s))

	assert.Equal(t, 0.0, SeriesGrowth(domain.PeriodSeries{{Label: "Q1", Value: 5}}))
	assert.Equal(t, 0.0, SeriesGrowth(nil))
}
