package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KarloVrd/FlunkyStats/internal/dataset"
)

var testReference = time.Date(2024, 9, 20, 0, 0, 0, 0, time.UTC)

func TestCompute_Participants(t *testing.T) {
	table := &dataset.Table{
		Days: []string{"Dan1", "Dan2", "Dan3", "Dan4", "Dan5", "Dan6", "Dan7"},
		Records: []dataset.Record{
			{Section: "Prvi odred", Name: "Pero Perić", BirthDate: "15.03.1995",
				Days: []int{3, 2, 1, 0, 4, 2, 1}},
			{Section: "Drugi odred", Name: "Ana Anić", BirthDate: "N/A",
				Days: []int{2, 2, 2, 2, 2, 2, 2}},
			{Section: "Drugi odred", Name: "Ivo Ivić", BirthDate: "01.01.2000",
				Days: []int{0, 0, 0, 0, 0, 0, 0}},
		},
	}

	s := Compute(table, testReference)
	require.Len(t, s.Participants, 3)

	pero := s.Participants[0]
	assert.Equal(t, 13, pero.Total)
	assert.Equal(t, 4, pero.Max)
	assert.Equal(t, 6, pero.DaysPresent)
	assert.Equal(t, 29, pero.Age)
	assert.True(t, pero.CVValid)

	// Constant nonzero series: zero variance, CV defined and zero.
	ana := s.Participants[1]
	assert.True(t, ana.CVValid)
	assert.Equal(t, 0.0, ana.CV)
	assert.Equal(t, -1, ana.Age)

	// All-zero series: mean is zero, CV undefined rather than a
	// division error.
	ivo := s.Participants[2]
	assert.False(t, ivo.CVValid)
	assert.Equal(t, 0.0, ivo.CV)
}

func TestCompute_SampleStdDev(t *testing.T) {
	table := &dataset.Table{
		Days: []string{"Dan1", "Dan2", "Dan3", "Dan4"},
		Records: []dataset.Record{
			{Name: "Pero", Section: "Odred", BirthDate: "N/A", Days: []int{2, 4, 4, 6}},
		},
	}

	p := Compute(table, testReference).Participants[0]
	assert.InDelta(t, 4.0, p.Mean, 1e-9)
	// Sample (n-1) standard deviation of [2,4,4,6].
	assert.InDelta(t, 1.632993, p.StdDev, 1e-6)
	assert.InDelta(t, 0.408248, p.CV, 1e-6)
}

func TestCompute_Sections(t *testing.T) {
	table := &dataset.Table{
		Days: []string{"Dan1", "Dan2"},
		Records: []dataset.Record{
			{Section: "Prvi odred", Name: "Pero", BirthDate: "N/A", Days: []int{5, 5}},
			{Section: "Prvi odred", Name: "Ana", BirthDate: "N/A", Days: []int{1, 2}},
			{Section: "Prvi odred - Drugi odred", Name: "Ivo", BirthDate: "N/A", Days: []int{4, 0}},
		},
	}

	s := Compute(table, testReference)
	require.Len(t, s.Sections, 2)

	// Ivo's dual membership counts toward both sections.
	prvi := s.Sections[1]
	assert.Equal(t, "Prvi odred", prvi.Section)
	assert.Equal(t, 3, prvi.Members)
	assert.Equal(t, 17, prvi.Total)
	// Hand-computed: (10 + 3 + 4) / 3.
	assert.InDelta(t, 17.0/3.0, prvi.PerPerson, 1e-9)

	drugi := s.Sections[0]
	assert.Equal(t, "Drugi odred", drugi.Section)
	assert.Equal(t, 1, drugi.Members)
	assert.InDelta(t, 4.0, drugi.PerPerson, 1e-9)
}

func TestCompute_Daily(t *testing.T) {
	table := &dataset.Table{
		Days: []string{"Dan1", "Dan2"},
		Records: []dataset.Record{
			{Section: "A", Name: "Pero", BirthDate: "N/A", Days: []int{3, 0}},
			{Section: "A", Name: "Ana", BirthDate: "N/A", Days: []int{2, 0}},
			{Section: "A", Name: "Ivo", BirthDate: "N/A", Days: []int{0, 1}},
			{Section: "A", Name: "Mia", BirthDate: "N/A", Days: []int{1, 1}},
		},
	}

	daily := Compute(table, testReference).Daily
	require.Len(t, daily, 2)

	assert.Equal(t, 6, daily[0].Total)
	assert.Equal(t, 3, daily[0].Active)
	assert.InDelta(t, 75.0, daily[0].ActivePct, 1e-9)

	assert.Equal(t, 2, daily[1].Total)
	assert.Equal(t, 2, daily[1].Active)
	assert.InDelta(t, 50.0, daily[1].ActivePct, 1e-9)
}

func TestCompute_Ages(t *testing.T) {
	table := &dataset.Table{
		Days: []string{"Dan1"},
		Records: []dataset.Record{
			{Section: "A", Name: "Pero", BirthDate: "15.03.1995", Days: []int{10}},
			{Section: "A", Name: "Ana", BirthDate: "01.04.1995", Days: []int{6}},
			{Section: "A", Name: "Ivo", BirthDate: "01.01.2000", Days: []int{3}},
			{Section: "A", Name: "Mia", BirthDate: "N/A", Days: []int{99}},
		},
	}

	ages := Compute(table, testReference).Ages
	require.Len(t, ages, 2)

	assert.Equal(t, 24, ages[0].Age)
	assert.Equal(t, 1, ages[0].Participants)
	assert.InDelta(t, 3.0, ages[0].MeanTotal, 1e-9)

	assert.Equal(t, 29, ages[1].Age)
	assert.Equal(t, 2, ages[1].Participants)
	assert.InDelta(t, 8.0, ages[1].MeanTotal, 1e-9)
}

func TestCompute_Overview(t *testing.T) {
	table := &dataset.Table{
		Days: []string{"Dan1", "Dan2"},
		Records: []dataset.Record{
			{Section: "A", Name: "Pero", BirthDate: "N/A", Days: []int{3, 4}},
			{Section: "A", Name: "Ana", BirthDate: "N/A", Days: []int{1, 0}},
			{Section: "A", Name: "Ivo", BirthDate: "N/A", Days: []int{0, 0}},
		},
	}

	o := Compute(table, testReference).Overview
	assert.Equal(t, 3, o.Participants)
	assert.Equal(t, 2, o.Days)
	assert.Equal(t, 8, o.TotalConsumed)
	assert.InDelta(t, 8.0/6.0, o.MeanPerPersonDay, 1e-9)
	assert.Equal(t, 1, o.DrankEveryDay)
	assert.Equal(t, 1, o.NeverDrank)
	assert.Equal(t, 2, o.ActiveTotal)
	assert.InDelta(t, 66.66667, o.ActiveTotalPct, 1e-4)
	assert.InDelta(t, 1.0, o.MedianTotal, 1e-9)
	assert.Equal(t, 4, o.MaxSingleDay)
	assert.Equal(t, 7, o.MaxTotal)
}

func TestCompute_EmptyTable(t *testing.T) {
	table := &dataset.Table{Days: []string{"Dan1"}}

	s := Compute(table, testReference)
	assert.Empty(t, s.Participants)
	assert.Empty(t, s.Sections)
	assert.Empty(t, s.Ages)
	assert.Equal(t, 0, s.Overview.Participants)
	assert.Equal(t, 0.0, s.Overview.MedianTotal)
	require.Len(t, s.Daily, 1)
	assert.Equal(t, 0, s.Daily[0].Total)
}
