// Package stats derives the report statistics from a loaded dataset:
// per-participant totals and dispersion, per-day aggregates, per-section
// and per-age means, and the overview block.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/KarloVrd/FlunkyStats/internal/dataset"
)

// ParticipantSummary holds the per-participant derived metrics.
type ParticipantSummary struct {
	Name        string
	Section     string
	Age         int // -1 when the birth date is missing or unparseable
	Total       int
	Max         int
	DaysPresent int
	Mean        float64
	StdDev      float64 // sample standard deviation (n-1)
	CV          float64 // StdDev / Mean; 0 when CVValid is false
	CVValid     bool    // false when Mean == 0 or fewer than 2 days
}

// SectionSummary aggregates participant totals per section. Compound
// section labels ("A - B") count the participant toward both sections.
type SectionSummary struct {
	Section   string
	Members   int
	Total     int
	PerPerson float64
	Rank      int
}

// DailyAggregate holds per-day totals and activity.
type DailyAggregate struct {
	Day       string
	Total     int
	Active    int // participants with a nonzero count that day
	ActivePct float64
}

// AgeBucket is the mean total for all participants of one age. Ages with
// no participants do not get a bucket; the line chart shows them as gaps.
type AgeBucket struct {
	Age          int
	Participants int
	MeanTotal    float64
}

// Overview is the headline statistics block.
type Overview struct {
	Participants     int
	Days             int
	TotalConsumed    int
	MeanPerPersonDay float64
	DrankEveryDay    int
	DrankEveryDayPct float64
	NeverDrank       int
	NeverDrankPct    float64
	ActiveTotal      int
	ActiveTotalPct   float64
	MedianTotal      float64
	MeanTotal        float64
	MaxSingleDay     int
	MaxTotal         int
}

// Summary is the full set of derived statistics for one run.
type Summary struct {
	Overview     Overview
	Participants []ParticipantSummary
	Sections     []SectionSummary // sorted by section label
	Daily        []DailyAggregate // in day-column order
	Ages         []AgeBucket      // sorted by age ascending
}

// Compute derives all statistics from the table in a single pass per
// concern. The reference date drives the age rule.
func Compute(table *dataset.Table, reference time.Time) *Summary {
	s := &Summary{
		Participants: computeParticipants(table, reference),
		Daily:        computeDaily(table),
	}
	s.Sections = computeSections(table)
	s.Ages = computeAges(s.Participants)
	s.Overview = computeOverview(table, s.Participants)
	return s
}

func computeParticipants(table *dataset.Table, reference time.Time) []ParticipantSummary {
	summaries := make([]ParticipantSummary, 0, len(table.Records))
	for _, r := range table.Records {
		p := ParticipantSummary{
			Name:        r.Name,
			Section:     r.Section,
			Age:         -1,
			Total:       r.Total(),
			DaysPresent: r.DaysPresent(),
		}
		if age, ok := AgeAt(r.BirthDate, reference); ok {
			p.Age = age
		}

		n := len(r.Days)
		for _, v := range r.Days {
			if v > p.Max {
				p.Max = v
			}
		}
		if n > 0 {
			p.Mean = float64(p.Total) / float64(n)
		}
		if n > 1 {
			var sq float64
			for _, v := range r.Days {
				d := float64(v) - p.Mean
				sq += d * d
			}
			p.StdDev = math.Sqrt(sq / float64(n-1))
		}
		if p.Mean > 0 && n > 1 {
			p.CV = p.StdDev / p.Mean
			p.CVValid = true
		}

		summaries = append(summaries, p)
	}
	return summaries
}

func computeDaily(table *dataset.Table) []DailyAggregate {
	daily := make([]DailyAggregate, len(table.Days))
	for i, day := range table.Days {
		daily[i].Day = day
	}
	for _, r := range table.Records {
		for i, v := range r.Days {
			daily[i].Total += v
			if v > 0 {
				daily[i].Active++
			}
		}
	}
	if n := len(table.Records); n > 0 {
		for i := range daily {
			daily[i].ActivePct = float64(daily[i].Active) / float64(n) * 100
		}
	}
	return daily
}

func computeSections(table *dataset.Table) []SectionSummary {
	bySection := make(map[string]*SectionSummary)
	for _, r := range table.Records {
		total := r.Total()
		for _, section := range r.Sections() {
			s, ok := bySection[section]
			if !ok {
				s = &SectionSummary{Section: section}
				bySection[section] = s
			}
			s.Members++
			s.Total += total
		}
	}

	sections := make([]SectionSummary, 0, len(bySection))
	for _, s := range bySection {
		s.PerPerson = float64(s.Total) / float64(s.Members)
		sections = append(sections, *s)
	}
	sort.Slice(sections, func(i, j int) bool {
		return sections[i].Section < sections[j].Section
	})
	return sections
}

func computeAges(participants []ParticipantSummary) []AgeBucket {
	byAge := make(map[int]*AgeBucket)
	for _, p := range participants {
		if p.Age < 0 {
			continue
		}
		b, ok := byAge[p.Age]
		if !ok {
			b = &AgeBucket{Age: p.Age}
			byAge[p.Age] = b
		}
		b.Participants++
		b.MeanTotal += float64(p.Total)
	}

	buckets := make([]AgeBucket, 0, len(byAge))
	for _, b := range byAge {
		b.MeanTotal /= float64(b.Participants)
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Age < buckets[j].Age })
	return buckets
}

func computeOverview(table *dataset.Table, participants []ParticipantSummary) Overview {
	o := Overview{
		Participants: len(participants),
		Days:         len(table.Days),
	}

	totals := make([]int, 0, len(participants))
	for _, p := range participants {
		o.TotalConsumed += p.Total
		totals = append(totals, p.Total)
		if p.Total > o.MaxTotal {
			o.MaxTotal = p.Total
		}
		if p.Max > o.MaxSingleDay {
			o.MaxSingleDay = p.Max
		}
		if p.DaysPresent == o.Days && o.Days > 0 {
			o.DrankEveryDay++
		}
		if p.Total == 0 {
			o.NeverDrank++
		}
	}
	o.ActiveTotal = o.Participants - o.NeverDrank

	if o.Participants > 0 {
		o.MeanTotal = float64(o.TotalConsumed) / float64(o.Participants)
		o.MedianTotal = median(totals)
		pct := func(n int) float64 { return float64(n) / float64(o.Participants) * 100 }
		o.DrankEveryDayPct = pct(o.DrankEveryDay)
		o.NeverDrankPct = pct(o.NeverDrank)
		o.ActiveTotalPct = pct(o.ActiveTotal)
		if o.Days > 0 {
			o.MeanPerPersonDay = float64(o.TotalConsumed) / float64(o.Participants*o.Days)
		}
	}
	return o
}

// median of a slice of ints; the slice is sorted in place.
func median(values []int) float64 {
	sort.Ints(values)
	n := len(values)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return float64(values[n/2])
	}
	return float64(values[n/2-1]+values[n/2]) / 2
}
