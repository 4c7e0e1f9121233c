package stats

import "sort"

// RankedParticipant is a participant with a rank for one metric and the
// metric's value, ready for chart and table rendering.
type RankedParticipant struct {
	ParticipantSummary
	Rank  int
	Value float64
}

// RankByTotal ranks all participants by total count, highest first.
// Equal totals share the smallest rank (competition ranking); order is
// rank ascending, then name, so output is reproducible.
func RankByTotal(participants []ParticipantSummary) []RankedParticipant {
	return rank(participants, func(p ParticipantSummary) float64 { return float64(p.Total) }, false)
}

// RankByMax ranks all participants by their maximum single-day count,
// highest first.
func RankByMax(participants []ParticipantSummary) []RankedParticipant {
	return rank(participants, func(p ParticipantSummary) float64 { return float64(p.Max) }, false)
}

// RankByCV ranks participants by coefficient of variation, lowest (most
// consistent) first. Participants whose CV is undefined are excluded.
func RankByCV(participants []ParticipantSummary) []RankedParticipant {
	valid := make([]ParticipantSummary, 0, len(participants))
	for _, p := range participants {
		if p.CVValid {
			valid = append(valid, p)
		}
	}
	return rank(valid, func(p ParticipantSummary) float64 { return p.CV }, true)
}

// RankSections assigns competition ranks to section summaries by
// per-person mean, highest first, and returns them ordered by rank then
// section label.
func RankSections(sections []SectionSummary) []SectionSummary {
	ranked := make([]SectionSummary, len(sections))
	copy(ranked, sections)

	for i := range ranked {
		r := 1
		for j := range ranked {
			if ranked[j].PerPerson > ranked[i].PerPerson {
				r++
			}
		}
		ranked[i].Rank = r
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Rank != ranked[j].Rank {
			return ranked[i].Rank < ranked[j].Rank
		}
		return ranked[i].Section < ranked[j].Section
	})
	return ranked
}

// TopWithTies returns the first n ranked entries plus everyone tied with
// the n-th place. With n or fewer entries the whole slice is returned.
func TopWithTies(ranked []RankedParticipant, n int) []RankedParticipant {
	if len(ranked) <= n {
		return ranked
	}
	cutoff := ranked[n-1].Rank
	end := n
	for end < len(ranked) && ranked[end].Rank <= cutoff {
		end++
	}
	return ranked[:end]
}

func rank(participants []ParticipantSummary, value func(ParticipantSummary) float64, ascending bool) []RankedParticipant {
	ranked := make([]RankedParticipant, 0, len(participants))
	for _, p := range participants {
		ranked = append(ranked, RankedParticipant{ParticipantSummary: p, Value: value(p)})
	}

	// Competition ("min") rank: 1 + the number of strictly better values.
	for i := range ranked {
		r := 1
		for j := range ranked {
			if better(ranked[j].Value, ranked[i].Value, ascending) {
				r++
			}
		}
		ranked[i].Rank = r
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Rank != ranked[j].Rank {
			return ranked[i].Rank < ranked[j].Rank
		}
		return ranked[i].Name < ranked[j].Name
	})
	return ranked
}

func better(a, b float64, ascending bool) bool {
	if ascending {
		return a < b
	}
	return a > b
}
