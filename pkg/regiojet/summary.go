package regiojet

// DelaySummary aggregates the delay situation across a set of records.
type DelaySummary struct {
	Total        int
	OnTime       int
	Delayed      int
	AverageDelay float64
	MaxDelay     int
}

// Summarize computes counts and delay statistics for a record sequence.
// Negative delays count toward the average exactly as reported.
func Summarize(records []ServiceRecord) DelaySummary {
	summary := DelaySummary{Total: len(records)}
	if len(records) == 0 {
		return summary
	}

	sum := 0
	for _, r := range records {
		if r.Delayed() {
			summary.Delayed++
		} else {
			summary.OnTime++
		}
		sum += r.DelayMinutes
		if r.DelayMinutes > summary.MaxDelay {
			summary.MaxDelay = r.DelayMinutes
		}
	}

	summary.AverageDelay = float64(sum) / float64(len(records))
	return summary
}
