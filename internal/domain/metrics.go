package domain

// Trend is a period-over-period percentage change. A trend entry is omitted
// entirely (nil pointer, omitempty) when the previous value is zero: the
// division-by-zero guard works by omission, not by clamping.
type Trend struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// MetricsTrends groups the per-metric trend entries of a dashboard snapshot.
type MetricsTrends struct {
	TotalKOLs            *Trend `json:"totalKols,omitempty"`
	ScheduledVisits      *Trend `json:"scheduledVisits,omitempty"`
	CompletedVisitsMonth *Trend `json:"completedVisitsMonth,omitempty"`
	AvgEngagementLevel   *Trend `json:"avgEngagementLevel,omitempty"`
}

// IsEmpty reports whether no trend could be computed at all.
func (t *MetricsTrends) IsEmpty() bool {
	return t.TotalKOLs == nil && t.ScheduledVisits == nil &&
		t.CompletedVisitsMonth == nil && t.AvgEngagementLevel == nil
}

// MetricsTargets carries fixed goals for client-side progress rendering.
type MetricsTargets struct {
	CompletedVisitsMonth int `json:"completedVisitsMonth"`
}

// Metrics is a point-in-time dashboard snapshot with optional
// period-over-period trends.
type Metrics struct {
	TotalKOLs            int            `json:"totalKols"`
	ScheduledVisits      int            `json:"scheduledVisits"`
	CompletedVisitsMonth int            `json:"completedVisitsMonth"`
	AvgEngagementLevel   float64        `json:"avgEngagementLevel"`
	LevelDistribution    map[int]int    `json:"levelDistribution"`
	Trends               *MetricsTrends `json:"trends,omitempty"`
	Targets              MetricsTargets `json:"targets"`
}
