package services

import (
	"context"
	"sort"
	"time"

	"github.com/sajee05/effortless-time-tracker/internal/domain"
	"github.com/sajee05/effortless-time-tracker/internal/errors"
	"github.com/sajee05/effortless-time-tracker/internal/repository/sqlite"
	"github.com/sajee05/effortless-time-tracker/internal/validation"
)

// aggregationServiceImpl implements the AggregationService interface
type aggregationServiceImpl struct {
	repo             sqlite.Repository
	mapper           *domain.Mapper
	sessionValidator *validation.SessionValidator
	loc              *time.Location
	now              func() time.Time
}

// NewAggregationService creates a new AggregationService instance
func NewAggregationService(repo sqlite.Repository) AggregationService {
	return &aggregationServiceImpl{
		repo:             repo,
		mapper:           domain.NewMapper(),
		sessionValidator: validation.NewSessionValidator(),
		loc:              time.Local,
		now:              time.Now,
	}
}

// Totals sums the durations of sessions starting inside the query window
func (a *aggregationServiceImpl) Totals(ctx context.Context, query RangeQuery) (time.Duration, error) {
	from, to, err := a.rangeBounds(query)
	if err != nil {
		return 0, err
	}

	seconds, err := a.repo.SumDurationsByStartRange(ctx, from, to)
	if err != nil {
		return 0, err
	}
	return time.Duration(seconds) * time.Second, nil
}

// LifetimeTotal sums every recorded duration
func (a *aggregationServiceImpl) LifetimeTotal(ctx context.Context) (time.Duration, error) {
	seconds, err := a.repo.SumDurations(ctx)
	if err != nil {
		return 0, err
	}
	return time.Duration(seconds) * time.Second, nil
}

// Heatmap returns the active days of a calendar year with display
// intensities relative to the year's busiest day
func (a *aggregationServiceImpl) Heatmap(ctx context.Context, year int) ([]HeatmapEntry, error) {
	if err := a.sessionValidator.ValidateYear(year); err != nil {
		return nil, errors.NewValidationError("invalid heatmap year", err)
	}

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, a.loc)
	to := from.AddDate(1, 0, 0)

	dbSessions, err := a.repo.ListSessionsByStartRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	totals := a.sumByDay(dbSessions)

	var max time.Duration
	for _, total := range totals {
		if total > max {
			max = total
		}
	}

	entries := make([]HeatmapEntry, 0, len(totals))
	for day, total := range totals {
		entries = append(entries, HeatmapEntry{
			Day:       day,
			Total:     total,
			Intensity: intensityFor(total, max),
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Day.Before(entries[j].Day) })

	return entries, nil
}

// Streak computes the current and longest consecutive-active-day runs
func (a *aggregationServiceImpl) Streak(ctx context.Context) (StreakSummary, error) {
	totals, err := a.dayTotals(ctx)
	if err != nil {
		return StreakSummary{}, err
	}
	return a.streakFromTotals(totals), nil
}

// Averages divides the lifetime total by the distinct active periods
func (a *aggregationServiceImpl) Averages(ctx context.Context) (Averages, error) {
	totals, err := a.dayTotals(ctx)
	if err != nil {
		return Averages{}, err
	}

	lifetime, err := a.LifetimeTotal(ctx)
	if err != nil {
		return Averages{}, err
	}

	return averagesFromTotals(totals, lifetime), nil
}

// Summary builds the full statistics snapshot in one pass
func (a *aggregationServiceImpl) Summary(ctx context.Context) (*Summary, error) {
	today, err := a.Totals(ctx, RangeQuery{Kind: RangeToday})
	if err != nil {
		return nil, err
	}
	week, err := a.Totals(ctx, RangeQuery{Kind: RangeThisWeek})
	if err != nil {
		return nil, err
	}
	month, err := a.Totals(ctx, RangeQuery{Kind: RangeThisMonth})
	if err != nil {
		return nil, err
	}
	lifetime, err := a.LifetimeTotal(ctx)
	if err != nil {
		return nil, err
	}

	totals, err := a.dayTotals(ctx)
	if err != nil {
		return nil, err
	}

	count, err := a.repo.CountSessions(ctx)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Totals: Totals{
			Today:    today,
			Week:     week,
			Month:    month,
			Lifetime: lifetime,
		},
		Averages:     averagesFromTotals(totals, lifetime),
		Streak:       a.streakFromTotals(totals),
		ActiveDays:   len(totals),
		SessionCount: count,
	}, nil
}

// rangeBounds resolves a range query to a half-open [from, to) interval
func (a *aggregationServiceImpl) rangeBounds(query RangeQuery) (time.Time, time.Time, error) {
	switch query.Kind {
	case RangeToday:
		from := a.midnight(a.now())
		return from, from.AddDate(0, 0, 1), nil

	case RangeThisWeek:
		today := a.midnight(a.now())
		// Weekday is Sunday-based; shift so weeks start Monday.
		back := (int(today.Weekday()) + 6) % 7
		from := today.AddDate(0, 0, -back)
		return from, from.AddDate(0, 0, 7), nil

	case RangeThisMonth:
		now := a.now().In(a.loc)
		from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, a.loc)
		return from, from.AddDate(0, 1, 0), nil

	case RangeCustom:
		if query.Start.IsZero() || query.End.IsZero() {
			return time.Time{}, time.Time{}, errors.NewValidationError("custom range requires start and end", nil)
		}
		if query.End.Before(query.Start) {
			return time.Time{}, time.Time{}, errors.NewInvalidRangeError(
				query.Start.Format(time.RFC3339), query.End.Format(time.RFC3339))
		}
		return query.Start, query.End, nil

	default:
		return time.Time{}, time.Time{}, errors.NewValidationError("unknown range kind", nil)
	}
}

// dayTotals sums every session's duration into its calendar day and drops
// days whose total is zero; a day with no recorded time is not active.
func (a *aggregationServiceImpl) dayTotals(ctx context.Context) (map[time.Time]time.Duration, error) {
	dbSessions, err := a.repo.ListAllSessions(ctx)
	if err != nil {
		return nil, err
	}
	return a.sumByDay(dbSessions), nil
}

func (a *aggregationServiceImpl) sumByDay(dbSessions []*sqlite.Session) map[time.Time]time.Duration {
	totals := make(map[time.Time]time.Duration)
	for _, dbSession := range dbSessions {
		session := a.mapper.Session.FromDatabase(*dbSession)
		totals[session.Day(a.loc)] += session.Duration()
	}
	for day, total := range totals {
		if total <= 0 {
			delete(totals, day)
		}
	}
	return totals
}

func (a *aggregationServiceImpl) streakFromTotals(totals map[time.Time]time.Duration) StreakSummary {
	// Current run scans backward from today, or from yesterday when today
	// has no time yet; an empty today does not break the streak.
	cursor := a.midnight(a.now())
	if totals[cursor] <= 0 {
		cursor = cursor.AddDate(0, 0, -1)
	}
	current := 0
	for totals[cursor] > 0 {
		current++
		cursor = cursor.AddDate(0, 0, -1)
	}

	days := make([]time.Time, 0, len(totals))
	for day := range totals {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest, run := 0, 0
	for i, day := range days {
		if i > 0 && days[i-1].AddDate(0, 0, 1).Equal(day) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	return StreakSummary{Current: current, Longest: longest}
}

func averagesFromTotals(totals map[time.Time]time.Duration, lifetime time.Duration) Averages {
	type yearWeek struct{ year, week int }
	type yearMonth struct {
		year  int
		month time.Month
	}

	weeks := make(map[yearWeek]struct{})
	months := make(map[yearMonth]struct{})
	for day := range totals {
		y, w := day.ISOWeek()
		weeks[yearWeek{y, w}] = struct{}{}
		months[yearMonth{day.Year(), day.Month()}] = struct{}{}
	}

	avg := func(n int) time.Duration {
		if n == 0 {
			return 0
		}
		return lifetime / time.Duration(n)
	}

	return Averages{
		PerActiveDay: avg(len(totals)),
		PerWeek:      avg(len(weeks)),
		PerMonth:     avg(len(months)),
	}
}

// intensityFor buckets a day total into five display levels relative to
// the busiest day: 0 none, then quartiles of the maximum.
func intensityFor(total, max time.Duration) int {
	if total <= 0 || max <= 0 {
		return 0
	}
	ratio := total.Seconds() / max.Seconds()
	switch {
	case ratio < 0.25:
		return 1
	case ratio < 0.5:
		return 2
	case ratio < 0.75:
		return 3
	default:
		return 4
	}
}

// midnight normalizes a time to the start of its calendar day.
func (a *aggregationServiceImpl) midnight(t time.Time) time.Time {
	local := t.In(a.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, a.loc)
}
