package memory

import (
	"slices"
	"sort"

	"sportive/internal/model"
	"sportive/internal/repository"
)

type activities struct {
	store *Store
}

var _ repository.Activities = (*activities)(nil)

func (a *activities) Add(_ repository.Tx, userNumber, sportNumber int, date model.Date, duration model.Duration, routeNumber *int) (int, error) {
	activity := storedActivity{
		number:   nextNumber(a.store.activities, func(row storedActivity) int { return row.number }),
		date:     date,
		duration: duration,
		user:     userNumber,
		sport:    sportNumber,
		route:    routeNumber,
	}
	a.store.activities = append(a.store.activities, activity)
	return activity.number, nil
}

func (a *activities) GetByNumber(_ repository.Tx, number int) (*model.Activity, error) {
	stored := a.store.findActivity(number)
	if stored == nil {
		return nil, nil
	}
	activity := a.store.toActivity(*stored)
	return &activity, nil
}

func (a *activities) GetByUser(_ repository.Tx, userNumber, limit, skip int) (model.Page[model.Activity], error) {
	matched := []model.Activity{}
	for _, activity := range a.store.activities {
		if activity.user == userNumber {
			matched = append(matched, a.store.toActivity(activity))
		}
	}
	return repository.PageOf(matched, limit, skip), nil
}

func (a *activities) GetBySport(_ repository.Tx, sportNumber, limit, skip int) (model.Page[model.Activity], error) {
	matched := []model.Activity{}
	for _, activity := range a.store.activities {
		if activity.sport == sportNumber {
			matched = append(matched, a.store.toActivity(activity))
		}
	}
	return repository.PageOf(matched, limit, skip), nil
}

func (a *activities) Get(_ repository.Tx, sportNumber int, order repository.Order, date *model.Date, routeNumber *int, limit, skip int) (model.Page[model.Activity], error) {
	matched := []storedActivity{}
	for _, activity := range a.store.activities {
		if activity.sport != sportNumber {
			continue
		}
		if date != nil && !activity.date.Equal(*date) {
			continue
		}
		if routeNumber != nil && (activity.route == nil || *activity.route != *routeNumber) {
			continue
		}
		matched = append(matched, activity)
	}
	// Stable sort: equal durations stay in insertion order in both
	// directions.
	sort.SliceStable(matched, func(i, j int) bool {
		if order == repository.Descending {
			return matched[i].duration.Millis() > matched[j].duration.Millis()
		}
		return matched[i].duration.Millis() < matched[j].duration.Millis()
	})
	resolved := make([]model.Activity, 0, len(matched))
	for _, activity := range matched {
		resolved = append(resolved, a.store.toActivity(activity))
	}
	return repository.PageOf(resolved, limit, skip), nil
}

func (a *activities) Update(_ repository.Tx, number int, update model.ActivityUpdate) (int, error) {
	if stored := a.store.findActivity(number); stored != nil {
		if update.Date != nil {
			stored.date = *update.Date
		}
		if update.Duration != nil {
			stored.duration = *update.Duration
		}
	}
	return number, nil
}

func (a *activities) Delete(_ repository.Tx, number int) (int, error) {
	a.store.activities = slices.DeleteFunc(a.store.activities, func(row storedActivity) bool {
		return row.number == number
	})
	return number, nil
}

func (a *activities) DeleteAll(_ repository.Tx, numbers []int) ([]int, error) {
	a.store.activities = slices.DeleteFunc(a.store.activities, func(row storedActivity) bool {
		return slices.Contains(numbers, row.number)
	})
	return numbers, nil
}
