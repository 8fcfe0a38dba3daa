package database

import (
	"gorm.io/gorm"

	"sportive/internal/model"
	"sportive/internal/repository"
)

type activities struct{}

var _ repository.Activities = activities{}

// activityRow is the flat join shape an activity is read through: the raw
// columns plus the resolved owner, sport, and route attributes.
type activityRow struct {
	Number        int
	Date          model.Date
	Duration      model.Duration
	UserNumber    int
	UserName      *string
	SportNumber   int
	SportName     *string
	RouteNumber   *int
	StartLocation *string
	EndLocation   *string
	Distance      *float64
}

func (r activityRow) toActivity() model.Activity {
	activity := model.Activity{
		Number:      r.Number,
		Date:        r.Date,
		Duration:    r.Duration,
		User:        model.Ref{Number: r.UserNumber},
		Sport:       model.Ref{Number: r.SportNumber},
		UserNumber:  r.UserNumber,
		SportNumber: r.SportNumber,
		RouteNumber: r.RouteNumber,
	}
	if r.UserName != nil {
		activity.User.Name = *r.UserName
	}
	if r.SportName != nil {
		activity.Sport.Name = *r.SportName
	}
	if r.RouteNumber != nil {
		ref := model.Ref{Number: *r.RouteNumber}
		if r.StartLocation != nil && r.EndLocation != nil && r.Distance != nil {
			ref.Name = model.RouteDisplayName(*r.StartLocation, *r.EndLocation, *r.Distance)
		}
		activity.Route = &ref
	}
	return activity
}

func selectActivities(c *gorm.DB) *gorm.DB {
	return c.Table("activities").
		Select("activities.number, activities.date, activities.duration, " +
			"activities.user_number, users.name AS user_name, " +
			"activities.sport_number, sports.name AS sport_name, " +
			"activities.route_number, routes.start_location, routes.end_location, routes.distance").
		Joins("JOIN users ON users.number = activities.user_number").
		Joins("JOIN sports ON sports.number = activities.sport_number").
		Joins("LEFT JOIN routes ON routes.number = activities.route_number")
}

func (activities) Add(tx repository.Tx, userNumber, sportNumber int, date model.Date, duration model.Duration, routeNumber *int) (int, error) {
	activity := model.Activity{
		Date:        date,
		Duration:    duration,
		UserNumber:  userNumber,
		SportNumber: sportNumber,
		RouteNumber: routeNumber,
	}
	if err := conn(tx).Create(&activity).Error; err != nil {
		return 0, err
	}
	return activity.Number, nil
}

func (activities) GetByNumber(tx repository.Tx, number int) (*model.Activity, error) {
	var rows []activityRow
	err := selectActivities(conn(tx)).
		Where("activities.number = ?", number).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	activity := rows[0].toActivity()
	return &activity, nil
}

func (activities) GetByUser(tx repository.Tx, userNumber, limit, skip int) (model.Page[model.Activity], error) {
	var rows []activityRow
	err := selectActivities(conn(tx)).
		Where("activities.user_number = ?", userNumber).
		Order("activities.number asc").
		Offset(skip).
		Limit(limit + 1).
		Scan(&rows).Error
	if err != nil {
		return model.Page[model.Activity]{}, err
	}
	return trimActivities(rows, limit), nil
}

func (activities) GetBySport(tx repository.Tx, sportNumber, limit, skip int) (model.Page[model.Activity], error) {
	var rows []activityRow
	err := selectActivities(conn(tx)).
		Where("activities.sport_number = ?", sportNumber).
		Order("activities.number asc").
		Offset(skip).
		Limit(limit + 1).
		Scan(&rows).Error
	if err != nil {
		return model.Page[model.Activity]{}, err
	}
	return trimActivities(rows, limit), nil
}

func (activities) Get(tx repository.Tx, sportNumber int, order repository.Order, date *model.Date, routeNumber *int, limit, skip int) (model.Page[model.Activity], error) {
	query := selectActivities(conn(tx)).Where("activities.sport_number = ?", sportNumber)
	if date != nil {
		query = query.Where("activities.date = ?", *date)
	}
	if routeNumber != nil {
		query = query.Where("activities.route_number = ?", *routeNumber)
	}
	direction := "asc"
	if order == repository.Descending {
		direction = "desc"
	}
	var rows []activityRow
	err := query.
		Order("activities.duration " + direction).
		Order("activities.number asc").
		Offset(skip).
		Limit(limit + 1).
		Scan(&rows).Error
	if err != nil {
		return model.Page[model.Activity]{}, err
	}
	return trimActivities(rows, limit), nil
}

func (activities) Update(tx repository.Tx, number int, update model.ActivityUpdate) (int, error) {
	fields := map[string]any{}
	if update.Date != nil {
		fields["date"] = *update.Date
	}
	if update.Duration != nil {
		fields["duration"] = *update.Duration
	}
	if len(fields) == 0 {
		return number, nil
	}
	err := conn(tx).Model(&model.Activity{}).Where("number = ?", number).Updates(fields).Error
	if err != nil {
		return 0, err
	}
	return number, nil
}

func (activities) Delete(tx repository.Tx, number int) (int, error) {
	err := conn(tx).Where("number = ?", number).Delete(&model.Activity{}).Error
	if err != nil {
		return 0, err
	}
	return number, nil
}

func (activities) DeleteAll(tx repository.Tx, numbers []int) ([]int, error) {
	if len(numbers) == 0 {
		return numbers, nil
	}
	err := conn(tx).Where("number IN ?", numbers).Delete(&model.Activity{}).Error
	if err != nil {
		return nil, err
	}
	return numbers, nil
}

func trimActivities(rows []activityRow, limit int) model.Page[model.Activity] {
	page := repository.TrimLookahead(rows, limit)
	result := model.Page[model.Activity]{List: make([]model.Activity, 0, len(page.List)), HasMore: page.HasMore}
	for _, row := range page.List {
		result.List = append(result.List, row.toActivity())
	}
	return result
}
