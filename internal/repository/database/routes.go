package database

import (
	"gorm.io/gorm"

	"sportive/internal/model"
	"sportive/internal/repository"
)

type routes struct{}

var _ repository.Routes = routes{}

// routeRow is the flat join shape a route is read through: the raw columns
// plus the resolved owner name.
type routeRow struct {
	Number        int
	StartLocation string
	EndLocation   string
	Distance      float64
	UserNumber    int
	UserName      *string
}

func (r routeRow) toRoute() model.Route {
	route := model.Route{
		Number:        r.Number,
		StartLocation: r.StartLocation,
		EndLocation:   r.EndLocation,
		Distance:      r.Distance,
		User:          model.Ref{Number: r.UserNumber},
		UserNumber:    r.UserNumber,
	}
	if r.UserName != nil {
		route.User.Name = *r.UserName
	}
	return route
}

func selectRoutes(c *gorm.DB) *gorm.DB {
	return c.Table("routes").
		Select("routes.number, routes.start_location, routes.end_location, routes.distance, routes.user_number, users.name AS user_name").
		Joins("LEFT JOIN users ON users.number = routes.user_number")
}

func (routes) Add(tx repository.Tx, userNumber int, startLocation, endLocation string, distance float64) (int, error) {
	route := model.Route{
		StartLocation: startLocation,
		EndLocation:   endLocation,
		Distance:      distance,
		UserNumber:    userNumber,
	}
	if err := conn(tx).Create(&route).Error; err != nil {
		return 0, err
	}
	return route.Number, nil
}

func (routes) GetByNumber(tx repository.Tx, number int) (*model.Route, error) {
	var rows []routeRow
	err := selectRoutes(conn(tx)).
		Where("routes.number = ?", number).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	route := rows[0].toRoute()
	return &route, nil
}

func (routes) List(tx repository.Tx, limit, skip int) (model.Page[model.Route], error) {
	var rows []routeRow
	err := selectRoutes(conn(tx)).
		Order("routes.number asc").
		Offset(skip).
		Limit(limit + 1).
		Scan(&rows).Error
	if err != nil {
		return model.Page[model.Route]{}, err
	}
	return trimRoutes(rows, limit), nil
}

func (routes) Update(tx repository.Tx, number int, update model.RouteUpdate) (int, error) {
	fields := map[string]any{}
	if update.StartLocation != nil {
		fields["start_location"] = *update.StartLocation
	}
	if update.EndLocation != nil {
		fields["end_location"] = *update.EndLocation
	}
	if update.Distance != nil {
		fields["distance"] = *update.Distance
	}
	if len(fields) == 0 {
		return number, nil
	}
	err := conn(tx).Model(&model.Route{}).Where("number = ?", number).Updates(fields).Error
	if err != nil {
		return 0, err
	}
	return number, nil
}

func (routes) Search(tx repository.Tx, query string, limit, skip int) (model.Page[model.Route], error) {
	needle := "%" + query + "%"
	var rows []routeRow
	err := selectRoutes(conn(tx)).
		Where("routes.start_location LIKE ? OR routes.end_location LIKE ? OR CAST(routes.distance AS CHAR) LIKE ?",
			needle, needle, needle).
		Order("routes.number asc").
		Offset(skip).
		Limit(limit + 1).
		Scan(&rows).Error
	if err != nil {
		return model.Page[model.Route]{}, err
	}
	return trimRoutes(rows, limit), nil
}

func trimRoutes(rows []routeRow, limit int) model.Page[model.Route] {
	page := repository.TrimLookahead(rows, limit)
	result := model.Page[model.Route]{List: make([]model.Route, 0, len(page.List)), HasMore: page.HasMore}
	for _, row := range page.List {
		result.List = append(result.List, row.toRoute())
	}
	return result
}
