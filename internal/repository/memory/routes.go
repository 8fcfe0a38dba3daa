package memory

import (
	"strconv"
	"strings"

	"sportive/internal/model"
	"sportive/internal/repository"
)

type routes struct {
	store *Store
}

var _ repository.Routes = (*routes)(nil)

func (r *routes) Add(_ repository.Tx, userNumber int, startLocation, endLocation string, distance float64) (int, error) {
	route := storedRoute{
		number:        nextNumber(r.store.routes, func(row storedRoute) int { return row.number }),
		startLocation: startLocation,
		endLocation:   endLocation,
		distance:      distance,
		user:          userNumber,
	}
	r.store.routes = append(r.store.routes, route)
	return route.number, nil
}

func (r *routes) GetByNumber(_ repository.Tx, number int) (*model.Route, error) {
	stored := r.store.findRoute(number)
	if stored == nil {
		return nil, nil
	}
	route := r.store.toRoute(*stored)
	return &route, nil
}

func (r *routes) List(_ repository.Tx, limit, skip int) (model.Page[model.Route], error) {
	all := make([]model.Route, 0, len(r.store.routes))
	for _, route := range r.store.routes {
		all = append(all, r.store.toRoute(route))
	}
	return repository.PageOf(all, limit, skip), nil
}

func (r *routes) Update(_ repository.Tx, number int, update model.RouteUpdate) (int, error) {
	if stored := r.store.findRoute(number); stored != nil {
		if update.StartLocation != nil {
			stored.startLocation = *update.StartLocation
		}
		if update.EndLocation != nil {
			stored.endLocation = *update.EndLocation
		}
		if update.Distance != nil {
			stored.distance = *update.Distance
		}
	}
	return number, nil
}

func (r *routes) Search(_ repository.Tx, query string, limit, skip int) (model.Page[model.Route], error) {
	needle := strings.ToLower(query)
	matched := []model.Route{}
	for _, route := range r.store.routes {
		if strings.Contains(strings.ToLower(route.startLocation), needle) ||
			strings.Contains(strings.ToLower(route.endLocation), needle) ||
			strings.Contains(strconv.FormatFloat(route.distance, 'g', -1, 64), query) {
			matched = append(matched, r.store.toRoute(route))
		}
	}
	return repository.PageOf(matched, limit, skip), nil
}
