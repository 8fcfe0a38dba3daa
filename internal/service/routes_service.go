package service

import (
	"context"

	apperrors "sportive/internal/errors"
	"sportive/internal/model"
	"sportive/internal/repository"
)

// RoutesService exposes route operations.
type RoutesService interface {
	CreateRoute(ctx context.Context, token, startLocation, endLocation string, distance float64) (int, error)
	GetRoute(ctx context.Context, number int) (*model.Route, error)
	ListRoutes(ctx context.Context, limit, skip int) (model.Page[model.Route], error)
	UpdateRoute(ctx context.Context, token string, number int, update model.RouteUpdate) (int, error)
	SearchRoutes(ctx context.Context, query string, limit, skip int) (model.Page[model.Route], error)
}

type routesService struct {
	store repository.Store
}

// NewRoutesService builds a RoutesService over the storage facade.
func NewRoutesService(store repository.Store) RoutesService {
	return &routesService{store: store}
}

func (s *routesService) CreateRoute(ctx context.Context, token, startLocation, endLocation string, distance float64) (int, error) {
	number, err := repository.ExecuteTx(s.store.NewTx(ctx), func(tx repository.Tx) (int, error) {
		userNumber, err := authenticate(tx, s.store.Users(), token)
		if err != nil {
			return 0, err
		}
		if startLocation == "" {
			return 0, apperrors.BadRequest("Empty start location")
		}
		if endLocation == "" {
			return 0, apperrors.BadRequest("Empty end location")
		}
		if distance <= 0 {
			return 0, apperrors.BadRequest("Invalid distance")
		}
		return s.store.Routes().Add(tx, userNumber, startLocation, endLocation, distance)
	})
	if err != nil {
		return 0, apperrors.Normalize(err)
	}
	return number, nil
}

func (s *routesService) GetRoute(ctx context.Context, number int) (*model.Route, error) {
	route, err := repository.ExecuteTx(s.store.NewTx(ctx), func(tx repository.Tx) (*model.Route, error) {
		if number < 0 {
			return nil, apperrors.BadRequest("Invalid route number")
		}
		route, err := s.store.Routes().GetByNumber(tx, number)
		if err != nil {
			return nil, err
		}
		if route == nil {
			return nil, apperrors.NotFound("Route doesn't exist")
		}
		return route, nil
	})
	if err != nil {
		return nil, apperrors.Normalize(err)
	}
	return route, nil
}

func (s *routesService) ListRoutes(ctx context.Context, limit, skip int) (model.Page[model.Route], error) {
	page, err := repository.ExecuteTx(s.store.NewTx(ctx), func(tx repository.Tx) (model.Page[model.Route], error) {
		if err := checkPaging(limit, skip); err != nil {
			return model.Page[model.Route]{}, err
		}
		return s.store.Routes().List(tx, limit, skip)
	})
	if err != nil {
		return model.Page[model.Route]{}, apperrors.Normalize(err)
	}
	return page, nil
}

func (s *routesService) UpdateRoute(ctx context.Context, token string, number int, update model.RouteUpdate) (int, error) {
	updated, err := repository.ExecuteTx(s.store.NewTx(ctx), func(tx repository.Tx) (int, error) {
		userNumber, err := authenticate(tx, s.store.Users(), token)
		if err != nil {
			return 0, err
		}
		if number <= 0 {
			return 0, apperrors.BadRequest("Invalid route number")
		}
		route, err := s.store.Routes().GetByNumber(tx, number)
		if err != nil {
			return 0, err
		}
		if route == nil {
			return 0, apperrors.NotFound("Route doesn't exist")
		}
		if route.User.Number != userNumber {
			return 0, apperrors.Unauthorized("Route is not yours to update")
		}
		if update.StartLocation == nil && update.EndLocation == nil && update.Distance == nil {
			return 0, apperrors.BadRequest("No updates requested")
		}
		return s.store.Routes().Update(tx, number, update)
	})
	if err != nil {
		return 0, apperrors.Normalize(err)
	}
	return updated, nil
}

func (s *routesService) SearchRoutes(ctx context.Context, query string, limit, skip int) (model.Page[model.Route], error) {
	page, err := repository.ExecuteTx(s.store.NewTx(ctx), func(tx repository.Tx) (model.Page[model.Route], error) {
		if query == "" {
			return model.Page[model.Route]{}, apperrors.BadRequest("No search query provided")
		}
		if err := checkPaging(limit, skip); err != nil {
			return model.Page[model.Route]{}, err
		}
		return s.store.Routes().Search(tx, query, limit, skip)
	})
	if err != nil {
		return model.Page[model.Route]{}, apperrors.Normalize(err)
	}
	return page, nil
}
