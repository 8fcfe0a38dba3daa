package service

import (
	"context"

	apperrors "sportive/internal/errors"
	"sportive/internal/model"
	"sportive/internal/repository"
)

// SportsService exposes sport operations.
type SportsService interface {
	CreateSport(ctx context.Context, token, name string, description *string) (int, error)
	GetSport(ctx context.Context, number int) (*model.Sport, error)
	ListSports(ctx context.Context, limit, skip int) (model.Page[model.Sport], error)
	UpdateSport(ctx context.Context, token string, number int, update model.SportUpdate) (int, error)
	SearchSports(ctx context.Context, query string, limit, skip int) (model.Page[model.Sport], error)
}

type sportsService struct {
	store repository.Store
}

// NewSportsService builds a SportsService over the storage facade.
func NewSportsService(store repository.Store) SportsService {
	return &sportsService{store: store}
}

func (s *sportsService) CreateSport(ctx context.Context, token, name string, description *string) (int, error) {
	number, err := repository.ExecuteTx(s.store.NewTx(ctx), func(tx repository.Tx) (int, error) {
		userNumber, err := authenticate(tx, s.store.Users(), token)
		if err != nil {
			return 0, err
		}
		if name == "" {
			return 0, apperrors.BadRequest("Empty sport name")
		}
		return s.store.Sports().Add(tx, userNumber, name, description)
	})
	if err != nil {
		return 0, apperrors.Normalize(err)
	}
	return number, nil
}

func (s *sportsService) GetSport(ctx context.Context, number int) (*model.Sport, error) {
	sport, err := repository.ExecuteTx(s.store.NewTx(ctx), func(tx repository.Tx) (*model.Sport, error) {
		if number < 0 {
			return nil, apperrors.BadRequest("Invalid sport number")
		}
		sport, err := s.store.Sports().GetByNumber(tx, number)
		if err != nil {
			return nil, err
		}
		if sport == nil {
			return nil, apperrors.NotFound("Sport doesn't exist")
		}
		return sport, nil
	})
	if err != nil {
		return nil, apperrors.Normalize(err)
	}
	return sport, nil
}

func (s *sportsService) ListSports(ctx context.Context, limit, skip int) (model.Page[model.Sport], error) {
	page, err := repository.ExecuteTx(s.store.NewTx(ctx), func(tx repository.Tx) (model.Page[model.Sport], error) {
		if err := checkPaging(limit, skip); err != nil {
			return model.Page[model.Sport]{}, err
		}
		return s.store.Sports().List(tx, limit, skip)
	})
	if err != nil {
		return model.Page[model.Sport]{}, apperrors.Normalize(err)
	}
	return page, nil
}

func (s *sportsService) UpdateSport(ctx context.Context, token string, number int, update model.SportUpdate) (int, error) {
	updated, err := repository.ExecuteTx(s.store.NewTx(ctx), func(tx repository.Tx) (int, error) {
		userNumber, err := authenticate(tx, s.store.Users(), token)
		if err != nil {
			return 0, err
		}
		if number <= 0 {
			return 0, apperrors.BadRequest("Invalid sport number")
		}
		sport, err := s.store.Sports().GetByNumber(tx, number)
		if err != nil {
			return 0, err
		}
		if sport == nil {
			return 0, apperrors.NotFound("Sport doesn't exist")
		}
		if sport.User.Number != userNumber {
			return 0, apperrors.Unauthorized("Sport is not yours to update")
		}
		if update.Name == nil && update.Description == nil {
			return 0, apperrors.BadRequest("No updates requested")
		}
		return s.store.Sports().Update(tx, number, update)
	})
	if err != nil {
		return 0, apperrors.Normalize(err)
	}
	return updated, nil
}

func (s *sportsService) SearchSports(ctx context.Context, query string, limit, skip int) (model.Page[model.Sport], error) {
	page, err := repository.ExecuteTx(s.store.NewTx(ctx), func(tx repository.Tx) (model.Page[model.Sport], error) {
		if query == "" {
			return model.Page[model.Sport]{}, apperrors.BadRequest("No search query provided")
		}
		if err := checkPaging(limit, skip); err != nil {
			return model.Page[model.Sport]{}, err
		}
		return s.store.Sports().Search(tx, query, limit, skip)
	})
	if err != nil {
		return model.Page[model.Sport]{}, apperrors.Normalize(err)
	}
	return page, nil
}
