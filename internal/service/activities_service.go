package service

import (
	"context"
	"fmt"

	apperrors "sportive/internal/errors"
	"sportive/internal/model"
	"sportive/internal/repository"
)

// ActivitiesService exposes activity operations.
type ActivitiesService interface {
	CreateActivity(ctx context.Context, token string, sportNumber int, date *model.Date, duration *model.Duration, routeNumber *int) (int, error)
	GetActivity(ctx context.Context, number int) (*model.Activity, error)
	GetUserActivities(ctx context.Context, userNumber, limit, skip int) (model.Page[model.Activity], error)
	GetSportActivities(ctx context.Context, sportNumber, limit, skip int) (model.Page[model.Activity], error)
	// GetActivities filters a sport's activities by optional date and route,
	// ordered over duration.
	GetActivities(ctx context.Context, sportNumber int, order repository.Order, date *model.Date, routeNumber *int, limit, skip int) (model.Page[model.Activity], error)
	UpdateActivity(ctx context.Context, token string, number int, update model.ActivityUpdate) (int, error)
	DeleteActivity(ctx context.Context, token string, number int) (int, error)
	DeleteActivities(ctx context.Context, token string, numbers []int) ([]int, error)
}

type activitiesService struct {
	store repository.Store
}

// NewActivitiesService builds an ActivitiesService over the storage facade.
func NewActivitiesService(store repository.Store) ActivitiesService {
	return &activitiesService{store: store}
}

func (s *activitiesService) CreateActivity(ctx context.Context, token string, sportNumber int, date *model.Date, duration *model.Duration, routeNumber *int) (int, error) {
	number, err := repository.ExecuteTx(s.store.NewTx(ctx), func(tx repository.Tx) (int, error) {
		userNumber, err := authenticate(tx, s.store.Users(), token)
		if err != nil {
			return 0, err
		}
		if sportNumber <= 0 {
			return 0, apperrors.BadRequest("Invalid sport number")
		}
		sport, err := s.store.Sports().GetByNumber(tx, sportNumber)
		if err != nil {
			return 0, err
		}
		if sport == nil {
			return 0, apperrors.NotFound("Sport doesn't exist")
		}
		if date == nil {
			return 0, apperrors.BadRequest("Empty date")
		}
		if duration == nil {
			return 0, apperrors.BadRequest("Empty duration")
		}
		if *duration < 0 {
			return 0, apperrors.BadRequest("Invalid duration")
		}
		if routeNumber != nil {
			if *routeNumber <= 0 {
				return 0, apperrors.BadRequest("Invalid route number")
			}
			route, err := s.store.Routes().GetByNumber(tx, *routeNumber)
			if err != nil {
				return 0, err
			}
			if route == nil {
				return 0, apperrors.NotFound("Route doesn't exist")
			}
		}
		return s.store.Activities().Add(tx, userNumber, sportNumber, *date, *duration, routeNumber)
	})
	if err != nil {
		return 0, apperrors.Normalize(err)
	}
	return number, nil
}

func (s *activitiesService) GetActivity(ctx context.Context, number int) (*model.Activity, error) {
	activity, err := repository.ExecuteTx(s.store.NewTx(ctx), func(tx repository.Tx) (*model.Activity, error) {
		if number < 0 {
			return nil, apperrors.BadRequest("Invalid activity number")
		}
		activity, err := s.store.Activities().GetByNumber(tx, number)
		if err != nil {
			return nil, err
		}
		if activity == nil {
			return nil, apperrors.NotFound("Activity doesn't exist")
		}
		return activity, nil
	})
	if err != nil {
		return nil, apperrors.Normalize(err)
	}
	return activity, nil
}

func (s *activitiesService) GetUserActivities(ctx context.Context, userNumber, limit, skip int) (model.Page[model.Activity], error) {
	page, err := repository.ExecuteTx(s.store.NewTx(ctx), func(tx repository.Tx) (model.Page[model.Activity], error) {
		var zero model.Page[model.Activity]
		if userNumber <= 0 {
			return zero, apperrors.BadRequest("Invalid user number")
		}
		user, err := s.store.Users().GetByNumber(tx, userNumber)
		if err != nil {
			return zero, err
		}
		if user == nil {
			return zero, apperrors.NotFound("User doesn't exist")
		}
		if err := checkPaging(limit, skip); err != nil {
			return zero, err
		}
		return s.store.Activities().GetByUser(tx, userNumber, limit, skip)
	})
	if err != nil {
		return model.Page[model.Activity]{}, apperrors.Normalize(err)
	}
	return page, nil
}

func (s *activitiesService) GetSportActivities(ctx context.Context, sportNumber, limit, skip int) (model.Page[model.Activity], error) {
	page, err := repository.ExecuteTx(s.store.NewTx(ctx), func(tx repository.Tx) (model.Page[model.Activity], error) {
		var zero model.Page[model.Activity]
		if sportNumber <= 0 {
			return zero, apperrors.BadRequest("Invalid sport number")
		}
		sport, err := s.store.Sports().GetByNumber(tx, sportNumber)
		if err != nil {
			return zero, err
		}
		if sport == nil {
			return zero, apperrors.NotFound("Sport doesn't exist")
		}
		if err := checkPaging(limit, skip); err != nil {
			return zero, err
		}
		return s.store.Activities().GetBySport(tx, sportNumber, limit, skip)
	})
	if err != nil {
		return model.Page[model.Activity]{}, apperrors.Normalize(err)
	}
	return page, nil
}

func (s *activitiesService) GetActivities(ctx context.Context, sportNumber int, order repository.Order, date *model.Date, routeNumber *int, limit, skip int) (model.Page[model.Activity], error) {
	page, err := repository.ExecuteTx(s.store.NewTx(ctx), func(tx repository.Tx) (model.Page[model.Activity], error) {
		var zero model.Page[model.Activity]
		if sportNumber <= 0 {
			return zero, apperrors.BadRequest("Invalid sport number")
		}
		sport, err := s.store.Sports().GetByNumber(tx, sportNumber)
		if err != nil {
			return zero, err
		}
		if sport == nil {
			return zero, apperrors.NotFound("Sport doesn't exist")
		}
		if routeNumber != nil {
			if *routeNumber <= 0 {
				return zero, apperrors.BadRequest("Invalid route number")
			}
			route, err := s.store.Routes().GetByNumber(tx, *routeNumber)
			if err != nil {
				return zero, err
			}
			if route == nil {
				return zero, apperrors.NotFound("Route doesn't exist")
			}
		}
		if err := checkPaging(limit, skip); err != nil {
			return zero, err
		}
		return s.store.Activities().Get(tx, sportNumber, order, date, routeNumber, limit, skip)
	})
	if err != nil {
		return model.Page[model.Activity]{}, apperrors.Normalize(err)
	}
	return page, nil
}

func (s *activitiesService) UpdateActivity(ctx context.Context, token string, number int, update model.ActivityUpdate) (int, error) {
	updated, err := repository.ExecuteTx(s.store.NewTx(ctx), func(tx repository.Tx) (int, error) {
		userNumber, err := authenticate(tx, s.store.Users(), token)
		if err != nil {
			return 0, err
		}
		if number <= 0 {
			return 0, apperrors.BadRequest("Invalid activity number")
		}
		activity, err := s.store.Activities().GetByNumber(tx, number)
		if err != nil {
			return 0, err
		}
		if activity == nil {
			return 0, apperrors.NotFound("Activity doesn't exist")
		}
		if activity.User.Number != userNumber {
			return 0, apperrors.Unauthorized("Activity is not yours to update")
		}
		if update.Date == nil && update.Duration == nil {
			return 0, apperrors.BadRequest("No updates requested")
		}
		if update.Duration != nil && *update.Duration < 0 {
			return 0, apperrors.BadRequest("Invalid duration")
		}
		return s.store.Activities().Update(tx, number, update)
	})
	if err != nil {
		return 0, apperrors.Normalize(err)
	}
	return updated, nil
}

func (s *activitiesService) DeleteActivity(ctx context.Context, token string, number int) (int, error) {
	deleted, err := repository.ExecuteTx(s.store.NewTx(ctx), func(tx repository.Tx) (int, error) {
		userNumber, err := authenticate(tx, s.store.Users(), token)
		if err != nil {
			return 0, err
		}
		if number < 0 {
			return 0, apperrors.BadRequest("Invalid activity number")
		}
		activity, err := s.store.Activities().GetByNumber(tx, number)
		if err != nil {
			return 0, err
		}
		if activity == nil {
			return 0, apperrors.NotFound("Activity doesn't exist")
		}
		if activity.User.Number != userNumber {
			return 0, apperrors.Unauthorized("Activity is not yours to delete")
		}
		return s.store.Activities().Delete(tx, number)
	})
	if err != nil {
		return 0, apperrors.Normalize(err)
	}
	return deleted, nil
}

func (s *activitiesService) DeleteActivities(ctx context.Context, token string, numbers []int) ([]int, error) {
	deleted, err := repository.ExecuteTx(s.store.NewTx(ctx), func(tx repository.Tx) ([]int, error) {
		userNumber, err := authenticate(tx, s.store.Users(), token)
		if err != nil {
			return nil, err
		}
		if numbers == nil {
			return nil, apperrors.BadRequest("Invalid list of activities")
		}
		for _, number := range numbers {
			if number < 0 {
				return nil, apperrors.BadRequest(fmt.Sprintf("Invalid activity number: %d", number))
			}
			activity, err := s.store.Activities().GetByNumber(tx, number)
			if err != nil {
				return nil, err
			}
			if activity == nil {
				return nil, apperrors.NotFound(fmt.Sprintf("Activity doesn't exist: %d", number))
			}
			if activity.User.Number != userNumber {
				return nil, apperrors.Unauthorized(fmt.Sprintf("Activity is not yours to delete: %d", number))
			}
		}
		return s.store.Activities().DeleteAll(tx, numbers)
	})
	if err != nil {
		return nil, apperrors.Normalize(err)
	}
	return deleted, nil
}
