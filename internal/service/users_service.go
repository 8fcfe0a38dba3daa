package service

import (
	"context"

	apperrors "sportive/internal/errors"
	"sportive/internal/model"
	"sportive/internal/repository"
)

// UsersService exposes user operations.
type UsersService interface {
	CreateUser(ctx context.Context, name, email, password string) (*model.Registration, error)
	GetUser(ctx context.Context, number int) (*model.User, error)
	ListUsers(ctx context.Context, limit, skip int) (model.Page[model.User], error)
	// GetRankings lists the users that logged at least one activity for the
	// sport/route pair, best duration first, each user once.
	GetRankings(ctx context.Context, sportNumber, routeNumber, limit, skip int) (model.Page[model.User], error)
	Login(ctx context.Context, email, password string) (*model.Session, error)
}

type usersService struct {
	store repository.Store
}

// NewUsersService builds a UsersService over the storage facade.
func NewUsersService(store repository.Store) UsersService {
	return &usersService{store: store}
}

func (s *usersService) CreateUser(ctx context.Context, name, email, password string) (*model.Registration, error) {
	registration, err := repository.ExecuteTx(s.store.NewTx(ctx), func(tx repository.Tx) (*model.Registration, error) {
		if name == "" {
			return nil, apperrors.BadRequest("Empty name")
		}
		if email == "" {
			return nil, apperrors.BadRequest("Empty email")
		}
		if !emailPattern.MatchString(email) {
			return nil, apperrors.BadRequest("Invalid email")
		}
		if password == "" {
			return nil, apperrors.BadRequest("Empty password")
		}
		return s.store.Users().Add(tx, name, email, password)
	})
	if err != nil {
		return nil, apperrors.Normalize(err)
	}
	return registration, nil
}

func (s *usersService) GetUser(ctx context.Context, number int) (*model.User, error) {
	user, err := repository.ExecuteTx(s.store.NewTx(ctx), func(tx repository.Tx) (*model.User, error) {
		if number < 0 {
			return nil, apperrors.BadRequest("Invalid user number")
		}
		user, err := s.store.Users().GetByNumber(tx, number)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, apperrors.NotFound("User doesn't exist")
		}
		return user, nil
	})
	if err != nil {
		return nil, apperrors.Normalize(err)
	}
	return user, nil
}

func (s *usersService) ListUsers(ctx context.Context, limit, skip int) (model.Page[model.User], error) {
	page, err := repository.ExecuteTx(s.store.NewTx(ctx), func(tx repository.Tx) (model.Page[model.User], error) {
		if err := checkPaging(limit, skip); err != nil {
			return model.Page[model.User]{}, err
		}
		return s.store.Users().List(tx, limit, skip)
	})
	if err != nil {
		return model.Page[model.User]{}, apperrors.Normalize(err)
	}
	return page, nil
}

func (s *usersService) GetRankings(ctx context.Context, sportNumber, routeNumber, limit, skip int) (model.Page[model.User], error) {
	page, err := repository.ExecuteTx(s.store.NewTx(ctx), func(tx repository.Tx) (model.Page[model.User], error) {
		var zero model.Page[model.User]
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
		if routeNumber <= 0 {
			return zero, apperrors.BadRequest("Invalid route number")
		}
		route, err := s.store.Routes().GetByNumber(tx, routeNumber)
		if err != nil {
			return zero, err
		}
		if route == nil {
			return zero, apperrors.NotFound("Route doesn't exist")
		}
		if err := checkPaging(limit, skip); err != nil {
			return zero, err
		}
		return s.store.Users().GetRankings(tx, sportNumber, routeNumber, limit, skip)
	})
	if err != nil {
		return model.Page[model.User]{}, apperrors.Normalize(err)
	}
	return page, nil
}

func (s *usersService) Login(ctx context.Context, email, password string) (*model.Session, error) {
	session, err := repository.ExecuteTx(s.store.NewTx(ctx), func(tx repository.Tx) (*model.Session, error) {
		if email == "" {
			return nil, apperrors.BadRequest("Empty email")
		}
		if password == "" {
			return nil, apperrors.BadRequest("Empty password")
		}
		session, err := s.store.Users().GetSessionByCredentials(tx, email, password)
		if err != nil {
			return nil, err
		}
		if session == nil {
			return nil, apperrors.Unauthorized("Invalid credentials")
		}
		return session, nil
	})
	if err != nil {
		return nil, apperrors.Normalize(err)
	}
	return session, nil
}
