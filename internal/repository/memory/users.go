package memory

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	apperrors "sportive/internal/errors"
	"sportive/internal/model"
	"sportive/internal/repository"
)

type users struct {
	store *Store
}

var _ repository.Users = (*users)(nil)

func (u *users) Add(_ repository.Tx, name, email, password string) (*model.Registration, error) {
	for _, existing := range u.store.users {
		if existing.email == email {
			return nil, apperrors.BadRequest(fmt.Sprintf("The email %s is already in use", email))
		}
	}
	user := storedUser{
		number:   nextNumber(u.store.users, func(r storedUser) int { return r.number }),
		name:     name,
		email:    email,
		password: model.DigestPassword(password),
		token:    uuid.NewString(),
	}
	u.store.users = append(u.store.users, user)
	return &model.Registration{Token: user.token, Number: user.number}, nil
}

func (u *users) GetByNumber(_ repository.Tx, number int) (*model.User, error) {
	stored := u.store.findUser(number)
	if stored == nil {
		return nil, nil
	}
	user := toUser(*stored)
	return &user, nil
}

func (u *users) GetByToken(_ repository.Tx, token string) (int, error) {
	for _, user := range u.store.users {
		if user.token == token {
			return user.number, nil
		}
	}
	return 0, nil
}

func (u *users) List(_ repository.Tx, limit, skip int) (model.Page[model.User], error) {
	all := make([]model.User, 0, len(u.store.users))
	for _, user := range u.store.users {
		all = append(all, toUser(user))
	}
	return repository.PageOf(all, limit, skip), nil
}

func (u *users) GetRankings(_ repository.Tx, sportNumber, routeNumber, limit, skip int) (model.Page[model.User], error) {
	// Stable ascending sort keeps insertion order among equal durations, so
	// each user's first listed qualifying activity is their best one.
	sorted := append([]storedActivity(nil), u.store.activities...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].duration.Millis() < sorted[j].duration.Millis()
	})

	seen := make(map[int]bool)
	ranked := []model.User{}
	for _, activity := range sorted {
		if activity.sport != sportNumber || activity.route == nil || *activity.route != routeNumber {
			continue
		}
		if seen[activity.user] {
			continue
		}
		seen[activity.user] = true
		if stored := u.store.findUser(activity.user); stored != nil {
			ranked = append(ranked, toUser(*stored))
		}
	}
	return repository.PageOf(ranked, limit, skip), nil
}

func (u *users) GetSessionByCredentials(_ repository.Tx, email, password string) (*model.Session, error) {
	digest := model.DigestPassword(password)
	for _, user := range u.store.users {
		if user.email == email && user.password == digest {
			return &model.Session{Number: user.number, Name: user.name, Token: user.token}, nil
		}
	}
	return nil, nil
}
