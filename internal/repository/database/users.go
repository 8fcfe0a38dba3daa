package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sportive/internal/model"
	"sportive/internal/repository"
)

type users struct{}

var _ repository.Users = users{}

func (users) Add(tx repository.Tx, name, email, password string) (*model.Registration, error) {
	user := model.User{
		Name:     name,
		Email:    email,
		Password: model.DigestPassword(password),
		Token:    uuid.NewString(),
	}
	if err := conn(tx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &model.Registration{Token: user.Token, Number: user.Number}, nil
}

func (users) GetByNumber(tx repository.Tx, number int) (*model.User, error) {
	var user model.User
	err := conn(tx).Where("number = ?", number).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (users) GetByToken(tx repository.Tx, token string) (int, error) {
	var user model.User
	err := conn(tx).Select("number").Where("token = ?", token).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return user.Number, nil
}

func (users) List(tx repository.Tx, limit, skip int) (model.Page[model.User], error) {
	var rows []model.User
	err := conn(tx).
		Order("number asc").
		Offset(skip).
		Limit(limit + 1).
		Find(&rows).Error
	if err != nil {
		return model.Page[model.User]{}, err
	}
	return repository.TrimLookahead(rows, limit), nil
}

func (users) GetRankings(tx repository.Tx, sportNumber, routeNumber, limit, skip int) (model.Page[model.User], error) {
	// One row per user with at least one qualifying activity, ranked by the
	// user's best duration; ties resolve by the number of the activity that
	// achieved that best duration.
	const query = `
		SELECT users.number, users.name, users.email
		FROM (
			SELECT runs.user_number, best.best_duration, MIN(runs.number) AS best_activity
			FROM activities runs
			JOIN (
				SELECT user_number, MIN(duration) AS best_duration
				FROM activities
				WHERE sport_number = ? AND route_number = ?
				GROUP BY user_number
			) best ON best.user_number = runs.user_number AND runs.duration = best.best_duration
			WHERE runs.sport_number = ? AND runs.route_number = ?
			GROUP BY runs.user_number, best.best_duration
		) ranked
		JOIN users ON users.number = ranked.user_number
		ORDER BY ranked.best_duration ASC, ranked.best_activity ASC
		LIMIT ? OFFSET ?`
	var rows []model.User
	err := conn(tx).Raw(query, sportNumber, routeNumber, sportNumber, routeNumber, limit+1, skip).Scan(&rows).Error
	if err != nil {
		return model.Page[model.User]{}, err
	}
	return repository.TrimLookahead(rows, limit), nil
}

func (users) GetSessionByCredentials(tx repository.Tx, email, password string) (*model.Session, error) {
	var user model.User
	err := conn(tx).
		Where("email = ? AND password = ?", email, model.DigestPassword(password)).
		Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &model.Session{Number: user.Number, Name: user.Name, Token: user.Token}, nil
}
