package memory

import (
	"strings"

	"sportive/internal/model"
	"sportive/internal/repository"
)

type sports struct {
	store *Store
}

var _ repository.Sports = (*sports)(nil)

func (s *sports) Add(_ repository.Tx, userNumber int, name string, description *string) (int, error) {
	sport := storedSport{
		number:      nextNumber(s.store.sports, func(row storedSport) int { return row.number }),
		name:        name,
		description: description,
		user:        userNumber,
	}
	s.store.sports = append(s.store.sports, sport)
	return sport.number, nil
}

func (s *sports) GetByNumber(_ repository.Tx, number int) (*model.Sport, error) {
	stored := s.store.findSport(number)
	if stored == nil {
		return nil, nil
	}
	sport := s.store.toSport(*stored)
	return &sport, nil
}

func (s *sports) List(_ repository.Tx, limit, skip int) (model.Page[model.Sport], error) {
	all := make([]model.Sport, 0, len(s.store.sports))
	for _, sport := range s.store.sports {
		all = append(all, s.store.toSport(sport))
	}
	return repository.PageOf(all, limit, skip), nil
}

func (s *sports) Update(_ repository.Tx, number int, update model.SportUpdate) (int, error) {
	if stored := s.store.findSport(number); stored != nil {
		if update.Name != nil {
			stored.name = *update.Name
		}
		if update.Description != nil {
			stored.description = update.Description
		}
	}
	return number, nil
}

func (s *sports) Search(_ repository.Tx, query string, limit, skip int) (model.Page[model.Sport], error) {
	needle := strings.ToLower(query)
	matched := []model.Sport{}
	for _, sport := range s.store.sports {
		if strings.Contains(strings.ToLower(sport.name), needle) ||
			(sport.description != nil && strings.Contains(strings.ToLower(*sport.description), needle)) {
			matched = append(matched, s.store.toSport(sport))
		}
	}
	return repository.PageOf(matched, limit, skip), nil
}
