package database

import (
	"gorm.io/gorm"

	"sportive/internal/model"
	"sportive/internal/repository"
)

type sports struct{}

var _ repository.Sports = sports{}

type sportRow struct {
	Number      int
	Name        string
	Description *string
	UserNumber  int
	UserName    *string
}

func (r sportRow) toSport() model.Sport {
	sport := model.Sport{
		Number:      r.Number,
		Name:        r.Name,
		Description: r.Description,
		User:        model.Ref{Number: r.UserNumber},
		UserNumber:  r.UserNumber,
	}
	if r.UserName != nil {
		sport.User.Name = *r.UserName
	}
	return sport
}

func selectSports(c *gorm.DB) *gorm.DB {
	return c.Table("sports").
		Select("sports.number, sports.name, sports.description, sports.user_number, users.name AS user_name").
		Joins("LEFT JOIN users ON users.number = sports.user_number")
}

func (sports) Add(tx repository.Tx, userNumber int, name string, description *string) (int, error) {
	sport := model.Sport{
		Name:        name,
		Description: description,
		UserNumber:  userNumber,
	}
	if err := conn(tx).Create(&sport).Error; err != nil {
		return 0, err
	}
	return sport.Number, nil
}

func (sports) GetByNumber(tx repository.Tx, number int) (*model.Sport, error) {
	var rows []sportRow
	err := selectSports(conn(tx)).
		Where("sports.number = ?", number).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	sport := rows[0].toSport()
	return &sport, nil
}

func (sports) List(tx repository.Tx, limit, skip int) (model.Page[model.Sport], error) {
	var rows []sportRow
	err := selectSports(conn(tx)).
		Order("sports.number asc").
		Offset(skip).
		Limit(limit + 1).
		Scan(&rows).Error
	if err != nil {
		return model.Page[model.Sport]{}, err
	}
	return trimSports(rows, limit), nil
}

func (sports) Update(tx repository.Tx, number int, update model.SportUpdate) (int, error) {
	fields := map[string]any{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if len(fields) == 0 {
		return number, nil
	}
	err := conn(tx).Model(&model.Sport{}).Where("number = ?", number).Updates(fields).Error
	if err != nil {
		return 0, err
	}
	return number, nil
}

func (sports) Search(tx repository.Tx, query string, limit, skip int) (model.Page[model.Sport], error) {
	needle := "%" + query + "%"
	var rows []sportRow
	err := selectSports(conn(tx)).
		Where("sports.name LIKE ? OR sports.description LIKE ?", needle, needle).
		Order("sports.number asc").
		Offset(skip).
		Limit(limit + 1).
		Scan(&rows).Error
	if err != nil {
		return model.Page[model.Sport]{}, err
	}
	return trimSports(rows, limit), nil
}

func trimSports(rows []sportRow, limit int) model.Page[model.Sport] {
	page := repository.TrimLookahead(rows, limit)
	result := model.Page[model.Sport]{List: make([]model.Sport, 0, len(page.List)), HasMore: page.HasMore}
	for _, row := range page.List {
		result.List = append(result.List, row.toSport())
	}
	return result
}
