package model

// Sport represents a sport registered by a user.
type Sport struct {
	Number      int     `json:"number" gorm:"column:number;primaryKey;autoIncrement"`
	Name        string  `json:"name" gorm:"column:name;size:255;not null"`
	Description *string `json:"description,omitempty" gorm:"column:description;size:1024"`
	User        Ref     `json:"user" gorm:"-"`
	UserNumber  int     `json:"-" gorm:"column:user_number;not null;index"`
}

// TableName implements gorm's table naming hook.
func (Sport) TableName() string { return "sports" }

// SportUpdate is a partial update: nil fields keep their prior value.
type SportUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
