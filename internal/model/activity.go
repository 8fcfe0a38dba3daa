package model

// Activity represents a timed activity logged by a user for a sport,
// optionally over a route.
type Activity struct {
	Number      int      `json:"number" gorm:"column:number;primaryKey;autoIncrement"`
	Date        Date     `json:"date" gorm:"column:date;type:date;not null"`
	Duration    Duration `json:"duration" gorm:"column:duration;type:bigint;not null;check:chk_activities_duration,duration >= 0"`
	User        Ref      `json:"user" gorm:"-"`
	Sport       Ref      `json:"sport" gorm:"-"`
	Route       *Ref     `json:"route,omitempty" gorm:"-"`
	UserNumber  int      `json:"-" gorm:"column:user_number;not null;index"`
	SportNumber int      `json:"-" gorm:"column:sport_number;not null;index"`
	RouteNumber *int     `json:"-" gorm:"column:route_number;index"`
}

// TableName implements gorm's table naming hook.
func (Activity) TableName() string { return "activities" }

// ActivityUpdate is a partial update: nil fields keep their prior value.
type ActivityUpdate struct {
	Date     *Date     `json:"date"`
	Duration *Duration `json:"duration"`
}
