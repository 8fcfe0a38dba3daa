package model

import "fmt"

const locationPrefixLen = 3

// Route represents a start/end course with a known distance.
type Route struct {
	Number        int     `json:"number" gorm:"column:number;primaryKey;autoIncrement"`
	StartLocation string  `json:"startLocation" gorm:"column:start_location;size:255;not null"`
	EndLocation   string  `json:"endLocation" gorm:"column:end_location;size:255;not null"`
	Distance      float64 `json:"distance" gorm:"column:distance;not null;check:chk_routes_distance,distance > 0"`
	User          Ref     `json:"user" gorm:"-"`
	UserNumber    int     `json:"-" gorm:"column:user_number;not null;index"`
}

// TableName implements gorm's table naming hook.
func (Route) TableName() string { return "routes" }

// DisplayName derives the route's presentation name. It is computed on read
// and never persisted.
func (r Route) DisplayName() string {
	return RouteDisplayName(r.StartLocation, r.EndLocation, r.Distance)
}

// RouteDisplayName builds the derived route name from its raw attributes:
// the first three characters of each location plus the distance.
func RouteDisplayName(start, end string, distance float64) string {
	return fmt.Sprintf("%s-%s (%g km)", locationPrefix(start), locationPrefix(end), distance)
}

func locationPrefix(location string) string {
	if len(location) <= locationPrefixLen {
		return location
	}
	return location[:locationPrefixLen]
}

// RouteUpdate is a partial update: nil fields keep their prior value.
type RouteUpdate struct {
	StartLocation *string  `json:"startLocation"`
	EndLocation   *string  `json:"endLocation"`
	Distance      *float64 `json:"distance"`
}
