package model

// WorkHour holds the business hours of one weekday (1 = Sunday .. 7 = Saturday).
// Intervals are seconds from local midnight.
type WorkHour struct {
	ID            int64  `gorm:"primaryKey" json:"-"`
	Weekday       int    `gorm:"uniqueIndex;not null" json:"weekday"`
	Key           string `gorm:"size:8" json:"key,omitempty"`
	IsDayOff      bool   `gorm:"not null;default:false" json:"is_day_off"`
	OpenInterval  int64  `gorm:"not null" json:"open_interval"`
	CloseInterval int64  `gorm:"not null" json:"close_interval"`
}
