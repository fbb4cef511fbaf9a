package model

// Reservation is an existing booking. Times are Unix seconds.
type Reservation struct {
	ID        int64 `gorm:"primaryKey" json:"-"`
	BeginAt   int64 `gorm:"not null;index" json:"begin_at"`
	EndAt     int64 `gorm:"not null;index" json:"end_at"`
	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}
