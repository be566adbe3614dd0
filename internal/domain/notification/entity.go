package notification

import "time"

type Type string

const (
	TypeOvertimePending    Type = "overtime_pending"
	TypeSpecialHourPending Type = "special_hour_pending"
	TypeInfo               Type = "info"
)

type Notification struct {
	ID          string
	RecipientID string
	Type        Type
	Title       string
	Message     string
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
}
