package notification

import (
	"context"
	"time"
)

type Service interface {
	// NotifyPendingApproval fans out a notification to admins when the
	// materializer creates a pending overtime or special-hour record.
	NotifyPendingApproval(ctx context.Context, notifType Type, employeeID string, day time.Time, hours float64) error

	List(ctx context.Context, recipientID string, page, limit int, unreadOnly bool) ([]*Notification, int64, error)
	MarkRead(ctx context.Context, ids []string, recipientID string) error
	UnreadCount(ctx context.Context, recipientID string) (int, error)
}
