package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/gta-labs/gta-backend-go/internal/domain/auth"
	"github.com/gta-labs/gta-backend-go/internal/domain/employee"
	"github.com/gta-labs/gta-backend-go/internal/domain/notification"
)

type NotificationServiceImpl struct {
	notifications notification.Repository
	users         auth.UserRepository
	employees     employee.EmployeeRepository
}

func NewNotificationService(
	notifications notification.Repository,
	users auth.UserRepository,
	employees employee.EmployeeRepository,
) notification.Service {
	return &NotificationServiceImpl{
		notifications: notifications,
		users:         users,
		employees:     employees,
	}
}

// NotifyPendingApproval implements notification.Service. One notification
// per admin; a missing admin list is not an error worth failing the
// caller for, so an empty fan-out is a no-op.
func (s *NotificationServiceImpl) NotifyPendingApproval(ctx context.Context, notifType notification.Type, employeeID string, day time.Time, hours float64) error {
	adminIDs, err := s.users.ListAdminIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list admins for notification: %w", err)
	}
	if len(adminIDs) == 0 {
		return nil
	}

	employeeName := employeeID
	if emp, err := s.employees.GetByID(ctx, employeeID); err == nil {
		employeeName = emp.FullName()
	}

	title, message := pendingApprovalContent(notifType, employeeName, day, hours)

	batch := make([]*notification.Notification, 0, len(adminIDs))
	for _, adminID := range adminIDs {
		batch = append(batch, &notification.Notification{
			RecipientID: adminID,
			Type:        notifType,
			Title:       title,
			Message:     message,
		})
	}

	return s.notifications.CreateBatch(ctx, batch)
}

// List implements notification.Service.
func (s *NotificationServiceImpl) List(ctx context.Context, recipientID string, page, limit int, unreadOnly bool) ([]*notification.Notification, int64, error) {
	return s.notifications.GetByRecipient(ctx, recipientID, page, limit, unreadOnly)
}

// MarkRead implements notification.Service.
func (s *NotificationServiceImpl) MarkRead(ctx context.Context, ids []string, recipientID string) error {
	return s.notifications.MarkAsRead(ctx, ids, recipientID)
}

// UnreadCount implements notification.Service.
func (s *NotificationServiceImpl) UnreadCount(ctx context.Context, recipientID string) (int, error) {
	return s.notifications.GetUnreadCount(ctx, recipientID)
}

func pendingApprovalContent(notifType notification.Type, employeeName string, day time.Time, hours float64) (title, message string) {
	date := day.Format(time.DateOnly)

	switch notifType {
	case notification.TypeOvertimePending:
		title = "Overtime pending approval"
		message = fmt.Sprintf("%s recorded %.2fh of overtime on %s.", employeeName, hours, date)
	case notification.TypeSpecialHourPending:
		title = "Special hours pending approval"
		message = fmt.Sprintf("%s recorded %.2fh of special hours on %s.", employeeName, hours, date)
	default:
		title = "Notification"
		message = fmt.Sprintf("%s: %.2fh recorded on %s.", employeeName, hours, date)
	}

	return title, message
}
