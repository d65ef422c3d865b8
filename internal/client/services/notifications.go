package services

import (
	"context"

	"github.com/dmitrijs2005/driverhelper/internal/client/models"
)

// NotificationService keeps in-app notifications. They are local only and
// every change rewrites the whole list.
type NotificationService struct {
	items localList[models.AppNotification]
}

func (s *NotificationService) List(ctx context.Context) []models.AppNotification {
	return s.items.list(ctx)
}

// ReplaceAll overwrites the stored list with list.
func (s *NotificationService) ReplaceAll(ctx context.Context, list []models.AppNotification) {
	s.items.replaceAll(ctx, list)
}

// Add puts n at the top of the list.
func (s *NotificationService) Add(ctx context.Context, n models.AppNotification) error {
	return s.items.save(ctx, n)
}

func (s *NotificationService) MarkAllRead(ctx context.Context) {
	s.items.update(ctx, "read_all", func(cur []models.AppNotification) []models.AppNotification {
		for i := range cur {
			cur[i].Read = true
		}
		return cur
	})
}

func (s *NotificationService) Delete(ctx context.Context, id string) error {
	return s.items.delete(ctx, id)
}

func (s *NotificationService) UnreadCount(ctx context.Context) int {
	n := 0
	for _, x := range s.List(ctx) {
		if !x.Read {
			n++
		}
	}
	return n
}
