package services

import (
	"context"

	"github.com/dmitrijs2005/driverhelper/internal/client/models"
	"github.com/dmitrijs2005/driverhelper/internal/common"
)

// NoteService keeps text and voice notes on the device.
type NoteService struct {
	items localList[models.Note]
}

func (s *NoteService) List(ctx context.Context) []models.Note { return s.items.list(ctx) }

// Save inserts n or replaces the note with the same id, moving it first.
func (s *NoteService) Save(ctx context.Context, n models.Note) error { return s.items.save(ctx, n) }

func (s *NoteService) Delete(ctx context.Context, id string) error { return s.items.delete(ctx, id) }

// AlarmService keeps wake, rest and screen-time alarms on the device.
type AlarmService struct {
	items localList[models.Alarm]
}

func (s *AlarmService) List(ctx context.Context) []models.Alarm { return s.items.list(ctx) }

func (s *AlarmService) Save(ctx context.Context, a models.Alarm) error { return s.items.save(ctx, a) }

func (s *AlarmService) Delete(ctx context.Context, id string) error { return s.items.delete(ctx, id) }

// Toggle flips Enabled on the alarm id in place. common.ErrNotFound is
// returned when there is no such alarm.
func (s *AlarmService) Toggle(ctx context.Context, id string) (models.Alarm, error) {
	if id == "" {
		return models.Alarm{}, common.ErrEmptyID
	}

	var (
		toggled models.Alarm
		found   bool
	)
	s.items.update(ctx, "toggle", func(cur []models.Alarm) []models.Alarm {
		for i := range cur {
			if cur[i].ID == id {
				cur[i].Enabled = !cur[i].Enabled
				toggled, found = cur[i], true
			}
		}
		return cur
	})
	if !found {
		return models.Alarm{}, common.ErrNotFound
	}
	return toggled, nil
}

// VehicleService keeps maintenance and daily checks.
type VehicleService struct {
	items localList[models.CarCheck]
}

func (s *VehicleService) List(ctx context.Context) []models.CarCheck { return s.items.list(ctx) }

func (s *VehicleService) Save(ctx context.Context, c models.CarCheck) error {
	return s.items.save(ctx, c)
}

func (s *VehicleService) Delete(ctx context.Context, id string) error {
	return s.items.delete(ctx, id)
}

// HealthScore is the percentage of completed checks, 100 when there are none.
func (s *VehicleService) HealthScore(ctx context.Context) int {
	return CarHealthScore(s.List(ctx))
}

// CarHealthScore rounds the completed share of checks to a whole percent.
func CarHealthScore(checks []models.CarCheck) int {
	if len(checks) == 0 {
		return 100
	}
	done := 0
	for _, c := range checks {
		if c.Status == models.CarCheckCompleted {
			done++
		}
	}
	return (done*200 + len(checks)) / (2 * len(checks))
}

// HealthService keeps the driver's wellbeing log.
type HealthService struct {
	items localList[models.HealthLog]
}

func (s *HealthService) List(ctx context.Context) []models.HealthLog { return s.items.list(ctx) }

func (s *HealthService) Save(ctx context.Context, l models.HealthLog) error {
	return s.items.save(ctx, l)
}

func (s *HealthService) Delete(ctx context.Context, id string) error {
	return s.items.delete(ctx, id)
}
