package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/driverhelper/internal/client/models"
	"github.com/dmitrijs2005/driverhelper/internal/common"
)

// DataService bundles every domain façade over one set of dependencies.
type DataService struct {
	User          *UserService
	Admin         *AdminService
	Income        *IncomeService
	Community     *CommunityService
	Notifications *NotificationService
	Notes         *NoteService
	Alarms        *AlarmService
	Vehicle       *VehicleService
	Health        *HealthService

	h *hybrid
}

// New wires the façades. d.Local must be set.
func New(d Deps) *DataService {
	h := newHybrid(d)
	user := &UserService{h: h}

	return &DataService{
		User:          user,
		Admin:         &AdminService{h: h, user: user},
		Income:        &IncomeService{h: h},
		Community:     &CommunityService{h: h, now: time.Now},
		Notifications: &NotificationService{items: localList[models.AppNotification]{h: h, key: keyNotifications, domain: domainNotifications}},
		Notes:         &NoteService{items: localList[models.Note]{h: h, key: keyNotes, domain: domainNotes}},
		Alarms:        &AlarmService{items: localList[models.Alarm]{h: h, key: keyAlarms, domain: domainAlarms}},
		Vehicle:       &VehicleService{items: localList[models.CarCheck]{h: h, key: keyCarChecks, domain: domainVehicle}},
		Health:        &HealthService{items: localList[models.HealthLog]{h: h, key: keyHealthLogs, domain: domainHealth}},
		h:             h,
	}
}

// RemoteConfigured reports whether a remote store is in use at all.
func (d *DataService) RemoteConfigured() bool {
	return d.h.remote.Configured()
}

// Ping checks that the remote store answers. Without a remote it returns
// common.ErrNotConfigured.
func (d *DataService) Ping(ctx context.Context) error {
	if !d.h.remote.Configured() {
		return common.ErrNotConfigured
	}
	return d.h.remote.Ping(ctx)
}
