package models

import "github.com/shopspring/decimal"

// Note is a text or voice memo; ReminderDate is an optional ISO string.
type Note struct {
	ID           string `json:"id"`
	Content      string `json:"content"`
	AudioURL     string `json:"audioUrl,omitempty"`
	ReminderDate string `json:"reminderDate,omitempty"`
	Timestamp    int64  `json:"timestamp"`
}

func (n Note) EntityID() string { return n.ID }

type AlarmType string

const (
	AlarmWake       AlarmType = "wake"
	AlarmSleep      AlarmType = "sleep"
	AlarmRest       AlarmType = "rest"
	AlarmScreentime AlarmType = "screentime"
)

// Alarm fires at Time (HH:mm), optionally only on Date (YYYY-MM-DD).
type Alarm struct {
	ID      string    `json:"id"`
	Type    AlarmType `json:"type"`
	Time    string    `json:"time"`
	Date    string    `json:"date,omitempty"`
	Enabled bool      `json:"enabled"`
	Label   string    `json:"label"`
}

func (a Alarm) EntityID() string { return a.ID }

type CarCheckType string

const (
	CarCheckMaintenance CarCheckType = "Maintenance"
	CarCheckDaily       CarCheckType = "Daily Check"
	CarCheckRepair      CarCheckType = "Repair"
)

type CarCheckStatus string

const (
	CarCheckCompleted CarCheckStatus = "Completed"
	CarCheckPending   CarCheckStatus = "Pending"
)

type CarCheck struct {
	ID     string           `json:"id"`
	Type   CarCheckType     `json:"type"`
	Item   string           `json:"item"`
	Date   string           `json:"date"`
	Status CarCheckStatus   `json:"status"`
	Cost   *decimal.Decimal `json:"cost,omitempty"`
}

func (c CarCheck) EntityID() string { return c.ID }

type HealthLogType string

const (
	HealthExercise HealthLogType = "Exercise"
	HealthWater    HealthLogType = "Water"
	HealthSleep    HealthLogType = "Sleep"
	HealthCheckup  HealthLogType = "Checkup"
)

type HealthLog struct {
	ID          string        `json:"id"`
	Type        HealthLogType `json:"type"`
	Description string        `json:"description"`
	Date        string        `json:"date"`
	Value       string        `json:"value,omitempty"`
}

func (h HealthLog) EntityID() string { return h.ID }
