package services

// Local store keys.
const (
	keyUser          = "user"
	keyIncome        = "income"
	keyCommunity     = "community"
	keyNotifications = "notifications"
	keyNotes         = "notes"
	keyAlarms        = "alarms"
	keyCarChecks     = "car_checks"
	keyHealthLogs    = "health_logs"
)

// Metric/log domains.
const (
	domainUser          = "user"
	domainAdmin         = "admin"
	domainIncome        = "income"
	domainCommunity     = "community"
	domainNotifications = "notifications"
	domainNotes         = "notes"
	domainAlarms        = "alarms"
	domainVehicle       = "vehicle"
	domainHealth        = "health"
)
