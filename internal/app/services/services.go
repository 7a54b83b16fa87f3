package services

import (
	"medreminder/internal/app/deps"
	drl "medreminder/internal/core/domain/rate_limiter"
	"medreminder/internal/core/services"
	addmedication "medreminder/internal/core/services/add_medication"
	delivernotification "medreminder/internal/core/services/deliver_notification"
	ensurenotificationpermission "medreminder/internal/core/services/ensure_notification_permission"
	listmedications "medreminder/internal/core/services/list_medications"
	ratelimiting "medreminder/internal/core/services/rate_limiting"
	removemedication "medreminder/internal/core/services/remove_medication"
	schedulereminder "medreminder/internal/core/services/schedule_reminder"
)

type Services struct {
	AddMedication    services.Service[addmedication.Input, addmedication.Result]
	ListMedications  services.Service[listmedications.Input, listmedications.Result]
	RemoveMedication services.Service[removemedication.Input, removemedication.Result]

	ScheduleReminder             services.Service[schedulereminder.Input, schedulereminder.Result]
	EnsureNotificationPermission services.Service[ensurenotificationpermission.Input, ensurenotificationpermission.Result]
	DeliverNotification          services.Service[delivernotification.Input, delivernotification.Result]
}

func InitServices(deps *deps.Deps) *Services {
	limit := drl.PerMinute(deps.Config.RateLimitPerMinute)

	scheduleReminder := schedulereminder.New(deps.Logger, deps.Notifier, deps.Now)

	return &Services{
		AddMedication: ratelimiting.New(
			deps.Logger,
			deps.RateLimiter,
			limit,
			addmedication.New(deps.Logger, deps.MedicationStore, deps.IdentityGenerator, scheduleReminder),
		),
		ListMedications: listmedications.New(deps.Logger, deps.MedicationStore),
		RemoveMedication: ratelimiting.New(
			deps.Logger,
			deps.RateLimiter,
			limit,
			removemedication.New(deps.Logger, deps.MedicationStore),
		),
		ScheduleReminder:             scheduleReminder,
		EnsureNotificationPermission: ensurenotificationpermission.New(deps.Logger, deps.Notifier),
		DeliverNotification:          delivernotification.New(deps.Logger, deps.Deliverer, deps.Now),
	}
}
