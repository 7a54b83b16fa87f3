package app

import (
	"fmt"
	"medreminder/internal/app/deps"
	"medreminder/internal/app/services"
	"medreminder/internal/http/handlers/client"
	addmedication "medreminder/internal/http/handlers/medications/add_medication"
	listmedications "medreminder/internal/http/handlers/medications/list_medications"
	removemedication "medreminder/internal/http/handlers/medications/remove_medication"
	"medreminder/internal/http/handlers/notifications/events"
	"medreminder/internal/http/handlers/notifications/permission"
	"medreminder/internal/implementations/deliverer"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	medicationsRouter := chi.NewRouter()
	medicationsRouter.Method(http.MethodPost, "/", addmedication.New(s.AddMedication))
	medicationsRouter.Method(http.MethodGet, "/", listmedications.New(s.ListMedications))
	medicationsRouter.Method(http.MethodDelete, "/{medicationID}", removemedication.New(s.RemoveMedication))

	notificationsRouter := chi.NewRouter()
	notificationsRouter.Method(
		http.MethodGet,
		"/permission",
		permission.New(s.EnsureNotificationPermission, true),
	)
	notificationsRouter.Method(
		http.MethodPost,
		"/permission",
		permission.New(s.EnsureNotificationPermission, false),
	)
	notificationsRouter.Method(
		http.MethodGet,
		"/events",
		events.New(deps.Logger, deps.SseServer, deliverer.StreamName),
	)

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Use(client.SetClientKeyToContext)
	router.Mount("/medications", medicationsRouter)
	router.Mount("/notifications", notificationsRouter)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
