package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"

	"clutchzone/internal/models"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	adminMiddleware := standardMiddleware.Append(app.adminOnly)

	mux := pat.New()

	// Health
	mux.Get("/", standardMiddleware.ThenFunc(app.healthHandler.Health))
	mux.Get("/api/health", standardMiddleware.ThenFunc(app.healthHandler.Health))

	// Auth
	mux.Post("/api/auth/login", standardMiddleware.ThenFunc(app.authHandler.SignIn))
	mux.Get("/api/auth/verify", adminMiddleware.ThenFunc(app.authHandler.Verify))

	// Installment calculator
	mux.Get("/api/installments/calculate", standardMiddleware.ThenFunc(app.installmentHandler.Calculate))

	// Cars
	mux.Get("/api/cars", standardMiddleware.ThenFunc(app.carHandler.GetCars))
	mux.Get("/api/cars/:id", standardMiddleware.ThenFunc(app.carHandler.GetCarByID))
	mux.Post("/api/cars", adminMiddleware.ThenFunc(app.carHandler.CreateCar))
	mux.Put("/api/cars/:id", adminMiddleware.ThenFunc(app.carHandler.UpdateCar))
	mux.Del("/api/cars/:id", adminMiddleware.ThenFunc(app.carHandler.DeleteCar))
	mux.Patch("/api/cars/:id/status", adminMiddleware.ThenFunc(app.carHandler.UpdateCarStatus))
	mux.Post("/api/cars/:id/images", adminMiddleware.ThenFunc(app.carHandler.UploadCarImages))
	mux.Del("/api/cars/:id/images", adminMiddleware.ThenFunc(app.carHandler.DeleteCarImage))

	// Properties
	mux.Get("/api/properties", standardMiddleware.ThenFunc(app.propertyHandler.GetProperties))
	mux.Get("/api/properties/:id", standardMiddleware.ThenFunc(app.propertyHandler.GetPropertyByID))
	mux.Post("/api/properties", adminMiddleware.ThenFunc(app.propertyHandler.CreateProperty))
	mux.Put("/api/properties/:id", adminMiddleware.ThenFunc(app.propertyHandler.UpdateProperty))
	mux.Del("/api/properties/:id", adminMiddleware.ThenFunc(app.propertyHandler.DeleteProperty))
	mux.Patch("/api/properties/:id/status", adminMiddleware.ThenFunc(app.propertyHandler.UpdatePropertyStatus))
	mux.Post("/api/properties/:id/images", adminMiddleware.ThenFunc(app.propertyHandler.UploadPropertyImages))
	mux.Del("/api/properties/:id/images", adminMiddleware.ThenFunc(app.propertyHandler.DeletePropertyImage))

	// Purchase requests
	mux.Post("/api/requests", standardMiddleware.ThenFunc(app.requestHandler.CreateRequest))
	mux.Get("/api/requests", adminMiddleware.ThenFunc(app.requestHandler.GetRequests))
	mux.Get("/api/requests/export", adminMiddleware.ThenFunc(app.requestHandler.ExportRequests))
	mux.Get("/api/requests/:id", adminMiddleware.ThenFunc(app.requestHandler.GetRequestByID))
	mux.Patch("/api/requests/:id", adminMiddleware.ThenFunc(app.requestHandler.UpdateRequestStatus))
	mux.Del("/api/requests/:id", adminMiddleware.ThenFunc(app.requestHandler.DeleteRequest))

	// Settings
	mux.Get("/api/settings", standardMiddleware.ThenFunc(app.settingsHandler.GetSettings))
	mux.Put("/api/settings/logo", adminMiddleware.ThenFunc(app.settingsHandler.UpdateCategory(models.SettingsLogo)))
	mux.Put("/api/settings/social-media", adminMiddleware.ThenFunc(app.settingsHandler.UpdateCategory(models.SettingsSocialMedia)))
	mux.Put("/api/settings/theme", adminMiddleware.ThenFunc(app.settingsHandler.UpdateCategory(models.SettingsTheme)))
	mux.Put("/api/settings/contact", adminMiddleware.ThenFunc(app.settingsHandler.UpdateCategory(models.SettingsContact)))
	mux.Put("/api/settings/site-info", adminMiddleware.ThenFunc(app.settingsHandler.UpdateCategory(models.SettingsSiteInfo)))
	mux.Put("/api/settings/:category/:key", adminMiddleware.ThenFunc(app.settingsHandler.UpdateKey))

	// Dashboard
	mux.Get("/api/dashboard/stats", adminMiddleware.ThenFunc(app.dashboardHandler.GetStats))
	mux.Get("/api/dashboard/recent-requests", adminMiddleware.ThenFunc(app.dashboardHandler.GetRecentRequests))

	// Devices
	mux.Post("/api/devices", adminMiddleware.ThenFunc(app.deviceHandler.RegisterDevice))
	mux.Del("/api/devices/:token", adminMiddleware.ThenFunc(app.deviceHandler.DeleteDevice))

	// Live feed; the handler does its own token check.
	mux.Get("/ws/admin", http.HandlerFunc(app.AdminFeedHandler))

	return mux
}
