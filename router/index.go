package router

import (
	"campus_cms/constants"
	"campus_cms/handler"
	"campus_cms/middleware"
	"campus_cms/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/forgot-password", validate.ForgotPassword(), handler.ForgotPassword)
	auth.Post("/reset-password", validate.ResetPassword(), handler.ResetPassword)

	account := v1.Group("/account", logger.New())
	account.Get("/me", middleware.Protected(), handler.Me)
	account.Get("/", middleware.Protected(), middleware.RequireCapability(constants.CAP_MANAGE_STAFF), handler.GetAccounts)
	account.Post("/", middleware.Protected(), middleware.RequireLiveCapability(constants.CAP_MANAGE_STAFF), validate.CreateAccount(), handler.CreateAccount)
	account.Post("/change-password", middleware.Protected(), validate.StaffChangePassword(), handler.StaffChangePassword)
	account.Post("/admin-change-password", middleware.Protected(), middleware.RequireLiveCapability(constants.CAP_MANAGE_STAFF), validate.AdminChangePassword(), handler.AdminChangePassword)
	account.Patch("/:accountId", middleware.Protected(), middleware.RequireLiveCapability(constants.CAP_MANAGE_STAFF), validate.UpdateAccount("accountId"), handler.UpdateAccount)
	account.Patch("/:accountId/active/:isActive", middleware.Protected(), middleware.RequireLiveCapability(constants.CAP_MANAGE_STAFF), validate.ToggleActiveAccount(), handler.ToggleActiveAccount)
	account.Delete("/", middleware.Protected(), middleware.RequireLiveCapability(constants.CAP_MANAGE_STAFF), validate.Delete(), handler.DeleteAccounts)

	profile := v1.Group("/profile", logger.New())
	profile.Get("/me", middleware.Protected(), handler.MyProfile)
	profile.Get("/me/history", middleware.Protected(), handler.MyProfileHistory)
	profile.Post("/", middleware.Protected(), validate.SubmitProfile(), handler.SubmitProfile)

	review := v1.Group("/review", logger.New())
	review.Get("/", middleware.Protected(), middleware.RequireCapability(constants.CAP_REVIEW_PROFILES), handler.GetModerationQueue)
	review.Patch("/:profileId", middleware.Protected(), middleware.RequireLiveCapability(constants.CAP_REVIEW_PROFILES), validate.ReviewProfile("profileId"), handler.ReviewProfile)
	review.Get("/:profileId/history", middleware.Protected(), middleware.RequireCapability(constants.CAP_REVIEW_PROFILES), validate.GetById("profileId"), handler.ProfileHistory)
	review.Get("/ws", middleware.Protected(), middleware.RequireCapability(constants.CAP_REVIEW_PROFILES), middleware.WebsocketUpgrade(), websocket.New(handler.ModerationFeed))

	directory := v1.Group("/directory")
	directory.Get("/", handler.GetDirectory)
	directory.Get("/:profileId/qr", validate.GetById("profileId"), handler.GetDirectoryQR)

	event := v1.Group("/event", logger.New())
	event.Get("/", handler.GetEvents)
	event.Get("/:slug", handler.GetEventBySlug)
	event.Post("/", middleware.Protected(), middleware.RequireCapability(constants.CAP_MANAGE_EVENTS), validate.CreateEvent(), handler.CreateEvent)
	event.Put("/:eventId", middleware.Protected(), middleware.RequireCapability(constants.CAP_MANAGE_EVENTS), validate.UpdateEvent("eventId"), handler.UpdateEvent)
	event.Delete("/", middleware.Protected(), middleware.RequireCapability(constants.CAP_MANAGE_EVENTS), validate.Delete(), handler.DeleteEvents)

	v1.Post("/cloudinary-signature", middleware.Protected(), handler.GenerateUploadSignature)
}
