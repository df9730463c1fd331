package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/dentalperfections/dental_backend/internal/api/http/handler"
	"github.com/dentalperfections/dental_backend/pkg/authorize"
)

func (r *Router) registerPatientRoutes(
	api fiber.Router,
	h *handler.PatientHandler,
	requireAuth fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	patients := api.Group("/patients")

	// Patient CRUD
	patients.Get("/", requirePerm(authorize.ResourcePatient, authorize.ActionList), h.List)
	patients.Get("/me", requireAuth, requirePerm(authorize.ResourceProfile, authorize.ActionRead), h.Me)

	p := patients.Group("/:id")
	p.Get("/", requirePerm(authorize.ResourcePatient, authorize.ActionRead), h.Get)
	p.Patch("/", requirePerm(authorize.ResourcePatient, authorize.ActionUpdate), h.Update)
	p.Delete("/", requirePerm(authorize.ResourcePatient, authorize.ActionDelete), h.Delete)

	// Dental history
	histories := api.Group("/dental-histories")
	histories.Get("/", requirePerm(authorize.ResourceDentalHistory, authorize.ActionList), h.ListHistory)
	histories.Post("/", requirePerm(authorize.ResourceDentalHistory, authorize.ActionCreate), h.CreateHistory)
	histories.Get("/:id", requirePerm(authorize.ResourceDentalHistory, authorize.ActionRead), h.GetHistory)
	histories.Patch("/:id", requirePerm(authorize.ResourceDentalHistory, authorize.ActionUpdate), h.UpdateHistory)
	histories.Delete("/:id", requirePerm(authorize.ResourceDentalHistory, authorize.ActionDelete), h.DeleteHistory)

	// Prescriptions
	prescriptions := api.Group("/prescriptions")
	prescriptions.Get("/", requirePerm(authorize.ResourcePrescription, authorize.ActionList), h.ListPrescriptions)
	prescriptions.Post("/", requirePerm(authorize.ResourcePrescription, authorize.ActionCreate), h.CreatePrescription)
	prescriptions.Get("/:id", requirePerm(authorize.ResourcePrescription, authorize.ActionRead), h.GetPrescription)
	prescriptions.Patch("/:id", requirePerm(authorize.ResourcePrescription, authorize.ActionUpdate), h.UpdatePrescription)
	prescriptions.Delete("/:id", requirePerm(authorize.ResourcePrescription, authorize.ActionDelete), h.DeletePrescription)
}
