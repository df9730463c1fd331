// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/dentalperfections/dental_backend/internal/repo/appointment"
	"github.com/dentalperfections/dental_backend/internal/repo/blogpost"
	"github.com/dentalperfections/dental_backend/internal/repo/dentalhistory"
	"github.com/dentalperfections/dental_backend/internal/repo/faqcategory"
	"github.com/dentalperfections/dental_backend/internal/repo/faqitem"
	"github.com/dentalperfections/dental_backend/internal/repo/patient"
	"github.com/dentalperfections/dental_backend/internal/repo/prescription"
	"github.com/dentalperfections/dental_backend/internal/repo/review"
	"github.com/dentalperfections/dental_backend/internal/repo/user"
	"github.com/dentalperfections/dental_backend/internal/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appointmentMixin := schema.Appointment{}.Mixin()
	appointmentMixinFields0 := appointmentMixin[0].Fields()
	_ = appointmentMixinFields0
	appointmentMixinFields1 := appointmentMixin[1].Fields()
	_ = appointmentMixinFields1
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentMixinFields1[0].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescServiceRequested is the schema descriptor for service_requested field.
	appointmentDescServiceRequested := appointmentFields[1].Descriptor()
	// appointment.ServiceRequestedValidator is a validator for the "service_requested" field. It is called by the builders before save.
	appointment.ServiceRequestedValidator = func() func(string) error {
		validators := appointmentDescServiceRequested.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(service_requested string) error {
			for _, fn := range fns {
				if err := fn(service_requested); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// appointmentDescAppointmentTime is the schema descriptor for appointment_time field.
	appointmentDescAppointmentTime := appointmentFields[3].Descriptor()
	// appointment.AppointmentTimeValidator is a validator for the "appointment_time" field. It is called by the builders before save.
	appointment.AppointmentTimeValidator = appointmentDescAppointmentTime.Validators[0].(func(string) error)
	// appointmentDescID is the schema descriptor for id field.
	appointmentDescID := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultID holds the default value on creation for the id field.
	appointment.DefaultID = appointmentDescID.Default.(func() uuid.UUID)
	blogpostMixin := schema.BlogPost{}.Mixin()
	blogpostMixinFields0 := blogpostMixin[0].Fields()
	_ = blogpostMixinFields0
	blogpostMixinFields1 := blogpostMixin[1].Fields()
	_ = blogpostMixinFields1
	blogpostFields := schema.BlogPost{}.Fields()
	_ = blogpostFields
	// blogpostDescCreatedAt is the schema descriptor for created_at field.
	blogpostDescCreatedAt := blogpostMixinFields1[0].Descriptor()
	// blogpost.DefaultCreatedAt holds the default value on creation for the created_at field.
	blogpost.DefaultCreatedAt = blogpostDescCreatedAt.Default.(func() time.Time)
	// blogpostDescUpdatedAt is the schema descriptor for updated_at field.
	blogpostDescUpdatedAt := blogpostMixinFields1[1].Descriptor()
	// blogpost.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	blogpost.DefaultUpdatedAt = blogpostDescUpdatedAt.Default.(func() time.Time)
	// blogpost.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	blogpost.UpdateDefaultUpdatedAt = blogpostDescUpdatedAt.UpdateDefault.(func() time.Time)
	// blogpostDescSlug is the schema descriptor for slug field.
	blogpostDescSlug := blogpostFields[0].Descriptor()
	// blogpost.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	blogpost.SlugValidator = func() func(string) error {
		validators := blogpostDescSlug.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(slug string) error {
			for _, fn := range fns {
				if err := fn(slug); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// blogpostDescTitle is the schema descriptor for title field.
	blogpostDescTitle := blogpostFields[1].Descriptor()
	// blogpost.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	blogpost.TitleValidator = func() func(string) error {
		validators := blogpostDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// blogpostDescPublishedAt is the schema descriptor for published_at field.
	blogpostDescPublishedAt := blogpostFields[3].Descriptor()
	// blogpost.DefaultPublishedAt holds the default value on creation for the published_at field.
	blogpost.DefaultPublishedAt = blogpostDescPublishedAt.Default.(func() time.Time)
	// blogpostDescID is the schema descriptor for id field.
	blogpostDescID := blogpostMixinFields0[0].Descriptor()
	// blogpost.DefaultID holds the default value on creation for the id field.
	blogpost.DefaultID = blogpostDescID.Default.(func() uuid.UUID)
	dentalhistoryMixin := schema.DentalHistory{}.Mixin()
	dentalhistoryMixinFields0 := dentalhistoryMixin[0].Fields()
	_ = dentalhistoryMixinFields0
	dentalhistoryMixinFields1 := dentalhistoryMixin[1].Fields()
	_ = dentalhistoryMixinFields1
	dentalhistoryFields := schema.DentalHistory{}.Fields()
	_ = dentalhistoryFields
	// dentalhistoryDescCreatedAt is the schema descriptor for created_at field.
	dentalhistoryDescCreatedAt := dentalhistoryMixinFields1[0].Descriptor()
	// dentalhistory.DefaultCreatedAt holds the default value on creation for the created_at field.
	dentalhistory.DefaultCreatedAt = dentalhistoryDescCreatedAt.Default.(func() time.Time)
	// dentalhistoryDescUpdatedAt is the schema descriptor for updated_at field.
	dentalhistoryDescUpdatedAt := dentalhistoryMixinFields1[1].Descriptor()
	// dentalhistory.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	dentalhistory.DefaultUpdatedAt = dentalhistoryDescUpdatedAt.Default.(func() time.Time)
	// dentalhistory.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	dentalhistory.UpdateDefaultUpdatedAt = dentalhistoryDescUpdatedAt.UpdateDefault.(func() time.Time)
	// dentalhistoryDescTreatmentProvided is the schema descriptor for treatment_provided field.
	dentalhistoryDescTreatmentProvided := dentalhistoryFields[3].Descriptor()
	// dentalhistory.TreatmentProvidedValidator is a validator for the "treatment_provided" field. It is called by the builders before save.
	dentalhistory.TreatmentProvidedValidator = dentalhistoryDescTreatmentProvided.Validators[0].(func(string) error)
	// dentalhistoryDescID is the schema descriptor for id field.
	dentalhistoryDescID := dentalhistoryMixinFields0[0].Descriptor()
	// dentalhistory.DefaultID holds the default value on creation for the id field.
	dentalhistory.DefaultID = dentalhistoryDescID.Default.(func() uuid.UUID)
	faqcategoryMixin := schema.FaqCategory{}.Mixin()
	faqcategoryMixinFields0 := faqcategoryMixin[0].Fields()
	_ = faqcategoryMixinFields0
	faqcategoryMixinFields1 := faqcategoryMixin[1].Fields()
	_ = faqcategoryMixinFields1
	faqcategoryFields := schema.FaqCategory{}.Fields()
	_ = faqcategoryFields
	// faqcategoryDescCreatedAt is the schema descriptor for created_at field.
	faqcategoryDescCreatedAt := faqcategoryMixinFields1[0].Descriptor()
	// faqcategory.DefaultCreatedAt holds the default value on creation for the created_at field.
	faqcategory.DefaultCreatedAt = faqcategoryDescCreatedAt.Default.(func() time.Time)
	// faqcategoryDescUpdatedAt is the schema descriptor for updated_at field.
	faqcategoryDescUpdatedAt := faqcategoryMixinFields1[1].Descriptor()
	// faqcategory.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	faqcategory.DefaultUpdatedAt = faqcategoryDescUpdatedAt.Default.(func() time.Time)
	// faqcategory.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	faqcategory.UpdateDefaultUpdatedAt = faqcategoryDescUpdatedAt.UpdateDefault.(func() time.Time)
	// faqcategoryDescTitle is the schema descriptor for title field.
	faqcategoryDescTitle := faqcategoryFields[0].Descriptor()
	// faqcategory.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	faqcategory.TitleValidator = func() func(string) error {
		validators := faqcategoryDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// faqcategoryDescDisplayOrder is the schema descriptor for display_order field.
	faqcategoryDescDisplayOrder := faqcategoryFields[1].Descriptor()
	// faqcategory.DefaultDisplayOrder holds the default value on creation for the display_order field.
	faqcategory.DefaultDisplayOrder = faqcategoryDescDisplayOrder.Default.(int)
	// faqcategoryDescID is the schema descriptor for id field.
	faqcategoryDescID := faqcategoryMixinFields0[0].Descriptor()
	// faqcategory.DefaultID holds the default value on creation for the id field.
	faqcategory.DefaultID = faqcategoryDescID.Default.(func() uuid.UUID)
	faqitemMixin := schema.FaqItem{}.Mixin()
	faqitemMixinFields0 := faqitemMixin[0].Fields()
	_ = faqitemMixinFields0
	faqitemMixinFields1 := faqitemMixin[1].Fields()
	_ = faqitemMixinFields1
	faqitemFields := schema.FaqItem{}.Fields()
	_ = faqitemFields
	// faqitemDescCreatedAt is the schema descriptor for created_at field.
	faqitemDescCreatedAt := faqitemMixinFields1[0].Descriptor()
	// faqitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	faqitem.DefaultCreatedAt = faqitemDescCreatedAt.Default.(func() time.Time)
	// faqitemDescUpdatedAt is the schema descriptor for updated_at field.
	faqitemDescUpdatedAt := faqitemMixinFields1[1].Descriptor()
	// faqitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	faqitem.DefaultUpdatedAt = faqitemDescUpdatedAt.Default.(func() time.Time)
	// faqitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	faqitem.UpdateDefaultUpdatedAt = faqitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// faqitemDescQuestion is the schema descriptor for question field.
	faqitemDescQuestion := faqitemFields[1].Descriptor()
	// faqitem.QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	faqitem.QuestionValidator = func() func(string) error {
		validators := faqitemDescQuestion.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(question string) error {
			for _, fn := range fns {
				if err := fn(question); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// faqitemDescAnswer is the schema descriptor for answer field.
	faqitemDescAnswer := faqitemFields[2].Descriptor()
	// faqitem.AnswerValidator is a validator for the "answer" field. It is called by the builders before save.
	faqitem.AnswerValidator = faqitemDescAnswer.Validators[0].(func(string) error)
	// faqitemDescDisplayOrder is the schema descriptor for display_order field.
	faqitemDescDisplayOrder := faqitemFields[3].Descriptor()
	// faqitem.DefaultDisplayOrder holds the default value on creation for the display_order field.
	faqitem.DefaultDisplayOrder = faqitemDescDisplayOrder.Default.(int)
	// faqitemDescID is the schema descriptor for id field.
	faqitemDescID := faqitemMixinFields0[0].Descriptor()
	// faqitem.DefaultID holds the default value on creation for the id field.
	faqitem.DefaultID = faqitemDescID.Default.(func() uuid.UUID)
	patientMixin := schema.Patient{}.Mixin()
	patientMixinFields0 := patientMixin[0].Fields()
	_ = patientMixinFields0
	patientMixinFields1 := patientMixin[1].Fields()
	_ = patientMixinFields1
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientMixinFields1[0].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	// patientDescPhone is the schema descriptor for phone field.
	patientDescPhone := patientFields[1].Descriptor()
	// patient.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	patient.PhoneValidator = patientDescPhone.Validators[0].(func(string) error)
	// patientDescID is the schema descriptor for id field.
	patientDescID := patientMixinFields0[0].Descriptor()
	// patient.DefaultID holds the default value on creation for the id field.
	patient.DefaultID = patientDescID.Default.(func() uuid.UUID)
	prescriptionMixin := schema.Prescription{}.Mixin()
	prescriptionMixinFields0 := prescriptionMixin[0].Fields()
	_ = prescriptionMixinFields0
	prescriptionMixinFields1 := prescriptionMixin[1].Fields()
	_ = prescriptionMixinFields1
	prescriptionFields := schema.Prescription{}.Fields()
	_ = prescriptionFields
	// prescriptionDescCreatedAt is the schema descriptor for created_at field.
	prescriptionDescCreatedAt := prescriptionMixinFields1[0].Descriptor()
	// prescription.DefaultCreatedAt holds the default value on creation for the created_at field.
	prescription.DefaultCreatedAt = prescriptionDescCreatedAt.Default.(func() time.Time)
	// prescriptionDescUpdatedAt is the schema descriptor for updated_at field.
	prescriptionDescUpdatedAt := prescriptionMixinFields1[1].Descriptor()
	// prescription.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	prescription.DefaultUpdatedAt = prescriptionDescUpdatedAt.Default.(func() time.Time)
	// prescription.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	prescription.UpdateDefaultUpdatedAt = prescriptionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// prescriptionDescMedicineName is the schema descriptor for medicine_name field.
	prescriptionDescMedicineName := prescriptionFields[1].Descriptor()
	// prescription.MedicineNameValidator is a validator for the "medicine_name" field. It is called by the builders before save.
	prescription.MedicineNameValidator = func() func(string) error {
		validators := prescriptionDescMedicineName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(medicine_name string) error {
			for _, fn := range fns {
				if err := fn(medicine_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// prescriptionDescDosage is the schema descriptor for dosage field.
	prescriptionDescDosage := prescriptionFields[2].Descriptor()
	// prescription.DosageValidator is a validator for the "dosage" field. It is called by the builders before save.
	prescription.DosageValidator = prescriptionDescDosage.Validators[0].(func(string) error)
	// prescriptionDescInstructions is the schema descriptor for instructions field.
	prescriptionDescInstructions := prescriptionFields[3].Descriptor()
	// prescription.InstructionsValidator is a validator for the "instructions" field. It is called by the builders before save.
	prescription.InstructionsValidator = prescriptionDescInstructions.Validators[0].(func(string) error)
	// prescriptionDescID is the schema descriptor for id field.
	prescriptionDescID := prescriptionMixinFields0[0].Descriptor()
	// prescription.DefaultID holds the default value on creation for the id field.
	prescription.DefaultID = prescriptionDescID.Default.(func() uuid.UUID)
	reviewMixin := schema.Review{}.Mixin()
	reviewMixinFields0 := reviewMixin[0].Fields()
	_ = reviewMixinFields0
	reviewMixinFields1 := reviewMixin[1].Fields()
	_ = reviewMixinFields1
	reviewFields := schema.Review{}.Fields()
	_ = reviewFields
	// reviewDescCreatedAt is the schema descriptor for created_at field.
	reviewDescCreatedAt := reviewMixinFields1[0].Descriptor()
	// review.DefaultCreatedAt holds the default value on creation for the created_at field.
	review.DefaultCreatedAt = reviewDescCreatedAt.Default.(func() time.Time)
	// reviewDescPatientName is the schema descriptor for patient_name field.
	reviewDescPatientName := reviewFields[1].Descriptor()
	// review.PatientNameValidator is a validator for the "patient_name" field. It is called by the builders before save.
	review.PatientNameValidator = reviewDescPatientName.Validators[0].(func(string) error)
	// reviewDescReviewText is the schema descriptor for review_text field.
	reviewDescReviewText := reviewFields[2].Descriptor()
	// review.ReviewTextValidator is a validator for the "review_text" field. It is called by the builders before save.
	review.ReviewTextValidator = reviewDescReviewText.Validators[0].(func(string) error)
	// reviewDescRating is the schema descriptor for rating field.
	reviewDescRating := reviewFields[3].Descriptor()
	// review.DefaultRating holds the default value on creation for the rating field.
	review.DefaultRating = reviewDescRating.Default.(int)
	// review.RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	review.RatingValidator = func() func(int) error {
		validators := reviewDescRating.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(rating int) error {
			for _, fn := range fns {
				if err := fn(rating); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// reviewDescID is the schema descriptor for id field.
	reviewDescID := reviewMixinFields0[0].Descriptor()
	// review.DefaultID holds the default value on creation for the id field.
	review.DefaultID = reviewDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[0].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = func() func(string) error {
		validators := userDescUsername.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(username string) error {
			for _, fn := range fns {
				if err := fn(username); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescFirstName is the schema descriptor for first_name field.
	userDescFirstName := userFields[2].Descriptor()
	// user.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	user.FirstNameValidator = userDescFirstName.Validators[0].(func(string) error)
	// userDescLastName is the schema descriptor for last_name field.
	userDescLastName := userFields[3].Descriptor()
	// user.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	user.LastNameValidator = userDescLastName.Validators[0].(func(string) error)
	// userDescIsStaff is the schema descriptor for is_staff field.
	userDescIsStaff := userFields[5].Descriptor()
	// user.DefaultIsStaff holds the default value on creation for the is_staff field.
	user.DefaultIsStaff = userDescIsStaff.Default.(bool)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
