// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "service_requested", Type: field.TypeString, Size: 255},
		{Name: "appointment_date", Type: field.TypeTime},
		{Name: "appointment_time", Type: field.TypeString, Size: 8},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"PENDING", "CONFIRMED", "CANCELLED", "COMPLETED"}, Default: "PENDING"},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "appointments_patients_appointments",
				Columns:    []*schema.Column{AppointmentsColumns[7]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_patient_id",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[7]},
			},
			{
				Name:    "appointment_status",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[6]},
			},
		},
	}
	// BlogPostsColumns holds the columns for the "blog_posts" table.
	BlogPostsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "slug", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "published_at", Type: field.TypeTime},
	}
	// BlogPostsTable holds the schema information for the "blog_posts" table.
	BlogPostsTable = &schema.Table{
		Name:       "blog_posts",
		Columns:    BlogPostsColumns,
		PrimaryKey: []*schema.Column{BlogPostsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "blogpost_slug",
				Unique:  true,
				Columns: []*schema.Column{BlogPostsColumns[3]},
			},
		},
	}
	// DentalHistoriesColumns holds the columns for the "dental_histories" table.
	DentalHistoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "visit_date", Type: field.TypeTime},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "treatment_provided", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// DentalHistoriesTable holds the schema information for the "dental_histories" table.
	DentalHistoriesTable = &schema.Table{
		Name:       "dental_histories",
		Columns:    DentalHistoriesColumns,
		PrimaryKey: []*schema.Column{DentalHistoriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "dental_histories_patients_history",
				Columns:    []*schema.Column{DentalHistoriesColumns[6]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "dentalhistory_patient_id",
				Unique:  false,
				Columns: []*schema.Column{DentalHistoriesColumns[6]},
			},
			{
				Name:    "dentalhistory_patient_id_visit_date",
				Unique:  false,
				Columns: []*schema.Column{DentalHistoriesColumns[6], DentalHistoriesColumns[3]},
			},
		},
	}
	// FaqCategoriesColumns holds the columns for the "faq_categories" table.
	FaqCategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "display_order", Type: field.TypeInt, Default: 0},
	}
	// FaqCategoriesTable holds the schema information for the "faq_categories" table.
	FaqCategoriesTable = &schema.Table{
		Name:       "faq_categories",
		Columns:    FaqCategoriesColumns,
		PrimaryKey: []*schema.Column{FaqCategoriesColumns[0]},
	}
	// FaqItemsColumns holds the columns for the "faq_items" table.
	FaqItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "question", Type: field.TypeString, Size: 500},
		{Name: "answer", Type: field.TypeString, Size: 2147483647},
		{Name: "display_order", Type: field.TypeInt, Default: 0},
		{Name: "category_id", Type: field.TypeUUID},
	}
	// FaqItemsTable holds the schema information for the "faq_items" table.
	FaqItemsTable = &schema.Table{
		Name:       "faq_items",
		Columns:    FaqItemsColumns,
		PrimaryKey: []*schema.Column{FaqItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "faq_items_faq_categories_items",
				Columns:    []*schema.Column{FaqItemsColumns[6]},
				RefColumns: []*schema.Column{FaqCategoriesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "faqitem_category_id",
				Unique:  false,
				Columns: []*schema.Column{FaqItemsColumns[6]},
			},
		},
	}
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "date_of_birth", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID, Unique: true},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "patients_users_patient_profile",
				Columns:    []*schema.Column{PatientsColumns[4]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "patient_user_id",
				Unique:  true,
				Columns: []*schema.Column{PatientsColumns[4]},
			},
		},
	}
	// PrescriptionsColumns holds the columns for the "prescriptions" table.
	PrescriptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "medicine_name", Type: field.TypeString, Size: 200},
		{Name: "dosage", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "instructions", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "history_id", Type: field.TypeUUID},
	}
	// PrescriptionsTable holds the schema information for the "prescriptions" table.
	PrescriptionsTable = &schema.Table{
		Name:       "prescriptions",
		Columns:    PrescriptionsColumns,
		PrimaryKey: []*schema.Column{PrescriptionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "prescriptions_dental_histories_prescriptions",
				Columns:    []*schema.Column{PrescriptionsColumns[6]},
				RefColumns: []*schema.Column{DentalHistoriesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "prescription_history_id",
				Unique:  false,
				Columns: []*schema.Column{PrescriptionsColumns[6]},
			},
		},
	}
	// ReviewsColumns holds the columns for the "reviews" table.
	ReviewsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "patient_name", Type: field.TypeString, Size: 100},
		{Name: "review_text", Type: field.TypeString, Size: 2147483647},
		{Name: "rating", Type: field.TypeInt, Default: 5},
		{Name: "user_id", Type: field.TypeUUID, Nullable: true},
	}
	// ReviewsTable holds the schema information for the "reviews" table.
	ReviewsTable = &schema.Table{
		Name:       "reviews",
		Columns:    ReviewsColumns,
		PrimaryKey: []*schema.Column{ReviewsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "reviews_users_reviews",
				Columns:    []*schema.Column{ReviewsColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "username", Type: field.TypeString, Unique: true, Size: 150},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "first_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "last_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "is_staff", Type: field.TypeBool, Default: false},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppointmentsTable,
		BlogPostsTable,
		DentalHistoriesTable,
		FaqCategoriesTable,
		FaqItemsTable,
		PatientsTable,
		PrescriptionsTable,
		ReviewsTable,
		UsersTable,
	}
)

func init() {
	AppointmentsTable.ForeignKeys[0].RefTable = PatientsTable
	DentalHistoriesTable.ForeignKeys[0].RefTable = PatientsTable
	FaqItemsTable.ForeignKeys[0].RefTable = FaqCategoriesTable
	PatientsTable.ForeignKeys[0].RefTable = UsersTable
	PrescriptionsTable.ForeignKeys[0].RefTable = DentalHistoriesTable
	ReviewsTable.ForeignKeys[0].RefTable = UsersTable
}
