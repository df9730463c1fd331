// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Appointment is the predicate function for appointment builders.
type Appointment func(*sql.Selector)

// BlogPost is the predicate function for blogpost builders.
type BlogPost func(*sql.Selector)

// DentalHistory is the predicate function for dentalhistory builders.
type DentalHistory func(*sql.Selector)

// FaqCategory is the predicate function for faqcategory builders.
type FaqCategory func(*sql.Selector)

// FaqItem is the predicate function for faqitem builders.
type FaqItem func(*sql.Selector)

// Patient is the predicate function for patient builders.
type Patient func(*sql.Selector)

// Prescription is the predicate function for prescription builders.
type Prescription func(*sql.Selector)

// Review is the predicate function for review builders.
type Review func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
