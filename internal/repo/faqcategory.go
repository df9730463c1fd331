// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dentalperfections/dental_backend/internal/repo/faqcategory"
	"github.com/google/uuid"
)

// FaqCategory is the model entity for the FaqCategory schema.
type FaqCategory struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// DisplayOrder holds the value of the "display_order" field.
	DisplayOrder int `json:"display_order,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FaqCategoryQuery when eager-loading is set.
	Edges        FaqCategoryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FaqCategoryEdges holds the relations/edges for other nodes in the graph.
type FaqCategoryEdges struct {
	// Items holds the value of the items edge.
	Items []*FaqItem `json:"items,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ItemsOrErr returns the Items value or an error if the edge
// was not loaded in eager-loading.
func (e FaqCategoryEdges) ItemsOrErr() ([]*FaqItem, error) {
	if e.loadedTypes[0] {
		return e.Items, nil
	}
	return nil, &NotLoadedError{edge: "items"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FaqCategory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case faqcategory.FieldDisplayOrder:
			values[i] = new(sql.NullInt64)
		case faqcategory.FieldTitle:
			values[i] = new(sql.NullString)
		case faqcategory.FieldCreatedAt, faqcategory.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case faqcategory.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FaqCategory fields.
func (_m *FaqCategory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case faqcategory.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case faqcategory.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case faqcategory.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case faqcategory.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case faqcategory.FieldDisplayOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field display_order", values[i])
			} else if value.Valid {
				_m.DisplayOrder = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FaqCategory.
// This includes values selected through modifiers, order, etc.
func (_m *FaqCategory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryItems queries the "items" edge of the FaqCategory entity.
func (_m *FaqCategory) QueryItems() *FaqItemQuery {
	return NewFaqCategoryClient(_m.config).QueryItems(_m)
}

// Update returns a builder for updating this FaqCategory.
// Note that you need to call FaqCategory.Unwrap() before calling this method if this FaqCategory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FaqCategory) Update() *FaqCategoryUpdateOne {
	return NewFaqCategoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FaqCategory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FaqCategory) Unwrap() *FaqCategory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: FaqCategory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FaqCategory) String() string {
	var builder strings.Builder
	builder.WriteString("FaqCategory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("display_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.DisplayOrder))
	builder.WriteByte(')')
	return builder.String()
}

// FaqCategories is a parsable slice of FaqCategory.
type FaqCategories []*FaqCategory
