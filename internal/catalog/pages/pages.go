// Package pages wires the generic list-state controller to the three
// catalog entities. Each page owns one user's list view: search,
// filters, pagination, the add/edit draft, and the save/delete funnel
// into the domain services.
package pages

import (
	"library-catalog-backend/internal/catalog/listing"
)

// classify converts domain validation failures into listing
// validation errors so their message is shown verbatim on the form;
// anything else stays an unexpected error.
func classify(err error, isValidation func(error) bool) error {
	if err == nil {
		return nil
	}
	if isValidation(err) {
		return listing.Invalid(err.Error())
	}
	return err
}
