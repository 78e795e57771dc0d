package client

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/shipthis-co/shipthis-go/internal/constants"
)

// Operation-boundary precondition checks. Violations return before any
// network call is made.

func validateCollection(collection string) error {
	err := validation.Validate(collection,
		validation.Required,
		validation.Length(constants.MinNameLength, 0),
	)
	if err != nil {
		return fmt.Errorf("invalid collection name %q: %w", collection, err)
	}

	return nil
}

func validateObjectID(objectID string) error {
	err := validation.Validate(objectID,
		validation.Required,
		validation.Length(constants.MinNameLength, 0),
	)
	if err != nil {
		return fmt.Errorf("invalid object id %q: %w", objectID, err)
	}

	return nil
}

func validateRequired(name, value string) error {
	err := validation.Validate(value, validation.Required)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", name, err)
	}

	return nil
}

func validateBulkEdit(ids []string, updateData map[string]interface{}) error {
	err := validation.Validate(ids, validation.Required)
	if err != nil {
		return fmt.Errorf("invalid id list: %w", err)
	}

	for _, id := range ids {
		err = validateObjectID(id)
		if err != nil {
			return err
		}
	}

	err = validation.Validate(updateData, validation.Required)
	if err != nil {
		return fmt.Errorf("invalid update data: %w", err)
	}

	return nil
}
