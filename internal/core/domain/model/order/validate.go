package order

import (
	"fmt"
	"sort"
	"strings"

	"serviceordering/internal/pkg/errs"
)

func isNonEmpty(value any) bool {
	s, ok := value.(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasReference(values ...any) bool {
	for _, value := range values {
		if isNonEmpty(value) {
			return true
		}
	}
	return false
}

func sortedKeys(payload Document, allowed map[string]struct{}) []string {
	matched := make([]string, 0, len(allowed))
	for key := range payload {
		if _, hit := allowed[key]; hit {
			matched = append(matched, key)
		}
	}
	sort.Strings(matched)
	return matched
}

// objectList coerces a field value into its object entries. The bool result
// is false when the value is present but not a list of objects.
func objectList(value any) ([]Document, bool) {
	if value == nil {
		return nil, true
	}
	raw, ok := value.([]any)
	if !ok {
		return nil, false
	}
	entries := make([]Document, 0, len(raw))
	for _, entry := range raw {
		obj, isObject := entry.(map[string]any)
		if !isObject {
			return nil, false
		}
		entries = append(entries, Document(obj))
	}
	return entries, true
}

func validateRelatedPartyCollection(value any, scope string) error {
	entries, ok := objectList(value)
	if !ok {
		return errs.NewInvalidRequestError(scope + " must be a list of objects")
	}
	for index, party := range entries {
		if !isNonEmpty(party["role"]) {
			return errs.NewInvalidRequestError(fmt.Sprintf("%s[%d].role is required", scope, index))
		}
		if !hasReference(party["id"], party["href"], party["name"]) {
			return errs.NewInvalidRequestError(
				fmt.Sprintf("%s[%d] must include at least one of id, href, or name", scope, index))
		}
	}
	return nil
}

func validateNoteCollection(value any, scope string) error {
	entries, ok := objectList(value)
	if !ok {
		return errs.NewInvalidRequestError(scope + " must be a list of objects")
	}
	for index, note := range entries {
		date, hasDate := note["date"].(string)
		if !hasDate || !isNonEmpty(note["author"]) || !isNonEmpty(note["text"]) {
			return errs.NewInvalidRequestError(
				fmt.Sprintf("%s[%d] requires date, author, and text", scope, index))
		}
		if _, err := ParseTimestamp(date); err != nil {
			return errs.NewInvalidRequestErrorWithCause(
				fmt.Sprintf("%s[%d].date must be a timestamp", scope, index), err)
		}
	}
	return nil
}

func validateOrderRelationshipCollection(value any, scope string) error {
	entries, ok := objectList(value)
	if !ok {
		return errs.NewInvalidRequestError(scope + " must be a list of objects")
	}
	for index, relationship := range entries {
		if !isNonEmpty(relationship["relationshipType"]) {
			return errs.NewInvalidRequestError(
				fmt.Sprintf("%s[%d].relationshipType is required", scope, index))
		}
		if !hasReference(relationship["id"], relationship["href"]) {
			return errs.NewInvalidRequestError(
				fmt.Sprintf("%s[%d] requires id and/or href", scope, index))
		}
	}
	return nil
}

func validateOrderItemRelationshipCollection(value any, scope string) error {
	entries, ok := objectList(value)
	if !ok {
		return errs.NewInvalidRequestError(scope + " must be a list of objects")
	}
	for index, relationship := range entries {
		if !isNonEmpty(relationship["relationshipType"]) {
			return errs.NewInvalidRequestError(
				fmt.Sprintf("%s[%d].relationshipType is required", scope, index))
		}
		if !isNonEmpty(relationship["id"]) {
			return errs.NewInvalidRequestError(
				fmt.Sprintf("%s[%d].id is required", scope, index))
		}
	}
	return nil
}

func validateAppointment(value any, scope string) error {
	if value == nil {
		return nil
	}
	appointment, ok := value.(map[string]any)
	if !ok {
		return errs.NewInvalidRequestError(scope + " must be an object")
	}
	if !hasReference(appointment["id"], appointment["href"]) {
		return errs.NewInvalidRequestError(scope + " requires id and/or href")
	}
	return nil
}

func validateServiceRestriction(service Document, scope string) error {
	places, ok := objectList(service["place"])
	if !ok {
		return errs.NewInvalidRequestError(scope + ".place must be a list of objects")
	}
	for index, place := range places {
		if !isNonEmpty(place["role"]) {
			return errs.NewInvalidRequestError(
				fmt.Sprintf("%s.place[%d].role is required", scope, index))
		}
		if !hasReference(place["id"], place["href"]) {
			return errs.NewInvalidRequestError(
				fmt.Sprintf("%s.place[%d] requires id and/or href", scope, index))
		}
	}

	if raw := service["serviceSpecification"]; raw != nil {
		specification, isObject := raw.(map[string]any)
		if !isObject {
			return errs.NewInvalidRequestError(scope + ".serviceSpecification must be an object")
		}
		if !hasReference(specification["id"], specification["href"]) {
			return errs.NewInvalidRequestError(scope + ".serviceSpecification requires id and/or href")
		}
	}

	relationships, ok := objectList(service["serviceRelationship"])
	if !ok {
		return errs.NewInvalidRequestError(scope + ".serviceRelationship must be a list of objects")
	}
	for index, relationship := range relationships {
		if !isNonEmpty(relationship["relationshipType"]) {
			return errs.NewInvalidRequestError(
				fmt.Sprintf("%s.serviceRelationship[%d].relationshipType is required", scope, index))
		}
		related, isObject := relationship["service"].(map[string]any)
		if !isObject || !hasReference(related["id"], related["href"]) {
			return errs.NewInvalidRequestError(
				fmt.Sprintf("%s.serviceRelationship[%d].service requires id and/or href", scope, index))
		}
	}

	characteristics, ok := objectList(service["serviceCharacteristic"])
	if !ok {
		return errs.NewInvalidRequestError(scope + ".serviceCharacteristic must be a list of objects")
	}
	for index, characteristic := range characteristics {
		if !isNonEmpty(characteristic["name"]) ||
			!isNonEmpty(characteristic["valueType"]) ||
			characteristic["value"] == nil {
			return errs.NewInvalidRequestError(
				fmt.Sprintf("%s.serviceCharacteristic[%d] requires name, valueType, and value", scope, index))
		}
	}

	return nil
}

// ValidateCreate checks a client create payload before server-managed fields
// are assigned. The payload is the decoded request body, untouched.
func ValidateCreate(payload Document) error {
	if invalid := sortedKeys(payload, CreateServerManagedFields); len(invalid) > 0 {
		return errs.NewInvalidRequestError(
			"create payload cannot include server-managed fields: " + strings.Join(invalid, ", "))
	}

	items, ok := objectList(payload[FieldOrderItem])
	if !ok {
		return errs.NewInvalidRequestError("orderItem must be a list of objects")
	}
	if len(items) == 0 {
		return errs.NewInvalidRequestError("orderItem requires at least one entry")
	}

	for index, item := range items {
		scope := fmt.Sprintf("orderItem[%d]", index)

		if _, present := item[ItemFieldState]; present {
			return errs.NewInvalidRequestError(
				fmt.Sprintf("create payload cannot include %s.state (server-managed)", scope))
		}
		if !isNonEmpty(item[ItemFieldID]) {
			return errs.NewInvalidRequestError(scope + ".id is required")
		}

		action := Action(item.StringField(ItemFieldAction))
		if !action.IsValid() {
			return errs.NewInvalidRequestError(scope + ".action must be one of add, modify, delete, noChange")
		}

		service, isObject := item[ItemFieldService].(map[string]any)
		if !isObject {
			return errs.NewInvalidRequestError(scope + ".service is required")
		}
		if action != ActionAdd && !hasReference(service["id"], service["href"]) {
			return errs.NewInvalidRequestError(fmt.Sprintf(
				"for %s.action different from 'add', service.id and/or service.href is required", scope))
		}

		if err := validateAppointment(item[ItemFieldAppointment], scope+".appointment"); err != nil {
			return err
		}
		if err := validateOrderItemRelationshipCollection(
			item[ItemFieldOrderItemRelationship], scope+".orderItemRelationship"); err != nil {
			return err
		}
		if err := validateRelatedPartyCollection(item[ItemFieldRelatedParty], scope+".relatedParty"); err != nil {
			return err
		}
		if err := validateServiceRestriction(Document(service), scope+".service"); err != nil {
			return err
		}
	}

	if err := validateRelatedPartyCollection(payload[FieldRelatedParty], FieldRelatedParty); err != nil {
		return err
	}
	if err := validateNoteCollection(payload[FieldNote], FieldNote); err != nil {
		return err
	}
	return validateOrderRelationshipCollection(payload[FieldOrderRelationship], FieldOrderRelationship)
}

// ValidatePatch checks a merge-patch body against field mutability policy.
// The current order state decides whether conditionally patchable fields are
// allowed; it is passed explicitly rather than read from ambient context.
func ValidatePatch(patch Document, current State) error {
	if invalid := sortedKeys(patch, PatchNonPatchableFields); len(invalid) > 0 {
		return errs.NewInvalidRequestError(
			"patch payload includes non-patchable fields: " + strings.Join(invalid, ", "))
	}

	items, ok := objectList(patch[FieldOrderItem])
	if !ok {
		return errs.NewInvalidRequestError("orderItem must be a list of objects")
	}
	for index, item := range items {
		scope := fmt.Sprintf("orderItem[%d]", index)

		if invalid := sortedKeys(item, PatchNonPatchableItemFields); len(invalid) > 0 {
			return errs.NewInvalidRequestError(fmt.Sprintf(
				"%s includes non-patchable fields: %s", scope, strings.Join(invalid, ", ")))
		}
		if err := validateAppointment(item[ItemFieldAppointment], scope+".appointment"); err != nil {
			return err
		}
		if err := validateOrderItemRelationshipCollection(
			item[ItemFieldOrderItemRelationship], scope+".orderItemRelationship"); err != nil {
			return err
		}
		if err := validateRelatedPartyCollection(item[ItemFieldRelatedParty], scope+".relatedParty"); err != nil {
			return err
		}
		if service, isObject := item[ItemFieldService].(map[string]any); isObject {
			if err := validateServiceRestriction(Document(service), scope+".service"); err != nil {
				return err
			}
		}
	}

	if current != StateAcknowledged {
		for field := range PatchAcknowledgedOnlyFields {
			// An explicit null is a removal, not a supplied value.
			if value, present := patch[field]; present && value != nil {
				return errs.NewInvalidRequestError(
					"patch includes fields that are patchable only in 'acknowledged' order state")
			}
		}
	}

	if value := patch[FieldRelatedParty]; value != nil {
		if err := validateRelatedPartyCollection(value, FieldRelatedParty); err != nil {
			return err
		}
	}
	if value := patch[FieldNote]; value != nil {
		if err := validateNoteCollection(value, FieldNote); err != nil {
			return err
		}
	}
	if value := patch[FieldOrderRelationship]; value != nil {
		if err := validateOrderRelationshipCollection(value, FieldOrderRelationship); err != nil {
			return err
		}
	}
	return nil
}

// ValidateDocument type-checks a full service order document against the
// schema. It runs after a merge patch so a patch can never leave a stored
// record in a shape the schema does not allow. Structural collection rules
// are create/patch policy and intentionally not re-checked here.
func ValidateDocument(doc Document) error {
	stringFields := []string{
		FieldID, FieldHref, FieldCategory, FieldDescription, FieldExternalID,
		FieldPriority, FieldNotificationContact, FieldAtType, FieldAtBaseType,
		FieldAtSchemaLocation,
	}
	for _, field := range stringFields {
		if value, present := doc[field]; present && value != nil {
			if _, isString := value.(string); !isString {
				return errs.NewInvalidRequestError(field + " must be a string")
			}
		}
	}

	for field := range DateFields {
		value, present := doc[field]
		if !present || value == nil {
			continue
		}
		raw, isString := value.(string)
		if !isString {
			return errs.NewInvalidRequestError(field + " must be an ISO-8601 timestamp")
		}
		if _, err := ParseTimestamp(raw); err != nil {
			return errs.NewInvalidRequestErrorWithCause(field+" must be an ISO-8601 timestamp", err)
		}
	}

	if value, present := doc[FieldState]; present && value != nil {
		state, isString := value.(string)
		if !isString || !State(state).IsValid() {
			return errs.NewInvalidRequestError("state must be a declared service order state")
		}
	}

	for _, field := range []string{FieldRelatedParty, FieldNote, FieldOrderRelationship} {
		if value, present := doc[field]; present && value != nil {
			if _, ok := objectList(value); !ok {
				return errs.NewInvalidRequestError(field + " must be a list of objects")
			}
		}
	}

	if value, present := doc[FieldOrderItem]; present && value != nil {
		items, ok := objectList(value)
		if !ok {
			return errs.NewInvalidRequestError("orderItem must be a list of objects")
		}
		for index, item := range items {
			scope := fmt.Sprintf("orderItem[%d]", index)
			if raw, has := item[ItemFieldAction]; has && raw != nil {
				action, isString := raw.(string)
				if !isString || !Action(action).IsValid() {
					return errs.NewInvalidRequestError(scope + ".action must be a declared action")
				}
			}
			if raw, has := item[ItemFieldState]; has && raw != nil {
				state, isString := raw.(string)
				if !isString || !ItemState(state).IsValid() {
					return errs.NewInvalidRequestError(scope + ".state must be a declared order item state")
				}
			}
			if raw, has := item[ItemFieldID]; has && raw != nil {
				if _, isString := raw.(string); !isString {
					return errs.NewInvalidRequestError(scope + ".id must be a string")
				}
			}
		}
	}

	return nil
}
