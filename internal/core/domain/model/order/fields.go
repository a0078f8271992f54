package order

// Wire-level names of the service order fields referenced by code.
const (
	FieldID                      = "id"
	FieldHref                    = "href"
	FieldState                   = "state"
	FieldPriority                = "priority"
	FieldCategory                = "category"
	FieldExternalID              = "externalId"
	FieldDescription             = "description"
	FieldOrderDate               = "orderDate"
	FieldCompletionDate          = "completionDate"
	FieldExpectedCompletionDate  = "expectedCompletionDate"
	FieldRequestedCompletionDate = "requestedCompletionDate"
	FieldRequestedStartDate      = "requestedStartDate"
	FieldStartDate               = "startDate"
	FieldOrderItem               = "orderItem"
	FieldOrderRelationship       = "orderRelationship"
	FieldRelatedParty            = "relatedParty"
	FieldNote                    = "note"
	FieldNotificationContact     = "notificationContact"
	FieldAtType                  = "@type"
	FieldAtBaseType              = "@baseType"
	FieldAtSchemaLocation        = "@schemaLocation"
)

// Wire-level names of order item fields referenced by code.
const (
	ItemFieldID                    = "id"
	ItemFieldAction                = "action"
	ItemFieldState                 = "state"
	ItemFieldService               = "service"
	ItemFieldAppointment           = "appointment"
	ItemFieldRelatedParty          = "relatedParty"
	ItemFieldOrderItemRelationship = "orderItemRelationship"
)

// DeclaredFields is the full set of declared top-level service order fields.
// Field projection validates requested names against this set, not against
// the values actually present on an instance.
var DeclaredFields = map[string]struct{}{
	FieldAtBaseType:              {},
	FieldAtSchemaLocation:        {},
	FieldAtType:                  {},
	FieldCategory:                {},
	FieldCompletionDate:          {},
	FieldDescription:             {},
	FieldExpectedCompletionDate:  {},
	FieldExternalID:              {},
	FieldHref:                    {},
	FieldID:                      {},
	FieldNote:                    {},
	FieldNotificationContact:     {},
	FieldOrderDate:               {},
	FieldOrderItem:               {},
	FieldOrderRelationship:       {},
	FieldPriority:                {},
	FieldRelatedParty:            {},
	FieldRequestedCompletionDate: {},
	FieldRequestedStartDate:      {},
	FieldStartDate:               {},
	FieldState:                   {},
}

// CreateServerManagedFields may never appear in a create payload.
var CreateServerManagedFields = map[string]struct{}{
	FieldID:                     {},
	FieldHref:                   {},
	FieldState:                  {},
	FieldOrderDate:              {},
	FieldCompletionDate:         {},
	FieldExpectedCompletionDate: {},
	FieldStartDate:              {},
}

// PatchNonPatchableFields are rejected in a patch body regardless of state.
var PatchNonPatchableFields = map[string]struct{}{
	FieldID:             {},
	FieldHref:           {},
	FieldExternalID:     {},
	FieldPriority:       {},
	FieldState:          {},
	FieldOrderDate:      {},
	FieldCompletionDate: {},
}

// PatchAcknowledgedOnlyFields are patchable only while the order state is
// acknowledged.
var PatchAcknowledgedOnlyFields = map[string]struct{}{
	FieldRelatedParty:            {},
	FieldRequestedCompletionDate: {},
	FieldRequestedStartDate:      {},
	FieldOrderItem:               {},
}

// PatchNonPatchableItemFields are rejected inside any order item of a patch.
var PatchNonPatchableItemFields = map[string]struct{}{
	ItemFieldID:     {},
	ItemFieldAction: {},
	ItemFieldState:  {},
}

// DateFields are the service order attributes holding timestamps.
var DateFields = map[string]struct{}{
	FieldOrderDate:               {},
	FieldCompletionDate:          {},
	FieldExpectedCompletionDate:  {},
	FieldRequestedCompletionDate: {},
	FieldRequestedStartDate:      {},
	FieldStartDate:               {},
}
