package order

// State is the lifecycle state of a service order.
type State string

// Service order lifecycle states (wire values).
const (
	StateAcknowledged State = "acknowledged"
	StateInProgress   State = "inProgress"
	StateCancelled    State = "cancelled"
	StateCompleted    State = "completed"
	StateRejected     State = "rejected"
	StatePartial      State = "partial"
)

// IsValid reports whether s is a declared order state.
func (s State) IsValid() bool {
	switch s {
	case StateAcknowledged, StateInProgress, StateCancelled,
		StateCompleted, StateRejected, StatePartial:
		return true
	}
	return false
}

func (s State) String() string {
	return string(s)
}

// ItemState is the lifecycle state of a single order item.
type ItemState string

// Order item states (wire values). Items do not use the partial state.
const (
	ItemStateAcknowledged ItemState = "acknowledged"
	ItemStateInProgress   ItemState = "inProgress"
	ItemStateCancelled    ItemState = "cancelled"
	ItemStateCompleted    ItemState = "completed"
	ItemStateRejected     ItemState = "rejected"
)

// IsValid reports whether s is a declared order item state.
func (s ItemState) IsValid() bool {
	switch s {
	case ItemStateAcknowledged, ItemStateInProgress, ItemStateCancelled,
		ItemStateCompleted, ItemStateRejected:
		return true
	}
	return false
}

// Action is the requested operation an order item applies to its service.
type Action string

// Order item actions (wire values).
const (
	ActionAdd      Action = "add"
	ActionModify   Action = "modify"
	ActionDelete   Action = "delete"
	ActionNoChange Action = "noChange"
)

// IsValid reports whether a is a declared order item action.
func (a Action) IsValid() bool {
	switch a {
	case ActionAdd, ActionModify, ActionDelete, ActionNoChange:
		return true
	}
	return false
}
