package commands

import (
	"context"
	"strings"
	"time"

	"serviceordering/internal/core/domain/model/event"
	"serviceordering/internal/core/domain/model/order"
	"serviceordering/internal/core/domain/services"
	"serviceordering/internal/core/ports"
)

// DefaultOrderPriority is assigned when a create payload leaves priority unset.
const DefaultOrderPriority = "4"

// CreateOrderCommandHandler handles the business logic for service order
// creation: payload policy validation, assignment of server-managed fields,
// persistence, and the Created notification.
type CreateOrderCommandHandler struct {
	orders       ports.OrderRepository
	publisher    ports.NotificationPublisher
	resourcePath string
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// resourcePath is the base path used to derive resource locators; it defaults
// to /serviceOrder when blank.
func NewCreateOrderCommandHandler(
	orders ports.OrderRepository,
	publisher ports.NotificationPublisher,
	resourcePath string,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orders:       orders,
		publisher:    publisher,
		resourcePath: normalizeResourcePath(resourcePath, "/serviceOrder"),
	}
}

// Handle processes the create command. On success the stored document carries
// a fresh identifier, the derived locator, state acknowledged, the order date,
// and acknowledged item states; the return value is the caller's requested
// projection of it. The Created notification is emitted after persistence and
// never affects the outcome.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (order.Document, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	// Reject a bad field selection before anything is persisted.
	if err := services.ValidateFieldSelection(cmd.Fields()); err != nil {
		return nil, err
	}

	payload := cmd.Payload()
	if err := order.ValidateCreate(payload); err != nil {
		return nil, err
	}

	id, err := h.orders.NextID(ctx)
	if err != nil {
		return nil, err
	}

	doc := payload.DeepCopy()
	doc[order.FieldID] = id
	doc[order.FieldHref] = h.resourcePath + "/" + id
	doc[order.FieldState] = order.StateAcknowledged.String()
	doc[order.FieldOrderDate] = order.FormatTimestamp(time.Now())
	if doc.StringField(order.FieldPriority) == "" {
		doc[order.FieldPriority] = DefaultOrderPriority
	}
	if _, present := doc[order.FieldExpectedCompletionDate]; !present {
		if requested, has := doc[order.FieldRequestedCompletionDate]; has {
			doc[order.FieldExpectedCompletionDate] = requested
		}
	}
	if doc.StringField(order.FieldAtType) == "" {
		doc[order.FieldAtType] = order.TypeName
	}
	for _, item := range doc.OrderItems() {
		item[order.ItemFieldState] = string(order.ItemStateAcknowledged)
	}

	if err = order.ValidateDocument(doc); err != nil {
		return nil, err
	}

	if err = h.orders.Add(ctx, doc); err != nil {
		return nil, err
	}

	h.publisher.Publish(event.KindCreate, doc)

	return services.ProjectOrder(doc, cmd.Fields())
}

func normalizeResourcePath(path, fallback string) string {
	normalized := strings.TrimRight(strings.TrimSpace(path), "/")
	if normalized == "" {
		return fallback
	}
	return normalized
}
