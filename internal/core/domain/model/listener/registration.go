// Package listener defines notification subscriptions registered through the hub.
package listener

import (
	"net/url"
	"strings"
)

// Registration is one notification subscription: a callback URL plus an
// optional filter query. Registrations are immutable once created; the hub
// deletes them on unregister and never mutates them.
type Registration struct {
	ID       string
	Callback string
	Query    string
}

// Accepts reports whether a notification of the given event type should be
// delivered to this registration.
//
// The filter query supports a minimal eventType predicate, single or comma
// separated. A registration with no query, a query without eventType, or a
// query whose eventType values are all blank accepts every event.
func (r Registration) Accepts(eventType string) bool {
	query := strings.TrimSpace(r.Query)
	if query == "" {
		return true
	}

	values, err := url.ParseQuery(strings.TrimPrefix(query, "?"))
	if err != nil {
		return true
	}
	filters, present := values["eventType"]
	if !present {
		return true
	}

	accepted := make(map[string]struct{})
	for _, value := range filters {
		for _, item := range strings.Split(value, ",") {
			if normalized := strings.TrimSpace(item); normalized != "" {
				accepted[normalized] = struct{}{}
			}
		}
	}
	if len(accepted) == 0 {
		return true
	}

	_, match := accepted[eventType]
	return match
}
