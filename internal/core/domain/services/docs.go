// Package services holds the domain services that operate on service order
// documents: the RFC 7386 merge-patch engine, the query filter interpreter,
// and field projection. They are pure functions over document trees; storage
// and transport concerns stay in the adapters.
package services
