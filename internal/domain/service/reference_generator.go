package service

// ReferenceGenerator produces fresh opaque entitlement references.
type ReferenceGenerator interface {
	NewReference() (string, error)
}
