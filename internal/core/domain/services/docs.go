// Package services provides domain services that coordinate business rules
// across multiple aggregates in the booking system.
//
// The package includes:
//   - TranslatorMatcher: decides which translators are eligible for a job
//
// Domain services hold logic that spans aggregates and therefore does not
// belong to any single aggregate root.
package services
