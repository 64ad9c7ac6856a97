// Package kernel contains shared value objects used across domain aggregates:
// UUID identifiers and Language codes. These types are immutable, validate
// themselves on construction, and reject zero values.
package kernel
