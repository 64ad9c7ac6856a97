// Package distance contains the per-job session metadata record and the
// Correction value type used by the distance-feed endpoint. Measurement
// fields (distance, time) and annotation fields (session time, comment,
// flags) are grouped: updating any member of a group rewrites the whole
// group, matching the external feed's full-group payloads.
package distance
