// Package job contains the Job aggregate and its lifecycle Status state
// machine. A job is a bookable translation session: created by a customer in
// pending status, claimed by a translator, run to completion or cancelled,
// and optionally reopened from any terminal state.
//
// All transition rules live here. Application code never mutates a job's
// status directly; it calls the aggregate methods (Accept, Start, Complete,
// Cancel, MarkNotCalled, Reopen) and persists the result.
package job
