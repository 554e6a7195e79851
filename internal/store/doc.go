// Package store defines the persistence interfaces for learner state
// and the errors shared by every implementation. The engine is a single
// authoritative process, so the canonical implementation is the
// in-memory one under platform/memory; platform/postgres adds an
// optional best-effort durability snapshot behind SnapshotStore.
package store
