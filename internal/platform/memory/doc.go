// Package memory provides the authoritative in-memory implementations
// of the store interfaces. Every store hands out deep copies so callers
// cannot mutate shared state outside a learner's lock; mutating
// operations on one learner are serialized by LearnerLocks while
// different learners proceed in parallel.
package memory
