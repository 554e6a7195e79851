// Package service implements the learning engine's components on top
// of the store interfaces: mastery tracking, review scheduling,
// difficulty prediction, streak management and lesson composition,
// plus the LearningService pipeline that sequences them for a single
// completed attempt.
//
// Each component commits its own state independently; there is no
// transaction spanning components. The pipeline serializes all
// mutations for one learner behind a per-learner lock and treats
// downstream failures as log-and-continue, since no rollback mechanism
// exists and learner state is best-effort by design.
package service
