// Package domain defines the core business entities of the learning
// engine: learner progress and mastery, review queue entries, learning
// patterns, streaks, notifications, learner profiles, and the read-only
// vocabulary catalog types (words and phases).
package domain
