// Package cache keeps each user's in-flight week session in memory. The
// persisted record is only the stage flags; everything else (lesson
// position, activity board, quiz attempt) lives and dies with the session.
package cache

import (
	"sync"

	"github.com/dataanalyse/financial-goals-planner/internal/course"
	"github.com/dataanalyse/financial-goals-planner/internal/engine"
)

// WeekSession bundles the engines driving one user's active week. Timer
// holds the single pending delayed callback for the session (question
// countdown or badge-ceremony pause) — at most one is ever outstanding.
type WeekSession struct {
	Week        course.Week
	Progression *engine.Progression
	Lesson      *engine.Lesson
	Activity    engine.Activity
	Quiz        *engine.QuizSession
	Timer       *engine.Timer

	// Mu serializes bot-handler and timer-callback access to the
	// session's engines.
	Mu sync.Mutex
}

// CancelTimer stops any pending delayed callback so it cannot land on a
// session that has moved on.
func (s *WeekSession) CancelTimer() {
	if s.Timer != nil {
		s.Timer.Stop()
		s.Timer = nil
	}
}

type Cache struct {
	mu    sync.Mutex
	weeks map[int64]*WeekSession
}

func NewCache() *Cache {
	return &Cache{
		weeks: make(map[int64]*WeekSession),
	}
}

// SetWeek installs the user's active session, canceling any timer still
// pending on the session being replaced.
func (c *Cache) SetWeek(userID int64, session *WeekSession) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if old, exists := c.weeks[userID]; exists {
		old.CancelTimer()
	}
	c.weeks[userID] = session
}

func (c *Cache) Week(userID int64) (*WeekSession, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	session, exists := c.weeks[userID]
	return session, exists
}

func (c *Cache) DeleteWeek(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if old, exists := c.weeks[userID]; exists {
		old.CancelTimer()
	}
	delete(c.weeks, userID)
}
