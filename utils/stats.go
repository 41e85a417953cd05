package utils

import "time"

// Stats tracks what happened during one play session
type Stats struct {
	Toggles      int
	Restarts     int
	Wins         int
	StartTime    time.Time
	RoundStarted time.Time
	LastWinTime  time.Duration
}

func NewStats() *Stats {
	now := time.Now()
	return &Stats{StartTime: now, RoundStarted: now}
}

// RecordToggle counts one accepted press
func (s *Stats) RecordToggle() {
	s.Toggles++
}

// RecordWin stores how long the current round took
func (s *Stats) RecordWin() {
	s.Wins++
	s.LastWinTime = time.Since(s.RoundStarted)
}

// RecordRestart starts timing a new round
func (s *Stats) RecordRestart() {
	s.Restarts++
	s.RoundStarted = time.Now()
}

// Runtime returns how long the session has been running
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
