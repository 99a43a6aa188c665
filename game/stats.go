package game

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"

	"tilesnake/game/types"
)

// GameRecord is one finished game
type GameRecord struct {
	Session   string
	StartTime time.Time
	EndTime   time.Time
	Score     int
	Cause     string
}

func (r GameRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// GameStats keeps the finished games of one run. It is a Listener; nothing
// is kept once the process exits.
type GameStats struct {
	Games []GameRecord

	mutex   sync.RWMutex
	current GameRecord
	now     func() time.Time
}

func NewGameStats() *GameStats {
	return &GameStats{
		Games: make([]GameRecord, 0),
		now:   time.Now,
	}
}

func (s *GameStats) GameStarted(session string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.current = GameRecord{Session: session, StartTime: s.now()}
}

func (s *GameStats) FruitEaten(score int) {}

func (s *GameStats) GameOver(score int, cause types.CollisionType) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	r := s.current
	r.EndTime = s.now()
	r.Score = score
	r.Cause = cause.String()
	s.Games = append(s.Games, r)
	s.current = GameRecord{}
}

func (s *GameStats) GetStats() []GameRecord {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	out := make([]GameRecord, len(s.Games))
	copy(out, s.Games)
	return out
}

func (s *GameStats) GetBestScore() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	best := 0
	for _, g := range s.Games {
		if g.Score > best {
			best = g.Score
		}
	}
	return best
}

func (s *GameStats) GetAverageScore() float64 {
	scores := s.scores()
	if len(scores) == 0 {
		return 0
	}
	return stat.Mean(scores, nil)
}

func (s *GameStats) GetMedianScore() float64 {
	scores := s.scores()
	if len(scores) == 0 {
		return 0
	}
	sort.Float64s(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return (scores[mid-1] + scores[mid]) / 2
	}
	return scores[mid]
}

func (s *GameStats) scores() []float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	out := make([]float64, len(s.Games))
	for i, g := range s.Games {
		out[i] = float64(g.Score)
	}
	return out
}

// Summary is a one-line report of the run, empty when no game finished
func (s *GameStats) Summary() string {
	s.mutex.RLock()
	n := len(s.Games)
	s.mutex.RUnlock()
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("games %d, best %d, average %.1f, median %.1f",
		n, s.GetBestScore(), s.GetAverageScore(), s.GetMedianScore())
}
