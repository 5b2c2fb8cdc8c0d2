package scheduler

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/chromix/api/datastore"
	"github.com/chromix/api/models"
	"github.com/chromix/api/palette"
)

// Scheduler picks a featured base color once a day
type Scheduler struct {
	DailyColorRepo datastore.DailyColorRepository

	// Intn and Now are replaceable for tests
	Intn func(n int) int
	Now  func() time.Time

	mu       sync.Mutex
	timer    *time.Timer
	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	running  sync.WaitGroup
}

func NewScheduler(repo datastore.DailyColorRepository) *Scheduler {
	return &Scheduler{
		DailyColorRepo: repo,
		Intn:           rand.Intn,
		Now:            time.Now,
		done:           make(chan struct{}),
	}
}

// Start runs the generation at the next midnight and every 24 hours after
func (s *Scheduler) Start() {
	now := s.Now()
	nextMidnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	durationUntilMidnight := nextMidnight.Sub(now)

	log.Printf("Scheduler started. Next daily color generation in %v", durationUntilMidnight)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.running.Add(1)
	s.timer = time.AfterFunc(durationUntilMidnight, func() {
		defer s.running.Done()
		s.GenerateDailyColor()

		s.mu.Lock()
		if s.stopped() {
			s.mu.Unlock()
			return
		}
		ticker := time.NewTicker(24 * time.Hour)
		s.ticker = ticker
		s.mu.Unlock()
		defer ticker.Stop()

		ticks := ticker.C
		for {
			select {
			case <-ticks:
				s.GenerateDailyColor()
			case <-s.done:
				return
			}
		}
	})
}

// Stop cancels pending and periodic runs and waits for a generation in
// progress. It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		if s.timer != nil && s.timer.Stop() {
			s.running.Done()
		}
		if s.ticker != nil {
			s.ticker.Stop()
		}
		close(s.done)
		s.mu.Unlock()

		s.running.Wait()
		log.Println("Scheduler stopped")
	})
}

func (s *Scheduler) stopped() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// GenerateDailyColor is the scheduled job; failures are logged
func (s *Scheduler) GenerateDailyColor() error {
	log.Println("Generating daily color...")
	_, _, err := s.Generate()
	if err != nil {
		log.Printf("Error generating daily color: %v", err)
	}
	return err
}

// Generate stores a random featured color for today unless one exists. The
// boolean reports whether a new color was created.
func (s *Scheduler) Generate() (models.DailyColor, bool, error) {
	today := datastore.NormalizeDate(s.Now())

	existingColor, err := s.DailyColorRepo.GetByDate(today)
	if err == nil && existingColor.ID != 0 {
		log.Printf("Daily color already exists for %s: %s", today.Format("2006-01-02"),
			palette.RGBToHex(existingColor.R, existingColor.G, existingColor.B))
		return existingColor, false, nil
	}
	if _, noRows := err.(datastore.NoRowsError); err != nil && !noRows {
		return models.DailyColor{}, false, err
	}

	dailyColor := models.DailyColor{
		Date:      today,
		R:         s.Intn(256),
		G:         s.Intn(256),
		B:         s.Intn(256),
		CreatedAt: s.Now(),
	}

	savedColor, err := s.DailyColorRepo.Create(dailyColor)
	if err != nil {
		return models.DailyColor{}, false, err
	}

	log.Printf("Successfully generated daily color %s for %s",
		palette.RGBToHex(savedColor.R, savedColor.G, savedColor.B),
		savedColor.Date.Format("2006-01-02"))

	return savedColor, true, nil
}
