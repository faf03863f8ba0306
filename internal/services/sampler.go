package services

import (
	"math/rand/v2"
	"time"

	"greener/internal/domain"
)

const secondsPerDay = 24 * 60 * 60

// RandomSource is the subset of *rand.Rand the sampler needs
type RandomSource interface {
	IntN(n int) int
}

// DateSampler draws commit timestamps uniformly from a date range
type DateSampler struct {
	rng RandomSource
}

// NewDateSampler creates a sampler reading from rng
func NewDateSampler(rng RandomSource) *DateSampler {
	return &DateSampler{rng: rng}
}

// NewSeededDateSampler creates a sampler whose sequence is fully determined by seed
func NewSeededDateSampler(seed int64) *DateSampler {
	return NewDateSampler(rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1)))
}

// ResolveSeed returns seed, or a time based seed when seed is 0
func ResolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// Sample returns a timestamp on a day within r with a uniformly random
// time of day at whole-second resolution
func (s *DateSampler) Sample(r domain.DateRange) time.Time {
	days := max(r.Days(), 0)
	offset := s.rng.IntN(days + 1)
	secs := s.rng.IntN(secondsPerDay)

	y, m, d := r.Start.Date()
	return time.Date(y, m, d+offset, secs/3600, secs%3600/60, secs%60, 0, r.Start.Location())
}
