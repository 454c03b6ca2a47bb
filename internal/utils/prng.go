package utils

import (
	"math/rand"
	"time"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей симуляции.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a float in [lo, lo+span).
func (s *PRNGService) Range(lo, span float64) float64 {
	return lo + s.rng.Float64()*span
}

// Pick returns a uniformly chosen element, or "" for an empty slice.
func (s *PRNGService) Pick(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[s.rng.Intn(len(options))]
}
