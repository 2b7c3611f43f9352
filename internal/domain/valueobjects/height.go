package valueobjects

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var ErrInvalidHeight = errors.New("invalid height")

// Faixa plausível de altura de atletas, em polegadas
const (
	MinHeightInches = 48
	MaxHeightInches = 96
)

var feetInchesPattern = regexp.MustCompile(`^(\d)\s*(?:'|ft|-|\s)\s*(\d{1,2})?\s*(?:"|in|'')?$`)

// ParseHeightInches aceita polegadas ("74") ou pés/polegadas ("6'2\"", "6-2", "6 2")
func ParseHeightInches(value string) (int, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return 0, ErrInvalidHeight
	}

	if n, err := strconv.Atoi(value); err == nil {
		return checkHeight(n)
	}

	m := feetInchesPattern.FindStringSubmatch(value)
	if m == nil {
		return 0, ErrInvalidHeight
	}

	feet, _ := strconv.Atoi(m[1])
	inches := 0
	if m[2] != "" {
		inches, _ = strconv.Atoi(m[2])
	}
	if inches > 11 {
		return 0, ErrInvalidHeight
	}

	return checkHeight(feet*12 + inches)
}

// FormatHeight formata polegadas como 6'2"
func FormatHeight(inches int) string {
	return strconv.Itoa(inches/12) + "'" + strconv.Itoa(inches%12) + `"`
}

func checkHeight(n int) (int, error) {
	if n < MinHeightInches || n > MaxHeightInches {
		return 0, ErrInvalidHeight
	}
	return n, nil
}
