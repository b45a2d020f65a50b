package dice

import (
	"strconv"
	"strings"
)

const (
	// Count is the number of dice in a check
	Count = 3

	// Sides is the number of faces per die
	Sides = 6

	// MinTotal is the lowest possible sum of a check
	MinTotal = Count

	// MaxTotal is the highest possible sum of a check
	MaxTotal = Count * Sides
)

// ValidFace reports whether v is a face of a six-sided die
func ValidFace(v int) bool {
	return v >= 1 && v <= Sides
}

// ValidTotal reports whether v is a possible 3d6 sum
func ValidTotal(v int) bool {
	return v >= MinTotal && v <= MaxTotal
}

// ParseFaces parses a comma separated triple such as "4,5,6".
// It returns false unless there are exactly three valid faces.
func ParseFaces(s string) ([]int, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != Count {
		return nil, false
	}

	faces := make([]int, 0, Count)
	for _, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || !ValidFace(v) {
			return nil, false
		}
		faces = append(faces, v)
	}

	return faces, true
}
