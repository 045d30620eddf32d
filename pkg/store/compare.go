package store

import (
	"strings"

	"golang.org/x/exp/constraints"
)

type LessFunc[K any] func(k1, k2 K) bool

func IntegerLessFunc[K constraints.Integer](k1, k2 K) bool {
	return k1 < k2
}

func StringLessFunc(k1, k2 string) bool {
	return strings.Compare(k1, k2) < 0
}
