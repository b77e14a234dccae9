package number

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
)

// Sales numbers (checkout and order) are random 12-digit tokens formatted as
// four dash-separated 3-digit groups, e.g. "482-019-337-204". Collisions are
// possible; callers must retry generation against a uniqueness constraint.

var Pattern = regexp.MustCompile(`^\d{3}-\d{3}-\d{3}-\d{3}$`)

const (
	min12 = 100_000_000_000
	span  = 900_000_000_000
)

func NewRandom() string {
	n, err := rand.Int(rand.Reader, big.NewInt(span))
	if err != nil {
		// crypto/rand only fails when the platform entropy source is broken
		panic(err)
	}
	return Format(n.Int64() + min12)
}

func Format(n int64) string {
	return fmt.Sprintf("%03d-%03d-%03d-%03d", n/1_000_000_000, (n/1_000_000)%1000, (n/1000)%1000, n%1000)
}

func Valid(s string) bool {
	return Pattern.MatchString(s)
}
