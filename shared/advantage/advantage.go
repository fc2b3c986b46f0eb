// Package advantage holds the single asymmetric modifier granted to a session.
package advantage

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

var ErrUnknownAdvantage = errors.New("unknown advantage")

type Advantage int

const (
	PlayerDoubleJump Advantage = iota
	PlayerDoubleHp
	EnemyDoubleBite
	EnemyDoubleSpeed
)

// All lists every variant in declaration order.
var All = [...]Advantage{PlayerDoubleJump, PlayerDoubleHp, EnemyDoubleBite, EnemyDoubleSpeed}

var names = map[Advantage]string{
	PlayerDoubleJump: "double jump",
	PlayerDoubleHp:   "double hp",
	EnemyDoubleBite:  "double bite",
	EnemyDoubleSpeed: "double speed",
}

func (a Advantage) String() string {
	if n, ok := names[a]; ok {
		return n
	}
	return fmt.Sprintf("Advantage(%d)", int(a))
}

// Beneficial reports whether the advantage favors the player.
func (a Advantage) Beneficial() bool {
	return a == PlayerDoubleJump || a == PlayerDoubleHp
}

// Choose picks one of the four variants with equal probability.
func Choose(r *rand.Rand) Advantage {
	return All[r.IntN(len(All))]
}

// Parse accepts either the display name ("double bite") or the
// identifier form ("EnemyDoubleBite", "enemy-double-bite").
func Parse(name string) (Advantage, error) {
	key := normalize(name)
	for _, a := range All {
		if key == normalize(a.String()) || key == normalize(identifiers[a]) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAdvantage, name)
}

var identifiers = map[Advantage]string{
	PlayerDoubleJump: "PlayerDoubleJump",
	PlayerDoubleHp:   "PlayerDoubleHp",
	EnemyDoubleBite:  "EnemyDoubleBite",
	EnemyDoubleSpeed: "EnemyDoubleSpeed",
}

func normalize(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}
