package textcolor

import (
	"math"

	lru "github.com/hashicorp/golang-lru/v2"
)

var nearestCache = mustNearestCache(DefaultNearestCacheSize)

func mustNearestCache(size int) *lru.Cache[uint32, NamedTextColor] {
	c, err := lru.New[uint32, NamedTextColor](size)
	if err != nil {
		panic(err)
	}
	return c
}

// Nearest returns the named colour perceptually closest to c (CIE L*a*b* distance).
// Exact matches return themselves.
func Nearest(c TextColor) NamedTextColor {
	if named, ok := c.(NamedTextColor); ok && named.Valid() {
		return named
	}

	v := c.Value() & 0xffffff
	if cached, ok := nearestCache.Get(v); ok {
		return cached
	}

	target := toColorful(v)
	best := White
	bestDist := math.MaxFloat64
	for i, info := range namedColorTable {
		d := target.DistanceLab(toColorful(info.value))
		if d < bestDist {
			bestDist = d
			best = NamedTextColor(i)
		}
	}

	nearestCache.Add(v, best)
	return best
}

// ResizeNearestCache changes how many Nearest results are memoised.
// Non-positive sizes are ignored.
func ResizeNearestCache(size int) {
	if size <= 0 {
		return
	}
	nearestCache.Resize(size)
}
