package generator

import (
	"hash/fnv"
	"strconv"
	"time"
)

// Mode selects how the seed for a generation run is derived.
type Mode int

const (
	// ModeStable seeds on the reminder id, so repeated calls agree.
	ModeStable Mode = iota
	// ModeRefresh seeds on the current time, so every call differs.
	ModeRefresh
)

// StableSeed derives a non-negative seed from the last 8 characters of id.
// Hex suffixes (uuids) are parsed directly; anything else is hashed.
func StableSeed(id string) int64 {
	tail := id
	if len(tail) > 8 {
		tail = tail[len(tail)-8:]
	}
	if v, err := strconv.ParseUint(tail, 16, 64); err == nil {
		return int64(v)
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(tail))
	return int64(h.Sum32())
}

// RefreshSeed derives a seed from now in milliseconds.
func RefreshSeed(now time.Time) int64 {
	ms := now.UnixMilli()
	if ms < 0 {
		return -ms
	}
	return ms
}

// SeedFor picks the seed for id according to mode.
func SeedFor(id string, mode Mode, now time.Time) int64 {
	if mode == ModeRefresh {
		return RefreshSeed(now)
	}
	return StableSeed(id)
}

func seedIndex(seed int64, n int) int {
	if n <= 0 {
		return 0
	}
	return int(seed % int64(n))
}

// shuffle permutes list in place. The swap index is (seed+i) % (i+1), which
// is deterministic for a given seed but not uniform.
func shuffle(list []string, seed int64) {
	for i := len(list) - 1; i > 0; i-- {
		j := int((seed + int64(i)) % int64(i+1))
		list[i], list[j] = list[j], list[i]
	}
}
