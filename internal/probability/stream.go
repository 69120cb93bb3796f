// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

package probability

import "math/rand/v2"

// Stream identifiers keep the random sequences of different generator stages
// apart even when they share a seed and unit coordinates.
const (
	StreamUsers uint64 = iota + 1
	StreamPreferences
	StreamBehavior
)

// NewRand returns a PCG generator for the unit identified by coords under
// seed. The same (seed, coords) always yields the same sequence, independent
// of which goroutine consumes it or in what order units are processed.
func NewRand(seed uint64, coords ...uint64) *rand.Rand {
	stream := uint64(0x9e3779b97f4a7c15)
	for _, c := range coords {
		stream = splitmix64(stream ^ c)
	}
	return rand.New(rand.NewPCG(seed, stream))
}

func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
