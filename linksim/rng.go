package linksim

import "time"

// masterSeed resolves the sweep's base seed. Policy: seed == 0 means the
// caller wants fresh entropy; any other value is used verbatim so the
// whole sweep replays exactly.
func masterSeed(seed uint64) uint64 {
	if seed == 0 {
		return uint64(time.Now().UnixNano())
	}

	return seed
}

// deriveSeed mixes the master seed and a pass index into an independent
// stream seed. The SplitMix64 finalizer gives strong bit diffusion, so
// consecutive indices produce uncorrelated noise streams and parallel
// passes never share a source.
//
// Complexity: O(1).
func deriveSeed(master, stream uint64) uint64 {
	x := master ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}
