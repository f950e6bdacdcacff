package ccsplit

import "github.com/katalvlaran/huayno-cc/nbsys"

// MaxPairTimestep returns the largest pairwise critical time step across
// all distinct pairs in s. It backs the optional CC2_SPLIT_SHORTCUTS
// behavior (disabled by default; see config.Config.SplitShortcuts), which
// subdivides a pivot step h that exceeds this value before ever calling
// Split.
func MaxPairTimestep(s nbsys.View, dir int, ts TimestepFunc) float64 {
	var maxTS float64
	for i := 0; i < s.N-1; i++ {
		for j := i + 1; j < s.N; j++ {
			if v := ts(s.At(i), s.At(j), dir); v >= maxTS {
				maxTS = v
			}
		}
	}
	return maxTS
}
