// SPDX-License-Identifier: EPL-2.0

// Package clip partitions a decoded audio buffer into fixed-duration
// clips.
//
// Partition computes clip boundaries from the buffer length, its sample
// rate and the requested clip duration:
//
//	seq, err := clip.Partition(buffer, 10)
//	for i, samples := range seq.All() {
//	    // samples always has exactly seq.SamplesPerClip() values
//	}
//
// The final clip is zero-padded to the uniform length when the buffer is
// not an exact multiple of the clip size. Partitioning is pure: the same
// buffer, rate and duration always produce the same clips, and a
// Sequence can be iterated repeatedly.
package clip
