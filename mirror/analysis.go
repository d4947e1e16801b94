package mirror

import "sort"

// HitCounts counts how many observations ended on each object.
func HitCounts(observations []Observation) map[string]int {
	counts := map[string]int{}
	for _, obs := range observations {
		if id := obs.Terminal(); id != "" {
			counts[id]++
		}
	}
	return counts
}

// PrimaryImages returns the first mirror image of every observation that ended on objectID.
//
// Observations that reached the object directly, without reflecting, contribute nothing.
func PrimaryImages(observations []Observation, objectID string) []MirrorImage {
	var images []MirrorImage
	for _, obs := range observations {
		if obs.Terminal() != objectID || len(obs.Images) == 0 {
			continue
		}
		images = append(images, obs.Images[0])
	}
	return images
}

// SortedIDs returns the keys of counts ordered by descending count, then by ID.
func SortedIDs(counts map[string]int) []string {
	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if counts[ids[i]] != counts[ids[j]] {
			return counts[ids[i]] > counts[ids[j]]
		}
		return ids[i] < ids[j]
	})
	return ids
}
