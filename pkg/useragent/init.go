package useragent

import "sort"

func init() {
	// Sort patterns by orderHint to ensure correct detection order
	sort.Slice(browserPatterns, func(i, j int) bool {
		return browserPatterns[i].orderHint < browserPatterns[j].orderHint
	})
}
