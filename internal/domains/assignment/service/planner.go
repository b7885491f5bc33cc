package service

import (
	"sort"

	catalog "tavola/internal/domains/catalog/model"
)

// sortByCapacity orders tables capacity-ascending so the smallest
// sufficient option is always tried first. Name and id break ties, which
// keeps the whole search deterministic for a fixed catalog.
func sortByCapacity(tables []catalog.Table) {
	sort.Slice(tables, func(i, j int) bool {
		if tables[i].Capacity != tables[j].Capacity {
			return tables[i].Capacity < tables[j].Capacity
		}

		if tables[i].Name != tables[j].Name {
			return tables[i].Name < tables[j].Name
		}

		return tables[i].ID < tables[j].ID
	})
}

// chooseCombination picks the first subset of at most maxTables tables
// whose summed capacity reaches target without exceeding maxSum. Subset
// sizes are tried smallest-first, and within a size the capacity-ascending
// order of the input decides which combination wins, so fewer and smaller
// tables always beat more and bigger ones. Returns nil when no subset of
// the allowed size fits.
func chooseCombination(tables []catalog.Table, target, maxSum, maxTables int) []catalog.Table {
	if target <= 0 || maxTables <= 0 {
		return nil
	}

	sorted := make([]catalog.Table, len(tables))
	copy(sorted, tables)
	sortByCapacity(sorted)

	if maxTables > len(sorted) {
		maxTables = len(sorted)
	}

	for size := 1; size <= maxTables; size++ {
		if combo := searchCombination(sorted, nil, 0, 0, size, target, maxSum); combo != nil {
			return combo
		}
	}

	return nil
}

func searchCombination(tables, picked []catalog.Table, start, sum, size, target, maxSum int) []catalog.Table {
	if len(picked) == size {
		if sum >= target && sum <= maxSum {
			result := make([]catalog.Table, size)
			copy(result, picked)

			return result
		}

		return nil
	}

	for i := start; i < len(tables); i++ {
		next := sum + tables[i].Capacity
		if next > maxSum {
			// Input is capacity-ascending, every later pick only grows.
			return nil
		}

		if combo := searchCombination(tables, append(picked, tables[i]), i+1, next, size, target, maxSum); combo != nil {
			return combo
		}
	}

	return nil
}
