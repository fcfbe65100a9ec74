package memory

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// paginate applies limit/offset to an already-sorted slice.
// A zero limit means "no limit".
func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

// clampProgress bounds a progress/score percentage to [0, 100].
func clampProgress(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func marshalSkills(skills []string) datatypes.JSON {
	raw, err := json.Marshal(skills)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(raw)
}
