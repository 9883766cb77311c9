package handlers

import "strconv"

// parseID converts a path parameter into an entity id. Non-numeric
// values never match a resource, so callers treat failure as 404.
func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
