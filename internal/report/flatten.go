// Package report builds the nested influencer-activity report trees out of
// flat, independently fetched collections. The store performs no joins;
// everything here is pure, in-memory grouping over pre-fetched rows.
package report

// Flatten collapses a nested record into a single-level map. Nested
// records recurse under underscore-joined keys ("engagement" ->
// "engagement_likes"); arrays and scalars, including nil, are copied
// verbatim. Flatten is idempotent on already-flat input.
func Flatten(record map[string]interface{}, prefix string) map[string]interface{} {
	out := make(map[string]interface{}, len(record))
	for key, value := range record {
		prefixed := key
		if prefix != "" {
			prefixed = prefix + "_" + key
		}
		if nested, ok := value.(map[string]interface{}); ok && nested != nil {
			for k, v := range Flatten(nested, prefixed) {
				out[k] = v
			}
			continue
		}
		out[prefixed] = value
	}
	return out
}
