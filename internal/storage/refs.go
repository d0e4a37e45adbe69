package storage

import "encoding/json"

// storageIDKey is the one property name the reference walk looks for.
// Config shapes may nest it at any depth, in objects or arrays.
const storageIDKey = "storageId"

// ExtractStorageIDs parses a JSON-encoded component config and collects
// every string value stored under a key literally named "storageId",
// however deeply nested. Unparsable or empty input yields an empty list;
// the walk never fails.
func ExtractStorageIDs(configJSON string) []string {
	if configJSON == "" {
		return nil
	}

	var parsed interface{}
	if err := json.Unmarshal([]byte(configJSON), &parsed); err != nil {
		return nil
	}

	var ids []string
	collectStorageIDs(parsed, &ids)
	return ids
}

func collectStorageIDs(value interface{}, ids *[]string) {
	switch v := value.(type) {
	case map[string]interface{}:
		for key, child := range v {
			if key == storageIDKey {
				if s, ok := child.(string); ok {
					*ids = append(*ids, s)
					continue
				}
			}
			collectStorageIDs(child, ids)
		}
	case []interface{}:
		for _, child := range v {
			collectStorageIDs(child, ids)
		}
	}
}

// DiffStorageIDs returns the ids present in old but absent from new: the
// blobs orphaned by replacing one config with another.
func DiffStorageIDs(oldIDs, newIDs []string) []string {
	kept := make(map[string]struct{}, len(newIDs))
	for _, id := range newIDs {
		kept[id] = struct{}{}
	}

	var orphaned []string
	seen := make(map[string]struct{}, len(oldIDs))
	for _, id := range oldIDs {
		if _, ok := kept[id]; ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		orphaned = append(orphaned, id)
	}
	return orphaned
}
