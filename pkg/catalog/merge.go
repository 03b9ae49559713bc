package catalog

// Merge reconciles locally authored records with the remote catalog into
// one canonical, identity-deduplicated list.
//
// The local sequence is expected most-recent-first; the remote sequence is
// taken in service order. Records are concatenated local-first and
// deduplicated by ID keeping the first occurrence, so a local record always
// wins over a remote record sharing its ID, and earlier local records win
// over later ones. The output preserves concatenation order.
//
// This is the local-first rule: the override store is the durable source of
// truth for anything the user has touched; the remote catalog is
// best-effort enrichment. Callers degrade to an empty remote slice when the
// service is unreachable.
func Merge(local, remote []Product) []Product {
	merged := make([]Product, 0, len(local)+len(remote))
	seen := make(map[int64]struct{}, len(local)+len(remote))

	for _, p := range local {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		merged = append(merged, p)
	}

	for _, p := range remote {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		merged = append(merged, p)
	}

	return merged
}
