package skills

// MissPolicy controls what happens to previously persisted skills that do
// not appear in a fresh scan (deleted directory, unmounted volume,
// uninstalled marketplace).
type MissPolicy string

const (
	// MissPolicyDrop removes missing skills so the collection reflects
	// current disk state.
	MissPolicyDrop MissPolicy = "drop"
	// MissPolicyRetain keeps missing skills with their stale marker set, for
	// setups where a scan root may be temporarily unreachable.
	MissPolicyRetain MissPolicy = "retain"
)

// ParseMissPolicy validates a policy string, defaulting to drop.
func ParseMissPolicy(s string) (MissPolicy, bool) {
	switch MissPolicy(s) {
	case MissPolicyRetain:
		return MissPolicyRetain, true
	case MissPolicyDrop, "":
		return MissPolicyDrop, true
	}
	return MissPolicyDrop, false
}

// Merge reconciles a fresh scan with the previously persisted collection.
//
// For every freshly scanned skill, content-derived fields (name,
// description, version, path, content, source, plugin) come from the fresh
// scan, while user-owned state (favorite flag, use count, last-used and
// install timestamps) is preserved from the previous record. Tags come from
// the previous record when it has any, so manual tagging survives rescans;
// otherwise the freshly inferred tags apply.
//
// Merge is a pure function of its inputs: no clock, no randomness. Merging
// a result with itself is a no-op beyond the updatedAt refresh carried by
// the fresh records.
func Merge(fresh, previous []Skill, policy MissPolicy) []Skill {
	prevByID := make(map[string]Skill, len(previous))
	for _, p := range previous {
		prevByID[p.ID] = p
	}

	merged := make([]Skill, 0, len(fresh))
	seen := make(map[string]bool, len(fresh))

	for _, f := range fresh {
		if seen[f.ID] {
			// Two physical directories collapsing to one identity; first wins.
			continue
		}
		seen[f.ID] = true

		prev, ok := prevByID[f.ID]
		if !ok {
			merged = append(merged, f)
			continue
		}

		f.IsFavorite = prev.IsFavorite
		f.UseCount = prev.UseCount
		f.LastUsedAt = prev.LastUsedAt
		f.InstalledAt = prev.InstalledAt
		f.CoverSVG = prev.CoverSVG
		if len(prev.Tags) > 0 {
			f.Tags = prev.Tags
		}
		f.Stale = false
		merged = append(merged, f)
	}

	if policy == MissPolicyRetain {
		for _, p := range previous {
			if seen[p.ID] {
				continue
			}
			p.Stale = true
			merged = append(merged, p)
		}
	}

	return merged
}
