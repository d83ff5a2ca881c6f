package core

import "sort"

// RecruitmentPool is the set of card templates currently available for
// recruitment. It grows monotonically: building effects unlock recruits and
// nothing ever locks them again.
type RecruitmentPool struct {
	ids map[string]struct{}
}

// NewRecruitmentPool creates an empty pool.
func NewRecruitmentPool() *RecruitmentPool {
	return &RecruitmentPool{ids: make(map[string]struct{})}
}

// MakeRecruitable adds template ids to the pool. Duplicates are a no-op.
// Returns the ids that were newly added.
func (p *RecruitmentPool) MakeRecruitable(ids ...string) []string {
	var added []string
	for _, id := range ids {
		if _, ok := p.ids[id]; ok {
			continue
		}
		p.ids[id] = struct{}{}
		added = append(added, id)
	}
	return added
}

// IsRecruitable reports whether a template id has been unlocked.
func (p *RecruitmentPool) IsRecruitable(id string) bool {
	_, ok := p.ids[id]
	return ok
}

// List returns a sorted snapshot of the unlocked template ids.
func (p *RecruitmentPool) List() []string {
	out := make([]string, 0, len(p.ids))
	for id := range p.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Size returns the number of unlocked templates.
func (p *RecruitmentPool) Size() int {
	return len(p.ids)
}
