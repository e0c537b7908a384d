package cache

// lifoPolicy evicts the most recently inserted key. Lookups do not affect
// its order: only insertion recency matters.
type lifoPolicy struct {
	order []string // insertion order, oldest first
}

// NewLIFO returns a policy that evicts the most recently inserted key.
func NewLIFO() Policy {
	return &lifoPolicy{}
}

func (p *lifoPolicy) Name() string { return string(LIFO) }

func (p *lifoPolicy) OnAccess(string) {}

func (p *lifoPolicy) OnPut(key string) {
	p.order = removeKey(p.order, key)
	p.order = append(p.order, key)
}

func (p *lifoPolicy) Victim(resident func(string) bool) (string, bool) {
	for n := len(p.order); n > 0; n = len(p.order) {
		key := p.order[n-1]
		p.order = p.order[:n-1]
		if resident(key) {
			return key, true
		}
		// Stale entry from a prior removal; discard and keep scanning.
	}
	return "", false
}
