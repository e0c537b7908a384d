package cache

// fifoPolicy evicts the least recently inserted key. It keeps the same
// bookkeeping as LIFO but selects victims from the front of the queue.
type fifoPolicy struct {
	order []string // insertion order, oldest first
}

// NewFIFO returns a policy that evicts the least recently inserted key.
func NewFIFO() Policy {
	return &fifoPolicy{}
}

func (p *fifoPolicy) Name() string { return string(FIFO) }

func (p *fifoPolicy) OnAccess(string) {}

func (p *fifoPolicy) OnPut(key string) {
	p.order = removeKey(p.order, key)
	p.order = append(p.order, key)
}

func (p *fifoPolicy) Victim(resident func(string) bool) (string, bool) {
	for len(p.order) > 0 {
		key := p.order[0]
		p.order = p.order[1:]
		if resident(key) {
			return key, true
		}
	}
	return "", false
}
