package cache

import "container/list"

// lruPolicy evicts the least recently touched key. Both lookups and inserts
// move a key to the hot end, so recency of any touch determines survival.
type lruPolicy struct {
	order    *list.List               // front = hot, back = cold
	elements map[string]*list.Element // key → node, for O(1) promotion
}

// NewLRU returns a policy that evicts the least recently touched key.
func NewLRU() Policy {
	return &lruPolicy{
		order:    list.New(),
		elements: make(map[string]*list.Element),
	}
}

func (p *lruPolicy) Name() string { return string(LRU) }

func (p *lruPolicy) OnAccess(key string) { p.touch(key) }

func (p *lruPolicy) OnPut(key string) { p.touch(key) }

func (p *lruPolicy) touch(key string) {
	if el, ok := p.elements[key]; ok {
		p.order.MoveToFront(el)
		return
	}
	p.elements[key] = p.order.PushFront(key)
}

func (p *lruPolicy) Victim(resident func(string) bool) (string, bool) {
	for el := p.order.Back(); el != nil; el = p.order.Back() {
		key := el.Value.(string)
		p.order.Remove(el)
		delete(p.elements, key)
		if resident(key) {
			return key, true
		}
	}
	return "", false
}
