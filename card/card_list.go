package card

type CardList []*Card

func (ds *CardList) Init(cards []*Card) {
	*ds = make([]*Card, len(cards))
	copy(*ds, cards)
}

// Count 获取总牌数
func (ds CardList) Count() int {
	return len(ds)
}

func (ds *CardList) Add(cards ...*Card) {
	*ds = append(*ds, cards...)
}

func (ds CardList) Contains(c *Card) bool {
	for _, cc := range ds {
		if cc.ID == c.ID {
			return true
		}
	}
	return false
}

// PopFront removes up to size cards from the front. Returns fewer when the
// list runs out; never fails.
func (ds *CardList) PopFront(size int) []*Card {
	if size > ds.Count() {
		size = ds.Count()
	}
	cards := make([]*Card, size)
	copy(cards, (*ds)[:size])
	*ds = (*ds)[size:]
	return cards
}

func (ds CardList) Strings() []string {
	out := make([]string, 0, len(ds))
	for _, c := range ds {
		out = append(out, c.String())
	}
	return out
}
