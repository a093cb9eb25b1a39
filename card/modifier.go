package card

// Enhancement 强化：每张牌至多一个
type Enhancement byte

const (
	EnhancementNone Enhancement = iota
	EnhancementBonus
	EnhancementMult
	EnhancementWild
	EnhancementGlass
	EnhancementSteel
	EnhancementStone
	EnhancementGold
	EnhancementLucky
)

var enhancementNames = map[Enhancement]string{
	EnhancementNone:  "none",
	EnhancementBonus: "bonus",
	EnhancementMult:  "mult",
	EnhancementWild:  "wild",
	EnhancementGlass: "glass",
	EnhancementSteel: "steel",
	EnhancementStone: "stone",
	EnhancementGold:  "gold",
	EnhancementLucky: "lucky",
}

func (e Enhancement) String() string {
	if s, ok := enhancementNames[e]; ok {
		return s
	}
	return "?"
}

// Edition 版本：每张牌恰好一个，默认 Base
type Edition byte

const (
	EditionBase Edition = iota
	EditionFoil
	EditionHolographic
	EditionPolychrome
	EditionNegative
)

var editionNames = map[Edition]string{
	EditionBase:        "base",
	EditionFoil:        "foil",
	EditionHolographic: "holographic",
	EditionPolychrome:  "polychrome",
	EditionNegative:    "negative",
}

func (e Edition) String() string {
	if s, ok := editionNames[e]; ok {
		return s
	}
	return "?"
}

// Seal 蜡封：每张牌至多一个
type Seal byte

const (
	SealNone Seal = iota
	SealRed
	SealBlue
	SealPurple
	SealGold
)

var sealNames = map[Seal]string{
	SealNone:   "none",
	SealRed:    "red",
	SealBlue:   "blue",
	SealPurple: "purple",
	SealGold:   "gold",
}

func (s Seal) String() string {
	if n, ok := sealNames[s]; ok {
		return n
	}
	return "?"
}
