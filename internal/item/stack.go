package item

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/PaperAPI_Go/internal/domain"
	"github.com/osse101/PaperAPI_Go/internal/textcolor"
)

// Stack is an amount of one item with its presentation data
type Stack struct {
	Material   string
	Amount     int
	CustomName string
	// NameColor overrides the rarity colour when set
	NameColor *textcolor.RGB
	Rarity    domain.ItemRarity
	Enchanted bool
}

// EffectiveRarity is the rarity shown to players. Enchanting bumps
// common and uncommon items to rare, and rare items to epic.
func (s Stack) EffectiveRarity() domain.ItemRarity {
	if !s.Enchanted {
		return s.Rarity
	}
	switch s.Rarity {
	case domain.RarityCommon, domain.RarityUncommon:
		return domain.RarityRare
	default:
		return s.Rarity.Upgrade()
	}
}

// DisplayNameColor returns the colour the item name is drawn in
func (s Stack) DisplayNameColor() textcolor.TextColor {
	if s.NameColor != nil {
		return *s.NameColor
	}
	return s.EffectiveRarity().Color()
}

// DisplayName returns the custom name or the title-cased material
func (s Stack) DisplayName() string {
	if s.CustomName != "" {
		return s.CustomName
	}
	return cases.Title(language.English).String(strings.ReplaceAll(s.Material, "_", " "))
}

// LegacyName formats the name with a § colour code for clients without RGB support
func (s Stack) LegacyName() string {
	code := textcolor.Nearest(s.DisplayNameColor()).LegacyCode()
	return "§" + string(code) + s.DisplayName()
}
