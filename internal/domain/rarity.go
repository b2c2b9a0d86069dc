package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/PaperAPI_Go/internal/textcolor"
)

// ItemRarity determines the default colour of an item's name.
// Values are ordered from least rare to most rare.
type ItemRarity uint8

const (
	RarityCommon ItemRarity = iota
	RarityUncommon
	RarityRare
	RarityEpic
)

type rarityInfo struct {
	name  string
	color textcolor.NamedTextColor
}

// rarityTable is indexed by ItemRarity and never modified
var rarityTable = [...]rarityInfo{
	RarityCommon:   {"COMMON", textcolor.White},
	RarityUncommon: {"UNCOMMON", textcolor.Yellow},
	RarityRare:     {"RARE", textcolor.Aqua},
	RarityEpic:     {"EPIC", textcolor.LightPurple},
}

// ItemRarities returns every rarity in increasing order
func ItemRarities() []ItemRarity {
	return []ItemRarity{RarityCommon, RarityUncommon, RarityRare, RarityEpic}
}

// ParseItemRarity resolves a rarity by name, ignoring case
func ParseItemRarity(s string) (ItemRarity, error) {
	want := strings.ToUpper(strings.TrimSpace(s))
	for i, info := range rarityTable {
		if info.name == want {
			return ItemRarity(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRarity, s)
}

// Valid reports whether r is one of the declared rarities
func (r ItemRarity) Valid() bool {
	return int(r) < len(rarityTable)
}

// Color returns the colour associated with this rarity
func (r ItemRarity) Color() textcolor.TextColor {
	return r.NamedColor()
}

// NamedColor is Color without the interface indirection.
// Out-of-range values fall back to the common colour.
func (r ItemRarity) NamedColor() textcolor.NamedTextColor {
	if !r.Valid() {
		return rarityTable[RarityCommon].color
	}
	return rarityTable[r].color
}

func (r ItemRarity) String() string {
	if !r.Valid() {
		return fmt.Sprintf("ItemRarity(%d)", uint8(r))
	}
	return rarityTable[r].name
}

// DisplayName returns the rarity name in title case, e.g. "Uncommon"
func (r ItemRarity) DisplayName() string {
	return cases.Title(language.English).String(strings.ToLower(r.String()))
}

// Upgrade returns the next rarer tier, staying at Epic
func (r ItemRarity) Upgrade() ItemRarity {
	if r >= RarityEpic {
		return RarityEpic
	}
	return r + 1
}

func (r ItemRarity) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRarity, uint8(r))
	}
	return []byte(r.String()), nil
}

func (r *ItemRarity) UnmarshalText(text []byte) error {
	parsed, err := ParseItemRarity(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
