package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PaperAPI_Go/internal/textcolor"
)

func TestItemRarity_Color(t *testing.T) {
	tests := []struct {
		rarity ItemRarity
		want   textcolor.NamedTextColor
	}{
		{RarityCommon, textcolor.White},
		{RarityUncommon, textcolor.Yellow},
		{RarityRare, textcolor.Aqua},
		{RarityEpic, textcolor.LightPurple},
	}

	for _, tt := range tests {
		t.Run(tt.rarity.String(), func(t *testing.T) {
			first := tt.rarity.Color()
			assert.Equal(t, tt.want, first)
			assert.Equal(t, tt.want.Hex(), first.Hex())
			// repeated calls are stable
			for i := 0; i < 3; i++ {
				assert.Equal(t, first, tt.rarity.Color())
			}
		})
	}
}

func TestItemRarity_CommonWhiteEpicLightPurple(t *testing.T) {
	assert.Equal(t, "#ffffff", RarityCommon.Color().Hex())
	assert.Equal(t, "#ff55ff", RarityEpic.Color().Hex())
}

func TestItemRarity_Order(t *testing.T) {
	all := ItemRarities()
	require.Len(t, all, 4)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1], all[i])
	}
	assert.Equal(t, RarityCommon, all[0])
	assert.Equal(t, RarityEpic, all[3])
}

func TestItemRarity_Names(t *testing.T) {
	assert.Equal(t, "UNCOMMON", RarityUncommon.String())
	assert.Equal(t, "Uncommon", RarityUncommon.DisplayName())
	assert.Equal(t, "Epic", RarityEpic.DisplayName())
	assert.Equal(t, "ItemRarity(9)", ItemRarity(9).String())
}

func TestParseItemRarity(t *testing.T) {
	r, err := ParseItemRarity(" rare ")
	require.NoError(t, err)
	assert.Equal(t, RarityRare, r)

	_, err = ParseItemRarity("legendary")
	assert.True(t, errors.Is(err, ErrUnknownRarity))
	assert.Contains(t, err.Error(), ErrMsgUnknownRarity)
}

func TestItemRarity_Upgrade(t *testing.T) {
	assert.Equal(t, RarityUncommon, RarityCommon.Upgrade())
	assert.Equal(t, RarityRare, RarityUncommon.Upgrade())
	assert.Equal(t, RarityEpic, RarityRare.Upgrade())
	assert.Equal(t, RarityEpic, RarityEpic.Upgrade())
}

func TestItemRarity_InvalidFallsBackToCommonColor(t *testing.T) {
	r := ItemRarity(42)
	assert.False(t, r.Valid())
	assert.Equal(t, textcolor.White, r.NamedColor())
	_, err := r.MarshalText()
	assert.ErrorIs(t, err, ErrUnknownRarity)
}

func TestItemRarity_JSON(t *testing.T) {
	type wrapper struct {
		Rarity ItemRarity `json:"rarity"`
	}

	data, err := json.Marshal(wrapper{Rarity: RarityEpic})
	require.NoError(t, err)
	assert.JSONEq(t, `{"rarity":"EPIC"}`, string(data))

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"rarity":"uncommon"}`), &w))
	assert.Equal(t, RarityUncommon, w.Rarity)

	assert.Error(t, json.Unmarshal([]byte(`{"rarity":"mythic"}`), &w))
}
