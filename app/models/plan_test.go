package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceZoneIsMarketZone(t *testing.T) {
	for _, z := range AllPriceZones() {
		assert.True(t, z.IsMarketZone(), "zone %s", z)
	}
	assert.False(t, ZoneAll.IsMarketZone())
	assert.False(t, PriceZone("NO6").IsMarketZone())
	assert.False(t, PriceZone("").IsMarketZone())
}

func TestPriceZoneDisplayName(t *testing.T) {
	assert.Equal(t, "NO1 – Øst-Norge", ZoneNO1.DisplayName())
	assert.Equal(t, "Alle soner", ZoneAll.DisplayName())
	assert.Equal(t, "XX", PriceZone("XX").DisplayName())
}
