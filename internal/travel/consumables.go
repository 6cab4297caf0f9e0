package travel

import apperrors "github.com/louisbranch/wayfarer/internal/platform/errors"

// Consumable identifies a one-use preparation the party can buy with
// preparedness pool points or coin before setting out.
type Consumable string

const (
	ConsumableCampSupplies         Consumable = "campSupplies"
	ConsumableSpirits              Consumable = "spirits"
	ConsumablePreservatives        Consumable = "preservatives"
	ConsumableSurvivalTools        Consumable = "survivalTools"
	ConsumableMedicinalHerbs       Consumable = "medicinalHerbs"
	ConsumableSpecializedEquipment Consumable = "specializedEquipment"
	ConsumableUpdatedMaps          Consumable = "updatedMaps"
	ConsumableMeticulousPlanning   Consumable = "meticulousPlanning"
)

// ErrUnknownConsumable indicates a consumable key outside the catalog.
var ErrUnknownConsumable = apperrors.New(apperrors.CodeTravelUnknownResource, "unknown consumable")

// ppCosts is the preparedness-pool price of each consumable.
var ppCosts = map[Consumable]int{
	ConsumableCampSupplies:         1,
	ConsumableSpirits:              1,
	ConsumablePreservatives:        1,
	ConsumableSurvivalTools:        1,
	ConsumableMedicinalHerbs:       1,
	ConsumableSpecializedEquipment: 2,
	ConsumableUpdatedMaps:          2,
	ConsumableMeticulousPlanning:   5,
}

// PoolCost returns the preparedness-pool cost of a consumable.
func PoolCost(c Consumable) (int, error) {
	cost, ok := ppCosts[c]
	if !ok {
		return 0, ErrUnknownConsumable
	}
	return cost, nil
}

// Price is a coin amount in gold crowns, silver shillings and brass pennies.
type Price struct {
	GC int `json:"gc"`
	SS int `json:"ss"`
	BP int `json:"bp"`
}

// Normalize carries pennies into shillings (12 bp = 1 ss) and shillings
// into crowns (20 ss = 1 gc).
func (p Price) Normalize() Price {
	p.SS += p.BP / 12
	p.BP %= 12
	p.GC += p.SS / 20
	p.SS %= 20
	return p
}

// Add returns the normalized sum of two prices.
func (p Price) Add(other Price) Price {
	return Price{GC: p.GC + other.GC, SS: p.SS + other.SS, BP: p.BP + other.BP}.Normalize()
}

// marketPrices is the silver-shilling market price of each consumable.
var marketPrices = map[Consumable]Price{
	ConsumableCampSupplies:         {SS: 1},
	ConsumableSpirits:              {SS: 1},
	ConsumablePreservatives:        {SS: 5},
	ConsumableSurvivalTools:        {SS: 4},
	ConsumableMedicinalHerbs:       {SS: 3},
	ConsumableSpecializedEquipment: {SS: 10},
	ConsumableUpdatedMaps:          {SS: 10},
	ConsumableMeticulousPlanning:   {GC: 1},
}

// MarketPrice returns the coin price of one consumable.
func MarketPrice(c Consumable) (Price, error) {
	price, ok := marketPrices[c]
	if !ok {
		return Price{}, ErrUnknownConsumable
	}
	return price, nil
}

// ProvisionsPrice is the coin price of provisions for a whole party day:
// 1 silver shilling per member.
func ProvisionsPrice(partySize int) Price {
	if partySize < 0 {
		partySize = 0
	}
	return Price{SS: partySize}.Normalize()
}

// MountProvisionsPrice is the coin price of one day of mount feed.
func MountProvisionsPrice() Price {
	return Price{BP: 6}
}

// ProvisionPoolCost is the preparedness-pool price of one day of
// provisions or mount provisions during preparation.
const ProvisionPoolCost = 1

// Consumables tracks how many of each preparation the party holds.
// Meticulous planning is a flag and never stocks above one.
type Consumables map[Consumable]int

// Held reports whether at least one of the consumable is stocked.
func (c Consumables) Held(key Consumable) bool {
	return c[key] > 0
}

// ResetRefund computes the preparedness-pool points returned when the
// party resets its preparations, refunding every stocked consumable at
// count times its pool cost.
func (c Consumables) ResetRefund() int {
	refund := 0
	for key, count := range c {
		if count <= 0 {
			continue
		}
		if cost, ok := ppCosts[key]; ok {
			refund += count * cost
		}
	}
	return refund
}
