package travel

// DangerFactors are the boolean journey descriptors feeding the danger rating.
type DangerFactors struct {
	Stealthy           bool `json:"stealthy"`
	FastLight          bool `json:"fastLight"`
	Undeveloped        bool `json:"undeveloped"`
	DifficultTerrain   bool `json:"difficultTerrain"`
	MinimalAuthority   bool `json:"minimalAuthority"`
	ChallengingClimate bool `json:"challengingClimate"`
	HostileCreatures   bool `json:"hostileCreatures"`
	LocalBanditry      bool `json:"localBanditry"`
	HazardousTerrain   bool `json:"hazardousTerrain"`
	WarRavaged         bool `json:"warRavaged"`
	AbundantEnemies    bool `json:"abundantEnemies"`
	DeadlyClimate      bool `json:"deadlyClimate"`
}

// DangerRating folds the factor weights: stealthy and fast-light reduce the
// rating by 1 each, the severe factors add 2, and the rest add 1. The result
// never goes below 0.
func DangerRating(factors DangerFactors) int {
	rating := 0
	for _, f := range []struct {
		set    bool
		weight int
	}{
		{factors.Stealthy, -1},
		{factors.FastLight, -1},
		{factors.Undeveloped, 1},
		{factors.DifficultTerrain, 1},
		{factors.MinimalAuthority, 1},
		{factors.ChallengingClimate, 1},
		{factors.HostileCreatures, 1},
		{factors.LocalBanditry, 1},
		{factors.HazardousTerrain, 2},
		{factors.WarRavaged, 2},
		{factors.AbundantEnemies, 2},
		{factors.DeadlyClimate, 2},
	} {
		if f.set {
			rating += f.weight
		}
	}
	if rating < 0 {
		rating = 0
	}
	return rating
}

// HexesRoll is the audited result of a hexes-until-event roll.
type HexesRoll struct {
	Roll       int `json:"roll"`
	Halved     int `json:"halved"`
	DangerMod  int `json:"dangerMod"`
	Hexes      int `json:"hexes"`
	DangerUsed int `json:"dangerRating"`
}

// HexesUntilEvent converts a d10 roll into the event countdown: halve the
// roll rounding up, add 1, then subtract 1 at danger rating 2-4 or 2 at
// rating 5 and above. The countdown never drops below 1.
func HexesUntilEvent(d10, dangerRating int) HexesRoll {
	halved := (d10 + 1) / 2
	mod := 0
	switch {
	case dangerRating >= 5:
		mod = -2
	case dangerRating >= 2:
		mod = -1
	}
	hexes := halved + 1 + mod
	if hexes < 1 {
		hexes = 1
	}
	return HexesRoll{
		Roll:       d10,
		Halved:     halved,
		DangerMod:  mod,
		Hexes:      hexes,
		DangerUsed: dangerRating,
	}
}
