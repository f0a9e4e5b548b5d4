package bot

// AdvancedTuning holds the thresholds used by AdvancedBrain. Trump counts
// are "effective" counts after the seat adjustment.
type AdvancedTuning struct {
	// Seat adjustments applied in round one.
	DealerBonus           int
	PartnerDealerBonus    int
	OpponentDealerPenalty int

	OrderUpThreshold      int // effective trump needed to order up
	BowerOrderUpThreshold int // effective trump needed when holding a bower
	CallThreshold         int // trump needed to name a suit in round two
	BowerCallThreshold    int // trump needed to name a suit holding a bower

	// AloneBeaterThreshold is the most unseen cards that may outrank our
	// best card across all held suits for the seat to go alone.
	AloneBeaterThreshold int
	// DefendTrumpThreshold is the trump length needed to defend alone;
	// the right bower is also required.
	DefendTrumpThreshold int
}

// DefaultTuning is used when AdvancedBrain has no explicit tuning.
var DefaultTuning = AdvancedTuning{
	DealerBonus:           1,
	PartnerDealerBonus:    1,
	OpponentDealerPenalty: 1,

	OrderUpThreshold:      4,
	BowerOrderUpThreshold: 3,
	CallThreshold:         4,
	BowerCallThreshold:    3,

	AloneBeaterThreshold: 2,
	DefendTrumpThreshold: 3,
}
