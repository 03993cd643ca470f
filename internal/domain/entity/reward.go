package entity

// Reward is an item that can be obtained by spending points.
type Reward struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	PointsRequired int    `json:"points_required"`
	Description    string `json:"description"`
}

// RewardOption is a catalog reward annotated against the current balance.
type RewardOption struct {
	Reward
	Affordable bool `json:"affordable"`
}

// RedemptionDescription is the ledger description used when the reward is redeemed.
func (r Reward) RedemptionDescription() string {
	return "Redeemed: " + r.Title
}

// DefaultRewardCatalog returns the store's redemption catalog.
func DefaultRewardCatalog() []Reward {
	return []Reward{
		{ID: "1", Title: "Free Espresso Shot", PointsRequired: 150, Description: "A single shot of our premium espresso"},
		{ID: "2", Title: "Medium Coffee", PointsRequired: 250, Description: "Any medium-sized coffee of your choice"},
		{ID: "3", Title: "Specialty Latte", PointsRequired: 400, Description: "Any specialty latte with your choice of milk"},
		{ID: "4", Title: "Premium Cold Brew", PointsRequired: 550, Description: "Our signature cold brew coffee with specialty beans"},
		{ID: "5", Title: "$5 Off Any Coffee", PointsRequired: 500, Description: "Discount applied to any coffee purchase"},
	}
}
