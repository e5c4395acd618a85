// README: Influencer tip row sourced from the analytical warehouse.
package tips

// Tip is one influencer recommendation row for a destination.
type Tip struct {
	Platform    string  `bigquery:"platform" json:"platform"`
	Influencer  string  `bigquery:"influencer_name" json:"influencer"`
	Place       string  `bigquery:"place_name" json:"place"`
	Tip         string  `bigquery:"recommendation" json:"tip"`
	Category    string  `bigquery:"category" json:"category"`
	BudgetRange string  `bigquery:"budget_range" json:"budget_range"`
	BestTime    string  `bigquery:"best_time" json:"best_time"`
	Lat         float64 `bigquery:"latitude" json:"lat"`
	Lng         float64 `bigquery:"longitude" json:"lng"`
}
