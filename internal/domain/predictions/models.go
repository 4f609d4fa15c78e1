package predictions

// Confidence buckets.
const (
	ConfidenceHigh   = "High"
	ConfidenceMedium = "Medium"
	ConfidenceLow    = "Low"
)

// KeyPlayer is a roster player highlighted for the predicted winner.
type KeyPlayer struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Position     string `json:"position"`
	HeadshotURL  string `json:"headshot_url"`
	ImpactReason string `json:"impact_reason"`
}

// Prediction is the payload returned by the predict endpoints.
type Prediction struct {
	PredictionID        string      `json:"prediction_id,omitempty"`
	GameID              int         `json:"game_id"`
	HomeTeam            string      `json:"home_team"`
	HomeTeamName        string      `json:"home_team_name"`
	HomeTeamLogo        string      `json:"home_team_logo"`
	AwayTeam            string      `json:"away_team"`
	AwayTeamName        string      `json:"away_team_name"`
	AwayTeamLogo        string      `json:"away_team_logo"`
	HomeWinProbability  float64     `json:"home_win_probability"`
	AwayWinProbability  float64     `json:"away_win_probability"`
	PredictedWinner     string      `json:"predicted_winner"`
	PredictedWinnerName string      `json:"predicted_winner_name"`
	PredictedWinnerLogo string      `json:"predicted_winner_logo"`
	Confidence          string      `json:"confidence"`
	KeyPlayers          []KeyPlayer `json:"key_players"`
	PredictionFactors   []string    `json:"prediction_factors"`
}

// HomePicked reports whether the home side is the predicted winner.
func (p Prediction) HomePicked() bool {
	return p.PredictedWinner == p.HomeTeam
}

// Record is one historical prediction with its observed outcome.
type Record struct {
	Game      string  `json:"game"`
	Predicted float64 `json:"predicted"`
	Actual    int     `json:"actual"`
	Correct   bool    `json:"correct"`
}

// Results is the payload returned by /results.
type Results struct {
	Source           string   `json:"source"`
	Accuracy         float64  `json:"accuracy"`
	TotalPredictions int      `json:"total_predictions"`
	Records          []Record `json:"records"`
}

// SampleResults is served until real outcomes have been observed.
func SampleResults() Results {
	return Results{
		Source:           "sample",
		Accuracy:         0.85,
		TotalPredictions: 42,
		Records: []Record{
			{Game: "LAL vs GSW", Predicted: 0.72, Actual: 1, Correct: true},
			{Game: "BOS vs MIA", Predicted: 0.65, Actual: 1, Correct: true},
			{Game: "PHX vs DEN", Predicted: 0.48, Actual: 0, Correct: true},
		},
	}
}
