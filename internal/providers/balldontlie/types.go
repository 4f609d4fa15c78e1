package balldontlie

type listResponse[T any] struct {
	Data []T          `json:"data"`
	Meta metaResponse `json:"meta"`
}

type singleResponse[T any] struct {
	Data T `json:"data"`
}

type metaResponse struct {
	NextCursor *int `json:"next_cursor"`
	PerPage    int  `json:"per_page"`
}

type gameResponse struct {
	ID               int          `json:"id"`
	Date             string       `json:"date"`
	Status           string       `json:"status"`
	Time             string       `json:"time"`
	Period           int          `json:"period"`
	Postseason       bool         `json:"postseason"`
	HomeTeam         teamResponse `json:"home_team"`
	VisitorTeam      teamResponse `json:"visitor_team"`
	HomeTeamScore    int          `json:"home_team_score"`
	VisitorTeamScore int          `json:"visitor_team_score"`
	Season           int          `json:"season"`
}

type teamResponse struct {
	ID           int    `json:"id"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city"`
	Conference   string `json:"conference"`
	Division     string `json:"division"`
	FullName     string `json:"full_name"`
	Name         string `json:"name"`
}

type playerResponse struct {
	ID           int          `json:"id"`
	FirstName    string       `json:"first_name"`
	LastName     string       `json:"last_name"`
	Position     string       `json:"position"`
	Height       string       `json:"height"`
	Weight       string       `json:"weight"`
	JerseyNumber string       `json:"jersey_number"`
	College      string       `json:"college"`
	Country      string       `json:"country"`
	DraftYear    *int         `json:"draft_year"`
	DraftRound   *int         `json:"draft_round"`
	DraftNumber  *int         `json:"draft_number"`
	Team         teamResponse `json:"team"`
}

type seasonAveragesResponse struct {
	PlayerID    int     `json:"player_id"`
	Season      int     `json:"season"`
	GamesPlayed int     `json:"games_played"`
	Min         string  `json:"min"`
	Pts         float64 `json:"pts"`
	Reb         float64 `json:"reb"`
	Ast         float64 `json:"ast"`
	Stl         float64 `json:"stl"`
	Blk         float64 `json:"blk"`
	Turnover    float64 `json:"turnover"`
	FGPct       float64 `json:"fg_pct"`
	FG3Pct      float64 `json:"fg3_pct"`
	FTPct       float64 `json:"ft_pct"`
}

type boxScoreResponse struct {
	HomeTeam         boxScoreTeam   `json:"home_team"`
	VisitorTeam      boxScoreTeam   `json:"visitor_team"`
	HomeTeamStats    []statResponse `json:"home_team_stats"`
	VisitorTeamStats []statResponse `json:"visitor_team_stats"`
}

type boxScoreTeam struct {
	teamResponse
	Players []statResponse `json:"players"`
}

type statResponse struct {
	Player   playerResponse `json:"player"`
	Min      string         `json:"min"`
	Pts      int            `json:"pts"`
	Reb      int            `json:"reb"`
	Ast      int            `json:"ast"`
	Stl      int            `json:"stl"`
	Blk      int            `json:"blk"`
	Turnover int            `json:"turnover"`
	FGM      int            `json:"fgm"`
	FGA      int            `json:"fga"`
	FG3M     int            `json:"fg3m"`
	FG3A     int            `json:"fg3a"`
	FTM      int            `json:"ftm"`
	FTA      int            `json:"fta"`
}
