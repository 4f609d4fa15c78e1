package tickets

// Venue describes where an event takes place.
type Venue struct {
	Name     string `json:"name"`
	City     string `json:"city"`
	State    string `json:"state"`
	Capacity int    `json:"capacity"`
	Address  string `json:"address"`
}

// Prices summarizes secondary-market listings.
type Prices struct {
	LowestPrice  *float64 `json:"lowest_price"`
	AveragePrice *float64 `json:"average_price"`
	HighestPrice *float64 `json:"highest_price"`
	ListingCount *int     `json:"listing_count"`
}

// Info is the ticket lookup result. Unavailable results carry search links instead of an event.
type Info struct {
	Available         bool    `json:"available"`
	EventID           int     `json:"event_id,omitempty"`
	EventURL          string  `json:"event_url,omitempty"`
	Venue             *Venue  `json:"venue,omitempty"`
	Prices            *Prices `json:"prices,omitempty"`
	Popularity        float64 `json:"popularity,omitempty"`
	BuyURL            string  `json:"buy_url,omitempty"`
	Message           string  `json:"message,omitempty"`
	Error             string  `json:"error,omitempty"`
	TicketmasterURL   string  `json:"ticketmaster_url,omitempty"`
	SeatGeekURL       string  `json:"seatgeek_url,omitempty"`
	SeatGeekSearchURL string  `json:"seatgeek_search_url,omitempty"`
}

// GameTickets is the payload returned by /games/{id}/tickets.
type GameTickets struct {
	GameID   int    `json:"game_id"`
	Matchup  string `json:"matchup"`
	GameDate string `json:"game_date"`
	Tickets  Info   `json:"tickets"`
}
