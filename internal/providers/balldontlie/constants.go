package balldontlie

import "time"

const (
	providerName       = "balldontlie"
	defaultBaseURL     = "https://api.balldontlie.io/v1"
	defaultPerPage     = 100
	defaultHTTPTimeout = 30 * time.Second
	defaultMaxPages    = 5
	errorBodyLimit     = 512

	ticketNote = "Ticket data requires Ticketmaster or SeatGeek API integration"
)
