package tickets

import "net/url"

const (
	ticketmasterSearchBase = "https://www.ticketmaster.com/search?q="
	seatGeekSearchBase     = "https://seatgeek.com/search?search="
)

// TicketmasterSearchURL builds a Ticketmaster search link for a query.
func TicketmasterSearchURL(query string) string {
	return ticketmasterSearchBase + url.QueryEscape(query)
}

// SeatGeekSearchURL builds a SeatGeek search link for a query.
func SeatGeekSearchURL(query string) string {
	return seatGeekSearchBase + url.QueryEscape(query)
}

// Unavailable builds an unavailable result pointing at the SeatGeek search page.
func Unavailable(homeTeam, message, errMsg string) Info {
	return Info{
		Available:         false,
		Message:           message,
		Error:             errMsg,
		SeatGeekSearchURL: SeatGeekSearchURL(homeTeam),
	}
}
