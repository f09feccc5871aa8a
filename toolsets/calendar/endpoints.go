package calendar

import "fmpmcp/internal/mcp"

func endpoints() []mcp.Endpoint {
	window := func(name, description, path string) mcp.Endpoint {
		return mcp.Endpoint{
			Name:        name,
			Description: description,
			Path:        path,
			Params: []mcp.Param{
				mcp.StringParam("from", "Start date (YYYY-MM-DD)"),
				mcp.StringParam("to", "End date (YYYY-MM-DD)"),
			},
		}
	}
	bySymbol := func(name, description, path string) mcp.Endpoint {
		return mcp.Endpoint{
			Name:        name,
			Description: description,
			Path:        path,
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Ticker symbol, e.g. AAPL"),
				mcp.NumberParam("limit", "Maximum number of results"),
			},
		}
	}
	return []mcp.Endpoint{
		bySymbol("dividends", "Dividend history for one symbol.", "stable/dividends"),
		window("dividends_calendar", "Upcoming dividend dates across the market.", "stable/dividends-calendar"),
		bySymbol("earnings", "Earnings report history for one symbol.", "stable/earnings"),
		window("earnings_calendar", "Upcoming earnings announcements across the market.", "stable/earnings-calendar"),
		window("ipos_calendar", "Upcoming and recent IPOs.", "stable/ipos-calendar"),
		window("ipos_disclosure", "IPO disclosure filings.", "stable/ipos-disclosure"),
		window("ipos_prospectus", "IPO prospectus filings.", "stable/ipos-prospectus"),
		bySymbol("splits", "Stock split history for one symbol.", "stable/splits"),
		window("splits_calendar", "Upcoming stock splits across the market.", "stable/splits-calendar"),
	}
}
