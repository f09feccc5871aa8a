package forex

import "fmpmcp/internal/mcp"

func endpoints() []mcp.Endpoint {
	bySymbol := func(name, description, path string) mcp.Endpoint {
		return mcp.Endpoint{
			Name:        name,
			Description: description,
			Path:        path,
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Currency pair, e.g. EURUSD"),
			},
		}
	}
	history := func(name, description, path string) mcp.Endpoint {
		return mcp.Endpoint{
			Name:        name,
			Description: description,
			Path:        path,
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Currency pair, e.g. EURUSD"),
				mcp.StringParam("from", "Start date (YYYY-MM-DD)"),
				mcp.StringParam("to", "End date (YYYY-MM-DD)"),
			},
		}
	}
	return []mcp.Endpoint{
		{
			Name:        "list",
			Description: "List all supported currency pairs.",
			Path:        "stable/forex-list",
		},
		bySymbol("quote", "Real-time quote for one currency pair.", "stable/quote"),
		bySymbol("quote_short", "Compact real-time quote for one currency pair.", "stable/quote-short"),
		{
			Name:        "all_quotes",
			Description: "Quotes for all currency pairs.",
			Path:        "stable/batch-forex-quotes",
			Params: []mcp.Param{
				mcp.BoolParam("short", "Return compact quotes"),
			},
		},
		history("historical_light", "Daily close rate history for one currency pair.", "stable/historical-price-eod/light"),
		history("historical_full", "Daily OHLC rate history for one currency pair.", "stable/historical-price-eod/full"),
		history("intraday_1min", "1-minute intraday bars for one currency pair.", "stable/historical-chart/1min"),
		history("intraday_5min", "5-minute intraday bars for one currency pair.", "stable/historical-chart/5min"),
		history("intraday_1hour", "1-hour intraday bars for one currency pair.", "stable/historical-chart/1hour"),
	}
}
