package commodity

import "fmpmcp/internal/mcp"

func endpoints() []mcp.Endpoint {
	bySymbol := func(name, description, path string) mcp.Endpoint {
		return mcp.Endpoint{
			Name:        name,
			Description: description,
			Path:        path,
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Commodity symbol, e.g. GCUSD"),
			},
		}
	}
	history := func(name, description, path string) mcp.Endpoint {
		return mcp.Endpoint{
			Name:        name,
			Description: description,
			Path:        path,
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Commodity symbol, e.g. GCUSD"),
				mcp.StringParam("from", "Start date (YYYY-MM-DD)"),
				mcp.StringParam("to", "End date (YYYY-MM-DD)"),
			},
		}
	}
	return []mcp.Endpoint{
		{
			Name:        "list",
			Description: "List all supported commodities.",
			Path:        "stable/commodities-list",
		},
		bySymbol("quote", "Real-time quote for one commodity.", "stable/quote"),
		bySymbol("quote_short", "Compact real-time quote for one commodity.", "stable/quote-short"),
		{
			Name:        "all_quotes",
			Description: "Quotes for all commodities.",
			Path:        "stable/batch-commodity-quotes",
			Params: []mcp.Param{
				mcp.BoolParam("short", "Return compact quotes"),
			},
		},
		history("historical_light", "Daily close price history for one commodity.", "stable/historical-price-eod/light"),
		history("historical_full", "Daily OHLCV history for one commodity.", "stable/historical-price-eod/full"),
		history("intraday_1min", "1-minute intraday bars for one commodity.", "stable/historical-chart/1min"),
		history("intraday_5min", "5-minute intraday bars for one commodity.", "stable/historical-chart/5min"),
		history("intraday_1hour", "1-hour intraday bars for one commodity.", "stable/historical-chart/1hour"),
	}
}
