package indexes

import "fmpmcp/internal/mcp"

func endpoints() []mcp.Endpoint {
	return []mcp.Endpoint{
		{
			Name:        "list",
			Description: "List all supported market indexes.",
			Path:        "stable/index-list",
		},
		{
			Name:        "quote",
			Description: "Real-time quote for one index.",
			Path:        "stable/quote",
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Index symbol, e.g. ^GSPC"),
			},
		},
		{
			Name:        "quote_short",
			Description: "Compact real-time quote for one index.",
			Path:        "stable/quote-short",
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Index symbol, e.g. ^GSPC"),
			},
		},
		{
			Name:        "all_quotes",
			Description: "Quotes for all market indexes.",
			Path:        "stable/batch-index-quotes",
			Params: []mcp.Param{
				mcp.BoolParam("short", "Return compact quotes"),
			},
		},
		{
			Name:        "historical",
			Description: "Daily price history for one index.",
			Path:        "stable/historical-price-eod/light",
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Index symbol, e.g. ^GSPC"),
				mcp.StringParam("from", "Start date (YYYY-MM-DD)"),
				mcp.StringParam("to", "End date (YYYY-MM-DD)"),
			},
		},
		{
			Name:        "sp500_constituents",
			Description: "Current S&P 500 constituents.",
			Path:        "stable/sp500-constituent",
		},
		{
			Name:        "nasdaq_constituents",
			Description: "Current Nasdaq index constituents.",
			Path:        "stable/nasdaq-constituent",
		},
		{
			Name:        "dowjones_constituents",
			Description: "Current Dow Jones constituents.",
			Path:        "stable/dowjones-constituent",
		},
		{
			Name:        "historical_sp500",
			Description: "Historical S&P 500 membership changes.",
			Path:        "stable/historical-sp500-constituent",
		},
		{
			Name:        "historical_nasdaq",
			Description: "Historical Nasdaq membership changes.",
			Path:        "stable/historical-nasdaq-constituent",
		},
		{
			Name:        "historical_dowjones",
			Description: "Historical Dow Jones membership changes.",
			Path:        "stable/historical-dowjones-constituent",
		},
	}
}
