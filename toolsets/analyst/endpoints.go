package analyst

import "fmpmcp/internal/mcp"

func endpoints() []mcp.Endpoint {
	return []mcp.Endpoint{
		{
			Name:        "estimates",
			Description: "Analyst estimates for revenue, EPS and margins.",
			Path:        "stable/analyst-estimates",
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Ticker symbol, e.g. AAPL"),
				mcp.EnumParam("period", "Estimate period", "annual", "quarter"),
				mcp.NumberParam("page", "Page number"),
				mcp.NumberParam("limit", "Maximum number of results"),
			},
		},
		{
			Name:        "ratings_snapshot",
			Description: "Current analyst rating snapshot.",
			Path:        "stable/ratings-snapshot",
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Ticker symbol, e.g. AAPL"),
				mcp.NumberParam("limit", "Maximum number of results"),
			},
		},
		{
			Name:        "ratings_historical",
			Description: "Analyst rating history.",
			Path:        "stable/ratings-historical",
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Ticker symbol, e.g. AAPL"),
				mcp.NumberParam("limit", "Maximum number of results"),
			},
		},
		{
			Name:        "price_target_summary",
			Description: "Summary of analyst price targets over standard horizons.",
			Path:        "stable/price-target-summary",
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Ticker symbol, e.g. AAPL"),
			},
		},
		{
			Name:        "price_target_consensus",
			Description: "Consensus high, low and median price targets.",
			Path:        "stable/price-target-consensus",
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Ticker symbol, e.g. AAPL"),
			},
		},
		{
			Name:        "price_target_news",
			Description: "News articles announcing price target changes for one symbol.",
			Path:        "stable/price-target-news",
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Ticker symbol, e.g. AAPL"),
				mcp.NumberParam("page", "Page number"),
				mcp.NumberParam("limit", "Maximum number of results"),
			},
		},
		{
			Name:        "price_target_latest_news",
			Description: "Latest price target announcements across all symbols.",
			Path:        "stable/price-target-latest-news",
			Params: []mcp.Param{
				mcp.NumberParam("page", "Page number"),
				mcp.NumberParam("limit", "Maximum number of results"),
			},
		},
		{
			Name:        "grades",
			Description: "Latest analyst grades (upgrades and downgrades).",
			Path:        "stable/grades",
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Ticker symbol, e.g. AAPL"),
			},
		},
		{
			Name:        "grades_historical",
			Description: "Analyst grade history.",
			Path:        "stable/grades-historical",
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Ticker symbol, e.g. AAPL"),
				mcp.NumberParam("limit", "Maximum number of results"),
			},
		},
		{
			Name:        "grades_consensus",
			Description: "Consensus of analyst grades.",
			Path:        "stable/grades-consensus",
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Ticker symbol, e.g. AAPL"),
			},
		},
		{
			Name:        "grades_news",
			Description: "News articles announcing grade changes for one symbol.",
			Path:        "stable/grades-news",
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Ticker symbol, e.g. AAPL"),
				mcp.NumberParam("page", "Page number"),
				mcp.NumberParam("limit", "Maximum number of results"),
			},
		},
		{
			Name:        "grades_latest_news",
			Description: "Latest grade change announcements across all symbols.",
			Path:        "stable/grades-latest-news",
			Params: []mcp.Param{
				mcp.NumberParam("page", "Page number"),
				mcp.NumberParam("limit", "Maximum number of results"),
			},
		},
	}
}
