package market

import "fmpmcp/internal/mcp"

func endpoints() []mcp.Endpoint {
	return []mcp.Endpoint{
		{
			Name:        "sector_performance",
			Description: "Sector performance snapshot for one trading day.",
			Path:        "stable/sector-performance-snapshot",
			Params: []mcp.Param{
				mcp.RequiredParam("date", "Trading day (YYYY-MM-DD)"),
				mcp.StringParam("exchange", "Exchange filter, e.g. NASDAQ"),
				mcp.StringParam("sector", "Sector filter, e.g. Technology"),
			},
		},
		{
			Name:        "industry_performance",
			Description: "Industry performance snapshot for one trading day.",
			Path:        "stable/industry-performance-snapshot",
			Params: []mcp.Param{
				mcp.RequiredParam("date", "Trading day (YYYY-MM-DD)"),
				mcp.StringParam("exchange", "Exchange filter, e.g. NASDAQ"),
				mcp.StringParam("industry", "Industry filter, e.g. Biotechnology"),
			},
		},
		{
			Name:        "historical_sector_performance",
			Description: "Sector performance over a date range.",
			Path:        "stable/historical-sector-performance",
			Params: []mcp.Param{
				mcp.RequiredParam("sector", "Sector name, e.g. Energy"),
				mcp.StringParam("from", "Start date (YYYY-MM-DD)"),
				mcp.StringParam("to", "End date (YYYY-MM-DD)"),
				mcp.StringParam("exchange", "Exchange filter, e.g. NASDAQ"),
			},
		},
		{
			Name:        "historical_industry_performance",
			Description: "Industry performance over a date range.",
			Path:        "stable/historical-industry-performance",
			Params: []mcp.Param{
				mcp.RequiredParam("industry", "Industry name, e.g. Biotechnology"),
				mcp.StringParam("from", "Start date (YYYY-MM-DD)"),
				mcp.StringParam("to", "End date (YYYY-MM-DD)"),
				mcp.StringParam("exchange", "Exchange filter, e.g. NASDAQ"),
			},
		},
		{
			Name:        "sector_pe",
			Description: "Price-to-earnings ratios by sector for one trading day.",
			Path:        "stable/sector-pe-snapshot",
			Params: []mcp.Param{
				mcp.RequiredParam("date", "Trading day (YYYY-MM-DD)"),
				mcp.StringParam("exchange", "Exchange filter, e.g. NASDAQ"),
				mcp.StringParam("sector", "Sector filter, e.g. Technology"),
			},
		},
		{
			Name:        "industry_pe",
			Description: "Price-to-earnings ratios by industry for one trading day.",
			Path:        "stable/industry-pe-snapshot",
			Params: []mcp.Param{
				mcp.RequiredParam("date", "Trading day (YYYY-MM-DD)"),
				mcp.StringParam("exchange", "Exchange filter, e.g. NASDAQ"),
				mcp.StringParam("industry", "Industry filter, e.g. Biotechnology"),
			},
		},
		{
			Name:        "biggest_gainers",
			Description: "Stocks with the largest percentage gain today.",
			Path:        "stable/biggest-gainers",
		},
		{
			Name:        "biggest_losers",
			Description: "Stocks with the largest percentage loss today.",
			Path:        "stable/biggest-losers",
		},
		{
			Name:        "most_active",
			Description: "Stocks with the highest trading volume today.",
			Path:        "stable/most-actives",
		},
		{
			Name:        "exchange_hours",
			Description: "Trading hours and current open state for one exchange.",
			Path:        "stable/exchange-market-hours",
			Params: []mcp.Param{
				mcp.RequiredParam("exchange", "Exchange code, e.g. NASDAQ"),
			},
		},
		{
			Name:        "exchange_holidays",
			Description: "Holiday schedule for one exchange.",
			Path:        "stable/holidays-by-exchange",
			Params: []mcp.Param{
				mcp.RequiredParam("exchange", "Exchange code, e.g. NASDAQ"),
				mcp.StringParam("from", "Start date (YYYY-MM-DD)"),
				mcp.StringParam("to", "End date (YYYY-MM-DD)"),
			},
		},
		{
			Name:        "all_exchange_hours",
			Description: "Trading hours for every supported exchange.",
			Path:        "stable/all-exchange-market-hours",
		},
	}
}
