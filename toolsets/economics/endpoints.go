package economics

import "fmpmcp/internal/mcp"

func endpoints() []mcp.Endpoint {
	return []mcp.Endpoint{
		{
			Name:        "treasury_rates",
			Description: "US treasury rates across maturities.",
			Path:        "stable/treasury-rates",
			Params: []mcp.Param{
				mcp.StringParam("from", "Start date (YYYY-MM-DD)"),
				mcp.StringParam("to", "End date (YYYY-MM-DD)"),
			},
		},
		{
			Name:        "indicators",
			Description: "Economic indicator time series (GDP, CPI, unemployment and more).",
			Path:        "stable/economic-indicators",
			Params: []mcp.Param{
				mcp.RequiredParam("name", "Indicator name, e.g. GDP or CPI"),
				mcp.StringParam("from", "Start date (YYYY-MM-DD)"),
				mcp.StringParam("to", "End date (YYYY-MM-DD)"),
			},
		},
		{
			Name:        "calendar",
			Description: "Upcoming economic data releases.",
			Path:        "stable/economic-calendar",
			Params: []mcp.Param{
				mcp.StringParam("from", "Start date (YYYY-MM-DD)"),
				mcp.StringParam("to", "End date (YYYY-MM-DD)"),
			},
		},
		{
			Name:        "market_risk_premium",
			Description: "Market risk premium by country.",
			Path:        "stable/market-risk-premium",
		},
	}
}
