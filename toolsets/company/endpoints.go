package company

import "fmpmcp/internal/mcp"

func endpoints() []mcp.Endpoint {
	return []mcp.Endpoint{
		{
			Name:        "profile",
			Description: "Company profile with sector, industry, description and key facts.",
			Path:        "stable/profile",
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Ticker symbol, e.g. AAPL"),
			},
		},
		{
			Name:        "profile_by_cik",
			Description: "Company profile looked up by SEC CIK number.",
			Path:        "stable/profile-cik",
			Params: []mcp.Param{
				mcp.RequiredParam("cik", "Central Index Key, e.g. 0000320193"),
			},
		},
		{
			Name:        "notes",
			Description: "Notes issued by a company.",
			Path:        "stable/company-notes",
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Ticker symbol, e.g. AAPL"),
			},
		},
		{
			Name:        "peers",
			Description: "Peer companies in the same sector and size range.",
			Path:        "stable/stock-peers",
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Ticker symbol, e.g. AAPL"),
			},
		},
		{
			Name:        "delisted",
			Description: "Companies delisted from US exchanges.",
			Path:        "stable/delisted-companies",
			Params: []mcp.Param{
				mcp.NumberParam("page", "Page number"),
				mcp.NumberParam("limit", "Maximum number of results"),
			},
		},
		{
			Name:        "employee_count",
			Description: "Latest reported employee count.",
			Path:        "stable/employee-count",
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Ticker symbol, e.g. AAPL"),
				mcp.NumberParam("limit", "Maximum number of results"),
			},
		},
		{
			Name:        "historical_employee_count",
			Description: "Employee count history across filings.",
			Path:        "stable/historical-employee-count",
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Ticker symbol, e.g. AAPL"),
				mcp.NumberParam("limit", "Maximum number of results"),
			},
		},
		{
			Name:        "market_cap",
			Description: "Current market capitalization.",
			Path:        "stable/market-capitalization",
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Ticker symbol, e.g. AAPL"),
			},
		},
		{
			Name:        "batch_market_cap",
			Description: "Market capitalization for multiple symbols.",
			Path:        "stable/market-capitalization-batch",
			Params: []mcp.Param{
				mcp.RequiredParam("symbols", "Comma-separated ticker symbols, e.g. AAPL,MSFT"),
			},
		},
		{
			Name:        "historical_market_cap",
			Description: "Market capitalization history.",
			Path:        "stable/historical-market-capitalization",
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Ticker symbol, e.g. AAPL"),
				mcp.NumberParam("limit", "Maximum number of results"),
				mcp.StringParam("from", "Start date (YYYY-MM-DD)"),
				mcp.StringParam("to", "End date (YYYY-MM-DD)"),
			},
		},
		{
			Name:        "shares_float",
			Description: "Share float and liquidity figures for one symbol.",
			Path:        "stable/shares-float",
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Ticker symbol, e.g. AAPL"),
			},
		},
		{
			Name:        "all_shares_float",
			Description: "Share float figures across all companies.",
			Path:        "stable/shares-float-all",
			Params: []mcp.Param{
				mcp.NumberParam("page", "Page number"),
				mcp.NumberParam("limit", "Maximum number of results"),
			},
		},
		{
			Name:        "executives",
			Description: "Key executives with titles and pay.",
			Path:        "stable/key-executives",
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Ticker symbol, e.g. AAPL"),
				mcp.BoolParam("active", "Restrict to currently active executives"),
			},
		},
		{
			Name:        "executive_compensation",
			Description: "Executive compensation disclosed in SEC filings.",
			Path:        "stable/governance-executive-compensation",
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Ticker symbol, e.g. AAPL"),
			},
		},
	}
}
