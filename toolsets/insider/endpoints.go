package insider

import "fmpmcp/internal/mcp"

func endpoints() []mcp.Endpoint {
	return []mcp.Endpoint{
		{
			Name:        "latest",
			Description: "Latest insider trades across all companies.",
			Path:        "stable/insider-trading/latest",
			Params: []mcp.Param{
				mcp.StringParam("date", "Filing date filter (YYYY-MM-DD)"),
				mcp.NumberParam("page", "Page number"),
				mcp.NumberParam("limit", "Maximum number of results"),
			},
		},
		{
			Name:        "search",
			Description: "Search insider trades by symbol, CIK or transaction type.",
			Path:        "stable/insider-trading/search",
			Params: []mcp.Param{
				mcp.StringParam("symbol", "Ticker symbol, e.g. AAPL"),
				mcp.StringParam("reportingCik", "Reporting insider CIK"),
				mcp.StringParam("companyCik", "Company CIK"),
				mcp.StringParam("transactionType", "Form 4 transaction code, e.g. S-Sale"),
				mcp.NumberParam("page", "Page number"),
				mcp.NumberParam("limit", "Maximum number of results"),
			},
		},
		{
			Name:        "by_reporting_name",
			Description: "Find reporting insiders by name.",
			Path:        "stable/insider-trading/reporting-name",
			Params: []mcp.Param{
				mcp.RequiredParam("name", "Insider name, e.g. Cook"),
			},
		},
		{
			Name:        "transaction_types",
			Description: "List all Form 4 transaction type codes.",
			Path:        "stable/insider-trading-transaction-type",
		},
		{
			Name:        "statistics",
			Description: "Aggregate insider trading statistics for one company.",
			Path:        "stable/insider-trading/statistics",
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Ticker symbol, e.g. AAPL"),
			},
		},
		{
			Name:        "acquisition_ownership",
			Description: "Beneficial ownership acquisition filings (Schedule 13D/13G).",
			Path:        "stable/acquisition-of-beneficial-ownership",
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Ticker symbol, e.g. AAPL"),
				mcp.NumberParam("limit", "Maximum number of results"),
			},
		},
	}
}
