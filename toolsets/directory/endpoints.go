package directory

import "fmpmcp/internal/mcp"

func endpoints() []mcp.Endpoint {
	return []mcp.Endpoint{
		{
			Name:        "company_symbols",
			Description: "List all tradable company symbols.",
			Path:        "stable/stock-list",
		},
		{
			Name:        "financial_symbols",
			Description: "List symbols with available financial statements.",
			Path:        "stable/financial-statement-symbol-list",
		},
		{
			Name:        "cik_list",
			Description: "List SEC-registered companies with their CIK numbers.",
			Path:        "stable/cik-list",
			Params: []mcp.Param{
				mcp.NumberParam("page", "Page number"),
				mcp.NumberParam("limit", "Maximum number of results"),
			},
		},
		{
			Name:        "symbol_changes",
			Description: "Recent ticker symbol changes from renames, mergers and splits.",
			Path:        "stable/symbol-change",
		},
		{
			Name:        "etf_symbols",
			Description: "List all ETF symbols.",
			Path:        "stable/etf-list",
		},
		{
			Name:        "actively_trading",
			Description: "List symbols that are actively trading.",
			Path:        "stable/actively-trading-list",
		},
		{
			Name:        "earnings_transcripts",
			Description: "List companies with available earnings call transcripts.",
			Path:        "stable/earnings-transcript-list",
		},
		{
			Name:        "exchanges",
			Description: "List all supported stock exchanges.",
			Path:        "stable/available-exchanges",
		},
		{
			Name:        "sectors",
			Description: "List all supported sectors.",
			Path:        "stable/available-sectors",
		},
		{
			Name:        "industries",
			Description: "List all supported industries.",
			Path:        "stable/available-industries",
		},
		{
			Name:        "countries",
			Description: "List all supported countries.",
			Path:        "stable/available-countries",
		},
	}
}
