package statements

import "fmpmcp/internal/mcp"

func endpoints() []mcp.Endpoint {
	statement := func(name, description, path string) mcp.Endpoint {
		return mcp.Endpoint{
			Name:        name,
			Description: description,
			Path:        path,
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Ticker symbol, e.g. AAPL"),
				mcp.NumberParam("limit", "Number of periods to return"),
				mcp.EnumParam("period", "Reporting period", "annual", "quarter", "FY", "Q1", "Q2", "Q3", "Q4"),
			},
		}
	}
	ttm := func(name, description, path string) mcp.Endpoint {
		return mcp.Endpoint{
			Name:        name,
			Description: description,
			Path:        path,
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Ticker symbol, e.g. AAPL"),
			},
		}
	}
	return []mcp.Endpoint{
		statement("income_statement", "Income statements for one company.", "stable/income-statement"),
		statement("balance_sheet", "Balance sheet statements for one company.", "stable/balance-sheet-statement"),
		statement("cash_flow", "Cash flow statements for one company.", "stable/cash-flow-statement"),
		statement("income_statement_growth", "Period-over-period income statement growth.", "stable/income-statement-growth"),
		statement("balance_sheet_growth", "Period-over-period balance sheet growth.", "stable/balance-sheet-statement-growth"),
		statement("cash_flow_growth", "Period-over-period cash flow growth.", "stable/cash-flow-statement-growth"),
		statement("financial_growth", "Growth of key financial figures.", "stable/financial-growth"),
		statement("ratios", "Financial ratios per reporting period.", "stable/ratios"),
		statement("key_metrics", "Key metrics per reporting period.", "stable/key-metrics"),
		statement("enterprise_values", "Enterprise value components per period.", "stable/enterprise-values"),
		ttm("ratios_ttm", "Trailing-twelve-month financial ratios.", "stable/ratios-ttm"),
		ttm("key_metrics_ttm", "Trailing-twelve-month key metrics.", "stable/key-metrics-ttm"),
		{
			Name:        "latest",
			Description: "Most recently filed financial statements across all companies.",
			Path:        "stable/latest-financial-statements",
			Params: []mcp.Param{
				mcp.NumberParam("page", "Page number"),
				mcp.NumberParam("limit", "Maximum number of results"),
			},
		},
		{
			Name:        "owner_earnings",
			Description: "Owner earnings derived from reported cash flows.",
			Path:        "stable/owner-earnings",
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Ticker symbol, e.g. AAPL"),
				mcp.NumberParam("limit", "Number of periods to return"),
			},
		},
		{
			Name:        "revenue_product_segmentation",
			Description: "Revenue broken down by product line.",
			Path:        "stable/revenue-product-segmentation",
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Ticker symbol, e.g. AAPL"),
				mcp.EnumParam("period", "Reporting period", "annual", "quarter"),
				mcp.EnumParam("structure", "Response structure", "flat"),
			},
		},
		{
			Name:        "revenue_geographic_segmentation",
			Description: "Revenue broken down by geography.",
			Path:        "stable/revenue-geographic-segmentation",
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Ticker symbol, e.g. AAPL"),
				mcp.EnumParam("period", "Reporting period", "annual", "quarter"),
				mcp.EnumParam("structure", "Response structure", "flat"),
			},
		},
		{
			Name:        "report_dates",
			Description: "Available financial report dates for one company.",
			Path:        "stable/financial-reports-dates",
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Ticker symbol, e.g. AAPL"),
			},
		},
		{
			Name:        "report_json",
			Description: "Full 10-K style financial report as JSON.",
			Path:        "stable/financial-reports-json",
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Ticker symbol, e.g. AAPL"),
				mcp.RequiredParam("year", "Fiscal year, e.g. 2024"),
				mcp.EnumParam("period", "Reporting period", "FY", "Q1", "Q2", "Q3", "Q4"),
			},
		},
	}
}
