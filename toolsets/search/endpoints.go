package search

import "fmpmcp/internal/mcp"

func endpoints() []mcp.Endpoint {
	return []mcp.Endpoint{
		{
			Name:        "symbol",
			Description: "Search for ticker symbols by symbol fragment.",
			Path:        "stable/search-symbol",
			Params: []mcp.Param{
				mcp.RequiredParam("query", "Symbol fragment to search for, e.g. AAPL"),
				mcp.NumberParam("limit", "Maximum number of results"),
				mcp.StringParam("exchange", "Restrict results to one exchange, e.g. NASDAQ"),
			},
		},
		{
			Name:        "name",
			Description: "Search for companies by name.",
			Path:        "stable/search-name",
			Params: []mcp.Param{
				mcp.RequiredParam("query", "Company name fragment, e.g. apple"),
				mcp.NumberParam("limit", "Maximum number of results"),
				mcp.StringParam("exchange", "Restrict results to one exchange"),
			},
		},
		{
			Name:        "cik",
			Description: "Look up companies by SEC CIK number.",
			Path:        "stable/search-cik",
			Params: []mcp.Param{
				mcp.RequiredParam("cik", "Central Index Key, e.g. 0000320193"),
				mcp.NumberParam("limit", "Maximum number of results"),
			},
		},
		{
			Name:        "cusip",
			Description: "Look up a security by CUSIP identifier.",
			Path:        "stable/search-cusip",
			Params: []mcp.Param{
				mcp.RequiredParam("cusip", "CUSIP identifier, e.g. 037833100"),
			},
		},
		{
			Name:        "isin",
			Description: "Look up a security by ISIN identifier.",
			Path:        "stable/search-isin",
			Params: []mcp.Param{
				mcp.RequiredParam("isin", "ISIN identifier, e.g. US0378331005"),
			},
		},
		{
			Name:        "screener",
			Description: "Screen stocks by market cap, sector, price, beta and other filters.",
			Path:        "stable/company-screener",
			Params: []mcp.Param{
				mcp.NumberParam("marketCapMoreThan", "Minimum market capitalization"),
				mcp.NumberParam("marketCapLowerThan", "Maximum market capitalization"),
				mcp.StringParam("sector", "Sector filter, e.g. Technology"),
				mcp.StringParam("industry", "Industry filter, e.g. Consumer Electronics"),
				mcp.NumberParam("betaMoreThan", "Minimum beta"),
				mcp.NumberParam("betaLowerThan", "Maximum beta"),
				mcp.NumberParam("priceMoreThan", "Minimum share price"),
				mcp.NumberParam("priceLowerThan", "Maximum share price"),
				mcp.NumberParam("dividendMoreThan", "Minimum dividend"),
				mcp.NumberParam("dividendLowerThan", "Maximum dividend"),
				mcp.NumberParam("volumeMoreThan", "Minimum trading volume"),
				mcp.NumberParam("volumeLowerThan", "Maximum trading volume"),
				mcp.StringParam("exchange", "Exchange filter, e.g. NASDAQ"),
				mcp.StringParam("country", "Country filter, e.g. US"),
				mcp.BoolParam("isEtf", "Restrict to ETFs"),
				mcp.BoolParam("isFund", "Restrict to funds"),
				mcp.BoolParam("isActivelyTrading", "Restrict to actively trading securities"),
				mcp.NumberParam("limit", "Maximum number of results"),
				mcp.BoolParam("includeAllShareClasses", "Include every share class"),
			},
		},
		{
			Name:        "exchange_variants",
			Description: "Find all exchanges where a given symbol trades.",
			Path:        "stable/search-exchange-variants",
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Ticker symbol, e.g. AAPL"),
			},
		},
	}
}
