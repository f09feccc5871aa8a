package etf

import "fmpmcp/internal/mcp"

func endpoints() []mcp.Endpoint {
	bySymbol := func(name, description, path string) mcp.Endpoint {
		return mcp.Endpoint{
			Name:        name,
			Description: description,
			Path:        path,
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Fund symbol, e.g. SPY"),
			},
		}
	}
	return []mcp.Endpoint{
		bySymbol("info", "Fund profile with expense ratio, AUM and inception date.", "stable/etf/info"),
		bySymbol("holdings", "Full holdings of a fund.", "stable/etf/holdings"),
		bySymbol("asset_exposure", "Funds holding a given asset.", "stable/etf/asset-exposure"),
		bySymbol("country_weightings", "Portfolio weight by country.", "stable/etf/country-weightings"),
		bySymbol("sector_weightings", "Portfolio weight by sector.", "stable/etf/sector-weightings"),
		{
			Name:        "disclosure",
			Description: "Quarterly fund disclosure filings.",
			Path:        "stable/funds/disclosure",
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Fund symbol, e.g. SPY"),
				mcp.RequiredParam("year", "Disclosure year, e.g. 2024"),
				mcp.RequiredParam("quarter", "Disclosure quarter, 1-4"),
				mcp.StringParam("cik", "Filer CIK"),
			},
		},
		{
			Name:        "disclosure_holders_latest",
			Description: "Funds that most recently disclosed holding a symbol.",
			Path:        "stable/funds/disclosure-holders-latest",
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Ticker symbol, e.g. AAPL"),
			},
		},
		{
			Name:        "disclosure_dates",
			Description: "Available disclosure dates for a fund.",
			Path:        "stable/funds/disclosure-dates",
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Fund symbol, e.g. SPY"),
				mcp.StringParam("cik", "Filer CIK"),
			},
		},
	}
}
