package news

import "fmpmcp/internal/mcp"

func endpoints() []mcp.Endpoint {
	latest := func(name, description, path string) mcp.Endpoint {
		return mcp.Endpoint{
			Name:        name,
			Description: description,
			Path:        path,
			Params: []mcp.Param{
				mcp.StringParam("from", "Start date (YYYY-MM-DD)"),
				mcp.StringParam("to", "End date (YYYY-MM-DD)"),
				mcp.NumberParam("page", "Page number"),
				mcp.NumberParam("limit", "Maximum number of results"),
			},
		}
	}
	bySymbols := func(name, description, path string) mcp.Endpoint {
		return mcp.Endpoint{
			Name:        name,
			Description: description,
			Path:        path,
			Params: []mcp.Param{
				mcp.RequiredParam("symbols", "Comma-separated ticker symbols, e.g. AAPL,MSFT"),
				mcp.StringParam("from", "Start date (YYYY-MM-DD)"),
				mcp.StringParam("to", "End date (YYYY-MM-DD)"),
				mcp.NumberParam("page", "Page number"),
				mcp.NumberParam("limit", "Maximum number of results"),
			},
		}
	}
	return []mcp.Endpoint{
		{
			Name:        "fmp_articles",
			Description: "Articles published by Financial Modeling Prep.",
			Path:        "stable/fmp-articles",
			Params: []mcp.Param{
				mcp.NumberParam("page", "Page number"),
				mcp.NumberParam("limit", "Maximum number of results"),
			},
		},
		latest("general_latest", "Latest general financial news.", "stable/news/general-latest"),
		latest("press_releases_latest", "Latest company press releases.", "stable/news/press-releases-latest"),
		latest("stock_latest", "Latest stock market news.", "stable/news/stock-latest"),
		latest("crypto_latest", "Latest cryptocurrency news.", "stable/news/crypto-latest"),
		latest("forex_latest", "Latest foreign exchange news.", "stable/news/forex-latest"),
		bySymbols("press_releases", "Press releases for specific symbols.", "stable/news/press-releases"),
		bySymbols("stock", "Stock news for specific symbols.", "stable/news/stock"),
		bySymbols("crypto", "Cryptocurrency news for specific pairs.", "stable/news/crypto"),
		bySymbols("forex", "Foreign exchange news for specific pairs.", "stable/news/forex"),
	}
}
