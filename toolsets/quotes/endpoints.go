package quotes

import "fmpmcp/internal/mcp"

func endpoints() []mcp.Endpoint {
	return []mcp.Endpoint{
		{
			Name:        "quote",
			Description: "Real-time quote with price, volume and day range for one symbol.",
			Path:        "stable/quote",
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Ticker symbol, e.g. AAPL"),
			},
		},
		{
			Name:        "quote_short",
			Description: "Compact real-time quote with price and volume only.",
			Path:        "stable/quote-short",
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Ticker symbol, e.g. AAPL"),
			},
		},
		{
			Name:        "aftermarket_trade",
			Description: "Latest after-hours trade for a symbol.",
			Path:        "stable/aftermarket-trade",
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Ticker symbol, e.g. AAPL"),
			},
		},
		{
			Name:        "aftermarket_quote",
			Description: "Latest after-hours bid and ask for a symbol.",
			Path:        "stable/aftermarket-quote",
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Ticker symbol, e.g. AAPL"),
			},
		},
		{
			Name:        "price_change",
			Description: "Price change of a symbol over standard horizons (1D to max).",
			Path:        "stable/stock-price-change",
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Ticker symbol, e.g. AAPL"),
			},
		},
		{
			Name:        "batch_quote",
			Description: "Real-time quotes for multiple symbols in one call.",
			Path:        "stable/batch-quote",
			Params: []mcp.Param{
				mcp.RequiredParam("symbols", "Comma-separated ticker symbols, e.g. AAPL,MSFT"),
			},
		},
		{
			Name:        "batch_quote_short",
			Description: "Compact quotes for multiple symbols in one call.",
			Path:        "stable/batch-quote-short",
			Params: []mcp.Param{
				mcp.RequiredParam("symbols", "Comma-separated ticker symbols, e.g. AAPL,MSFT"),
			},
		},
		{
			Name:        "exchange_quotes",
			Description: "Quotes for every symbol on one exchange.",
			Path:        "stable/batch-exchange-quote",
			Params: []mcp.Param{
				mcp.RequiredParam("exchange", "Exchange code, e.g. NASDAQ"),
				mcp.BoolParam("short", "Return compact quotes"),
			},
		},
		{
			Name:        "mutual_fund_quotes",
			Description: "Quotes for all mutual funds.",
			Path:        "stable/batch-mutualfund-quotes",
			Params: []mcp.Param{
				mcp.BoolParam("short", "Return compact quotes"),
			},
		},
		{
			Name:        "etf_quotes",
			Description: "Quotes for all ETFs.",
			Path:        "stable/batch-etf-quotes",
			Params: []mcp.Param{
				mcp.BoolParam("short", "Return compact quotes"),
			},
		},
	}
}
