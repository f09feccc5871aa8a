package chart

import "fmpmcp/internal/mcp"

func endpoints() []mcp.Endpoint {
	eod := func(name, description, path string) mcp.Endpoint {
		return mcp.Endpoint{
			Name:        name,
			Description: description,
			Path:        path,
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Ticker symbol, e.g. AAPL"),
				mcp.StringParam("from", "Start date (YYYY-MM-DD)"),
				mcp.StringParam("to", "End date (YYYY-MM-DD)"),
			},
		}
	}
	intraday := func(interval string) mcp.Endpoint {
		return mcp.Endpoint{
			Name:        "intraday_" + interval,
			Description: "Intraday OHLCV bars at " + interval + " intervals.",
			Path:        "stable/historical-chart/" + interval,
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Ticker symbol, e.g. AAPL"),
				mcp.StringParam("from", "Start date (YYYY-MM-DD)"),
				mcp.StringParam("to", "End date (YYYY-MM-DD)"),
				mcp.BoolParam("nonadjusted", "Skip split adjustment"),
			},
		}
	}
	return []mcp.Endpoint{
		eod("light", "Daily close price and volume history.", "stable/historical-price-eod/light"),
		eod("full", "Daily OHLCV history with VWAP and change.", "stable/historical-price-eod/full"),
		eod("unadjusted", "Daily price history without split adjustment.", "stable/historical-price-eod/non-split-adjusted"),
		eod("dividend_adjusted", "Daily price history adjusted for dividends.", "stable/historical-price-eod/dividend-adjusted"),
		intraday("1min"),
		intraday("5min"),
		intraday("15min"),
		intraday("30min"),
		intraday("1hour"),
		intraday("4hour"),
	}
}
