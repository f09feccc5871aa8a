package senate

import "fmpmcp/internal/mcp"

func endpoints() []mcp.Endpoint {
	return []mcp.Endpoint{
		{
			Name:        "senate_latest",
			Description: "Latest US Senate financial disclosures.",
			Path:        "stable/senate-latest",
			Params: []mcp.Param{
				mcp.NumberParam("page", "Page number"),
				mcp.NumberParam("limit", "Maximum number of results"),
			},
		},
		{
			Name:        "senate_trades",
			Description: "Senate trades in one symbol.",
			Path:        "stable/senate-trades",
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Ticker symbol, e.g. AAPL"),
			},
		},
		{
			Name:        "senate_trades_by_name",
			Description: "Senate trades disclosed by one senator.",
			Path:        "stable/senate-trades-by-name",
			Params: []mcp.Param{
				mcp.RequiredParam("name", "Senator name, e.g. Tuberville"),
			},
		},
		{
			Name:        "house_latest",
			Description: "Latest US House financial disclosures.",
			Path:        "stable/house-latest",
			Params: []mcp.Param{
				mcp.NumberParam("page", "Page number"),
				mcp.NumberParam("limit", "Maximum number of results"),
			},
		},
		{
			Name:        "house_trades",
			Description: "House trades in one symbol.",
			Path:        "stable/house-trades",
			Params: []mcp.Param{
				mcp.RequiredParam("symbol", "Ticker symbol, e.g. AAPL"),
			},
		},
		{
			Name:        "house_trades_by_name",
			Description: "House trades disclosed by one representative.",
			Path:        "stable/house-trades-by-name",
			Params: []mcp.Param{
				mcp.RequiredParam("name", "Representative name, e.g. Pelosi"),
			},
		},
	}
}
