package tools

func getOptionsContracts() *Descriptor {
	return &Descriptor{
		Name:        "get_options_contracts",
		Description: "Get options contracts for a stock.",
		Path:        "/v3/reference/options/contracts",
		Params: []Param{
			{Name: "underlying_asset", Type: TypeString, Description: "Stock ticker symbol", Required: true, In: InQuery, Uppercase: true},
			{Name: "contract_type", Type: TypeEnum, Description: "Type of option", Enum: []string{"call", "put"}, In: InQuery},
			{Name: "strike_price", Type: TypeNumber, Description: "Strike price of the option", In: InQuery},
			{Name: "expiration_date", Type: TypeDate, Description: "Expiration date (YYYY-MM-DD)", In: InQuery},
			{Name: "limit", Type: TypeInteger, Description: "Limit the number of results", In: InQuery},
		},
	}
}

func getOptionsSnapshot() *Descriptor {
	return &Descriptor{
		Name:        "get_options_snapshot",
		Description: "Get real-time options snapshot data.",
		Path:        "/v3/snapshot/options/{underlying_asset}",
		Params: []Param{
			{Name: "underlying_asset", Type: TypeString, Description: "Stock ticker symbol", Required: true, In: InPath, Uppercase: true},
			{Name: "strike_price", Type: TypeNumber, Description: "Strike price of the option", In: InQuery},
			{Name: "expiration_date", Type: TypeDate, Description: "Expiration date (YYYY-MM-DD)", In: InQuery},
			{Name: "contract_type", Type: TypeEnum, Description: "Type of option", Enum: []string{"call", "put"}, In: InQuery},
		},
	}
}
