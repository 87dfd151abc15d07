package tools

func getTreasuryYields() *Descriptor {
	return &Descriptor{
		Name:        "get_treasury_yields",
		Description: "Get treasury yield data.",
		Path:        "/v1/indicators/treasury-yield",
		Params: []Param{
			{Name: "date", Type: TypeDate, Description: "Date for the yield data", In: InQuery},
			{Name: "limit", Type: TypeInteger, Description: "Limit the number of results", In: InQuery},
			{Name: "sort", Type: TypeString, Description: "Sort field (date, yield_2_yr, yield_5_yr, yield_10_yr, yield_30_yr)", In: InQuery},
			{Name: "order", Type: TypeEnum, Description: "Sort order", Enum: []string{"asc", "desc"}, In: InQuery},
		},
	}
}

func getInflationData() *Descriptor {
	return &Descriptor{
		Name:        "get_inflation_data",
		Description: "Get inflation data from the Federal Reserve.",
		Path:        "/v1/indicators/inflation",
		Params: []Param{
			{Name: "date", Type: TypeDate, Description: "Date for the inflation data", In: InQuery},
			{Name: "limit", Type: TypeInteger, Description: "Limit the number of results", In: InQuery},
			{Name: "sort", Type: TypeString, Description: "Sort field (date, value, etc.)", In: InQuery},
		},
	}
}
