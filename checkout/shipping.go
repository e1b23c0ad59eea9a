package checkout

const (
	ShippingRegular = "regular"
	ShippingExpress = "express"
	ShippingInstant = "instant"

	FreeShippingThreshold int64 = 500000
)

type ShippingOption struct {
	Value         string `json:"value"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Price         int64  `json:"price"`
	EstimatedDays string `json:"estimated_days"`
}

var ShippingOptions = []ShippingOption{
	{Value: ShippingRegular, Name: "Reguler", Description: "JNE/J&T/SiCepat", Price: 25000, EstimatedDays: "2-3 hari"},
	{Value: ShippingExpress, Name: "Express", Description: "Same Day/Next Day", Price: 35000, EstimatedDays: "1-2 hari"},
	{Value: ShippingInstant, Name: "Instant", Description: "GoSend/GrabExpress", Price: 50000, EstimatedDays: "2-4 jam"},
}

func GetShippingOption(value string) (ShippingOption, bool) {
	for _, o := range ShippingOptions {
		if o.Value == value {
			return o, true
		}
	}
	return ShippingOption{}, false
}

// CalculateShippingCost prices a method for a subtotal. Unknown methods cost nothing
// and regular shipping is free from FreeShippingThreshold upwards.
func CalculateShippingCost(method string, subtotal int64) int64 {
	opt, ok := GetShippingOption(method)
	if !ok {
		return 0
	}
	if method == ShippingRegular && subtotal >= FreeShippingThreshold {
		return 0
	}
	return opt.Price
}
