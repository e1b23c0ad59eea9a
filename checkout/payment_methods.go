package checkout

const (
	PaymentTransfer = "transfer"
	PaymentEWallet  = "ewallet"
	PaymentCredit   = "credit"
	PaymentCOD      = "cod"
)

type PaymentMethod struct {
	Value       string `json:"value"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var PaymentMethods = []PaymentMethod{
	{Value: PaymentTransfer, Name: "Transfer Bank", Description: "BCA, Mandiri, BNI, BRI"},
	{Value: PaymentEWallet, Name: "E-Wallet", Description: "OVO, GoPay, DANA, ShopeePay"},
	{Value: PaymentCredit, Name: "Kartu Kredit", Description: "Visa, Mastercard, JCB"},
	{Value: PaymentCOD, Name: "Bayar di Tempat (COD)", Description: "Bayar saat barang diterima"},
}
