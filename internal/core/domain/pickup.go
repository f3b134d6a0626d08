package domain

type PickupStatus string

const (
	PickupStatusUnpicked        PickupStatus = "UNPICK_UP"
	PickupStatusPickedUp        PickupStatus = "PICKED_UP"
	PickupStatusPickedUpChanged PickupStatus = "PICKED_UP_BUT_CHANGED"
	PickupStatusDeleted         PickupStatus = "DELETED"
)

// Pickup is one cell of the driver loading sheet: how much of one product
// one driver must collect for one delivery date.
type Pickup struct {
	ID          string
	Driver      DriverRef
	DriverName  string
	ProductID   string
	ProductName string
	Quantity    int
	Status      PickupStatus
	DeliverDate string
}

func (p *Pickup) Key() string {
	return p.Driver.Key() + "-" + p.ProductID
}

type ManifestProduct struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
}

// ManifestLine is one order inside a payment-group manifest.
type ManifestLine struct {
	OrderCode    string            `json:"orderCode"`
	ClientName   string            `json:"clientName"`
	MerchantName string            `json:"merchantName"`
	Products     []ManifestProduct `json:"products"`
}

// PickupByOrder is the payment-group level manifest: which checkout batches
// one driver must collect for one delivery date. Quantity is a 0/1 assigned
// flag, not a sum.
type PickupByOrder struct {
	ID          string
	Driver      DriverRef
	DriverName  string
	PaymentID   string
	ClientName  string
	Lines       []ManifestLine
	Codes       []string
	Quantity    int
	Status      PickupStatus
	DeliverDate string
}

func (p *PickupByOrder) Key() string {
	return p.Driver.Key() + "-" + p.PaymentID
}
