package domain

import (
	"fmt"

	"github.com/govalues/decimal"
)

// Charge holds the monetary aggregates derived from an item set.
type Charge struct {
	Price decimal.Decimal
	Cost  decimal.Decimal
	Tax   decimal.Decimal
	Total decimal.Decimal
}

// ComputeCharge derives price, cost, tax and total from an item set.
// Tax uses a per-line ceiling of price*quantity*rate in cents, matching
// historical billing behavior. All aggregates are rounded to two decimals
// at the end, never per line.
func ComputeCharge(items []OrderItem, tips, groupDiscount, overRangeCharge decimal.Decimal) (Charge, error) {
	price := decimal.Zero
	cost := decimal.Zero
	tax := decimal.Zero

	for _, it := range items {
		qty, err := decimal.New(int64(it.Quantity), 0)
		if err != nil {
			return Charge{}, fmt.Errorf("math error: %w", err)
		}

		linePrice, err := it.Price.Mul(qty)
		if err != nil {
			return Charge{}, fmt.Errorf("math error: %w", err)
		}
		price, err = price.Add(linePrice)
		if err != nil {
			return Charge{}, fmt.Errorf("math error: %w", err)
		}

		lineCost, err := it.Cost.Mul(qty)
		if err != nil {
			return Charge{}, fmt.Errorf("math error: %w", err)
		}
		cost, err = cost.Add(lineCost)
		if err != nil {
			return Charge{}, fmt.Errorf("math error: %w", err)
		}

		// ceil(price * qty * rate) / 100
		lineTax, err := linePrice.Mul(it.TaxRate)
		if err != nil {
			return Charge{}, fmt.Errorf("math error: %w", err)
		}
		lineTax, err = lineTax.Ceil(0).Quo(decimal.Hundred)
		if err != nil {
			return Charge{}, fmt.Errorf("math error: %w", err)
		}
		tax, err = tax.Add(lineTax)
		if err != nil {
			return Charge{}, fmt.Errorf("math error: %w", err)
		}
	}

	total, err := price.Add(tax)
	if err != nil {
		return Charge{}, fmt.Errorf("math error: %w", err)
	}
	total, err = total.Add(tips)
	if err != nil {
		return Charge{}, fmt.Errorf("math error: %w", err)
	}
	total, err = total.Sub(groupDiscount)
	if err != nil {
		return Charge{}, fmt.Errorf("math error: %w", err)
	}
	total, err = total.Add(overRangeCharge)
	if err != nil {
		return Charge{}, fmt.Errorf("math error: %w", err)
	}

	return Charge{
		Price: price.Rescale(2),
		Cost:  cost.Rescale(2),
		Tax:   tax.Rescale(2),
		Total: total.Rescale(2),
	}, nil
}

// Apply writes the charge aggregates onto an order.
func (c Charge) Apply(o *Order) {
	o.Price = c.Price
	o.Cost = c.Cost
	o.Tax = c.Tax
	o.Total = c.Total
}
