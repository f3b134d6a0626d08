package domain_test

import (
	"testing"

	"github.com/duocun-ca/ledgercore/internal/core/domain"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeCharge(t *testing.T) {
	type chargeTest struct {
		name          string
		items         []domain.OrderItem
		tips          decimal.Decimal
		groupDiscount decimal.Decimal
		overRange     decimal.Decimal
		expPrice      string
		expCost       string
		expTax        string
		expTotal      string
	}

	tests := []chargeTest{
		{
			name: "single line with tax ceiling",
			items: []domain.OrderItem{
				{
					ProductID: "P1",
					Price:     decimal.MustParse("10.00"),
					Cost:      decimal.MustParse("6.00"),
					Quantity:  1,
					TaxRate:   decimal.MustParse("13"),
				},
			},
			tips:          decimal.Zero,
			groupDiscount: decimal.Zero,
			overRange:     decimal.Zero,
			expPrice:      "10.00",
			expCost:       "6.00",
			expTax:        "1.30",
			expTotal:      "11.30",
		},
		{
			name: "tax ceils per line, not rounds",
			items: []domain.OrderItem{
				{
					ProductID: "P1",
					Price:     decimal.MustParse("3.33"),
					Cost:      decimal.MustParse("2.00"),
					Quantity:  1,
					TaxRate:   decimal.MustParse("13"),
				},
			},
			tips:          decimal.Zero,
			groupDiscount: decimal.Zero,
			overRange:     decimal.Zero,
			// 3.33 * 13 = 43.29 -> ceil 44 -> 0.44
			expPrice: "3.33",
			expCost:  "2.00",
			expTax:   "0.44",
			expTotal: "3.77",
		},
		{
			name: "multi line with tips and discount",
			items: []domain.OrderItem{
				{
					ProductID: "P1",
					Price:     decimal.MustParse("10.00"),
					Cost:      decimal.MustParse("6.00"),
					Quantity:  3,
					TaxRate:   decimal.MustParse("13"),
				},
				{
					ProductID: "P2",
					Price:     decimal.MustParse("5.50"),
					Cost:      decimal.MustParse("3.25"),
					Quantity:  2,
					TaxRate:   decimal.Zero,
				},
			},
			tips:          decimal.MustParse("2.00"),
			groupDiscount: decimal.MustParse("1.50"),
			overRange:     decimal.MustParse("0.75"),
			// price = 30.00 + 11.00, tax = ceil(30*13)/100 = 3.90
			expPrice: "41.00",
			expCost:  "24.50",
			expTax:   "3.90",
			expTotal: "46.15",
		},
		{
			name:          "empty items",
			items:         nil,
			tips:          decimal.Zero,
			groupDiscount: decimal.Zero,
			overRange:     decimal.Zero,
			expPrice:      "0.00",
			expCost:       "0.00",
			expTax:        "0.00",
			expTotal:      "0.00",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			charge, err := domain.ComputeCharge(test.items, test.tips, test.groupDiscount, test.overRange)
			assert.NoError(t, err)

			assert.Equal(t, test.expPrice, charge.Price.String())
			assert.Equal(t, test.expCost, charge.Cost.String())
			assert.Equal(t, test.expTax, charge.Tax.String())
			assert.Equal(t, test.expTotal, charge.Total.String())
		})
	}
}
