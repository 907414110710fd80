// Package pricing calcula los montos derivados de una orden (servicio de dominio).
// lineTotal = unitPrice*quantity - discount; subtotal = Σ lineTotal;
// tax = subtotal * 10%; total = subtotal + tax + costo de envío plano.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/portal-empleados-api/internal/domain/entity"
)

// TaxRate IVA plano del 10% sobre el subtotal.
var TaxRate = decimal.NewFromFloat(0.10)

// ShippingCost costo de envío plano por orden.
var ShippingCost = decimal.NewFromFloat(15.00)

// Totals agregados monetarios derivados de los items.
type Totals struct {
	SubTotal     decimal.Decimal
	Tax          decimal.Decimal
	ShippingCost decimal.Decimal
	Total        decimal.Decimal
}

// ComputeTotals recalcula TotalPrice de cada item (in place) y devuelve los
// agregados. Debe correrse en la creación y en cada mutación que reemplace
// items; los agregados nunca se arrastran de un valor anterior.
func ComputeTotals(items []entity.OrderItem, shippingCost decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for i := range items {
		qty := decimal.NewFromInt(int64(items[i].Quantity))
		items[i].TotalPrice = items[i].UnitPrice.Mul(qty).Sub(items[i].Discount)
		subtotal = subtotal.Add(items[i].TotalPrice)
	}
	tax := subtotal.Mul(TaxRate)
	return Totals{
		SubTotal:     subtotal,
		Tax:          tax,
		ShippingCost: shippingCost,
		Total:        subtotal.Add(tax).Add(shippingCost),
	}
}
