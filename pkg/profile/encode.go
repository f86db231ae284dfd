package profile

import (
	"summit/pkg/domain"

	"github.com/go-faster/jx"
)

// Encode renders p in the wire form accepted by Parse.
func Encode(p domain.Profile) []byte {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart(fieldName)
	e.Str(p.Name)
	e.FieldStart(fieldCardLastFour)
	e.Str(p.CardLastFour)
	e.FieldStart(fieldTransactions)
	e.ArrStart()
	for _, tx := range p.Transactions() {
		e.ObjStart()
		e.FieldStart(fieldMerchant)
		e.Str(tx.Merchant)
		e.FieldStart(fieldAmount)
		e.Str(tx.Amount)
		e.ObjEnd()
	}
	e.ArrEnd()
	e.ObjEnd()

	return e.Bytes()
}
