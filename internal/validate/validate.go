package validate

import (
	"reflect"

	"github.com/shopspring/decimal"
)

// DecimalValue lets validator treat decimal.Decimal fields as plain numbers so
// numeric tags like gt=0 apply. Register with RegisterCustomTypeFunc.
func DecimalValue(v reflect.Value) interface{} {
	d, ok := v.Interface().(decimal.Decimal)
	if !ok {
		return nil
	}
	f, _ := d.Float64()
	return f
}
