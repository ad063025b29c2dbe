package schema

import (
	"errors"
	"strings"
	"testing"
	"time"

	. "github.com/dball/riveter/internal/types"
	"github.com/dball/riveter/pkg/attributes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderSchema = `
class: Order
location: America/New_York
models:
  Product:
    "1": {name: Widget}
    "2": {name: Gadget}
attributes:
  - {name: status, type: enum, enum: {name: Status, members: [Draft, Placed]}, default: Draft}
  - {name: quantity, type: integer, default: 1, required: true}
  - {name: items, type: array, of: integer}
  - {name: product, type: model, model: Product}
  - {name: term, type: date_range, between: 2000-01-01..2100-01-01}
  - {name: placed_at, type: time}
  - {name: kind, type: enum, enum: {name: Kind, members: [a, b]}, lenient: true}
`

func TestLoad(t *testing.T) {
	class, err := Load(strings.NewReader(orderSchema))
	require.NoError(t, err)
	assert.Equal(t, "Order", class.Name())
	defs := class.Attributes()
	require.Len(t, defs, 7)
	assert.Equal(t, "status", defs[0].Name())
	assert.Equal(t, attributes.TypeEnum, defs[0].Type())
	assert.True(t, defs[1].Required())
	assert.Equal(t, attributes.TypeInteger, defs[2].Of())
	bounds, ok := defs[4].Bounds()
	assert.True(t, ok)
	assert.Equal(t, DateRange{From: NewDate(2000, 1, 1), To: NewDate(2100, 1, 1)}, bounds)

	inst, err := class.New()
	require.NoError(t, err)
	status, _ := inst.Get("status")
	assert.Equal(t, "Draft", status.(attributes.Member).Key)
	quantity, _ := inst.Get("quantity")
	assert.Equal(t, int64(1), quantity)

	require.NoError(t, inst.AssignParams(map[string]any{
		"product":   1,
		"placed_at": "2010-01-12 14:56:00",
		"items":     []any{"1", "", "3"},
		"kind":      "c",
	}))
	product, err := attributes.Value[*Fixture](inst, "product")
	require.NoError(t, err)
	assert.Equal(t, "Widget", product.Fields["name"])
	assert.Equal(t, "Product#1", product.String())
	placedAt, _ := attributes.Value[time.Time](inst, "placed_at")
	assert.Equal(t, 19, placedAt.UTC().Hour())
	items, _ := inst.Get("items")
	assert.Equal(t, []any{int64(1), int64(3)}, items)
	kind, _ := inst.Get("kind")
	assert.Nil(t, kind)

	require.NoError(t, inst.Set("product", "404"))
	product, _ = attributes.Value[*Fixture](inst, "product")
	assert.Nil(t, product)

	model, err := class.ModelFor("product")
	assert.NoError(t, err)
	assert.Equal(t, FixtureType, model)
}

func TestFixtureModels(t *testing.T) {
	class, err := Load(strings.NewReader(`
class: Order
models:
  Product:
    "1": {name: Widget}
  Customer:
    "1": {name: Alice}
attributes:
  - {name: product, type: model, model: Product}
  - {name: customer, type: model, model: Customer}
`))
	require.NoError(t, err)
	inst, err := class.New()
	require.NoError(t, err)
	require.NoError(t, inst.AssignParams(map[string]any{"product": "1", "customer": 1}))
	product, _ := attributes.Value[*Fixture](inst, "product")
	customer, _ := attributes.Value[*Fixture](inst, "customer")
	require.NotNil(t, product)
	require.NotNil(t, customer)
	assert.Equal(t, "Product#1", product.String())
	assert.Equal(t, "Customer#1", customer.String())

	require.NoError(t, inst.Set("customer", product))
	value, _ := inst.Get("customer")
	assert.Nil(t, value, "a fixture of another model is not a customer")
	require.NoError(t, inst.Set("product", product))
	value, _ = inst.Get("product")
	assert.Same(t, product, value)
}

func TestLoadOptions(t *testing.T) {
	class, err := Load(strings.NewReader(orderSchema), attributes.WithLocation(time.UTC))
	require.NoError(t, err)
	inst, err := class.New()
	require.NoError(t, err)
	require.NoError(t, inst.Set("placed_at", "2010-01-12 14:56:00"))
	placedAt, _ := attributes.Value[time.Time](inst, "placed_at")
	assert.Equal(t, 14, placedAt.Hour())
	assert.True(t, errors.Is(inst.Set("status", "Bogus"), attributes.ErrInvalidEnumValue))
}

func TestLoadErrors(t *testing.T) {
	examples := []string{
		``,
		`attributes: []`,
		`class: A
bogus: true`,
		`class: A
location: Nowhere/Special`,
		`class: A
attributes: [{name: a, type: strung}]`,
		`class: A
attributes: [{name: a, type: array, of: strung}]`,
		`class: A
attributes: [{name: a, type: model, model: Missing}]`,
		`class: A
attributes: [{name: a, type: date_range, between: yesterday}]`,
		`class: A
attributes: [{name: a, type: enum, enum: {name: E, members: [x]}, lenient: true, strict: true}]`,
		`class: A
attributes: [{name: a, type: string}, {name: a, type: string}]`,
		`class: A
attributes: [{name: a, type: enum}]`,
	}
	for _, doc := range examples {
		class, err := Load(strings.NewReader(doc))
		assert.Error(t, err, doc)
		assert.Nil(t, class, doc)
	}
	_, err := Load(strings.NewReader(`class: A
attributes: [{name: a, type: string}, {name: a, type: string}]`))
	assert.True(t, errors.Is(err, attributes.ErrDuplicateAttribute))
}
