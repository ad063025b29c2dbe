package attributes

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var statusEnum = NewEnum("Status", "Draft", "Placed")

type order struct {
	Name     string   `attr:"name,required"`
	Quantity int      `attr:"quantity,default=1"`
	Status   string   `attr:"status,type=enum"`
	Placed   *Date    `attr:"placed"`
	Tags     []string `attr:"tags"`
	Notes    string   `attr:"notes,ignoreempty"`
	Internal string
}

func orderClass(t *testing.T) (class *Class) {
	class = NewClass("Order")
	_, err := DeclareStruct(class, reflect.TypeOf(&order{}), map[string][]Option{
		"status": {WithEnum(statusEnum), Default("Draft")},
	})
	require.NoError(t, err)
	return
}

func TestDeclareStruct(t *testing.T) {
	class := orderClass(t)
	defs := class.Attributes()
	names := make([]string, len(defs))
	for i, def := range defs {
		names[i] = def.Name()
	}
	assert.Equal(t, []string{"name", "quantity", "status", "placed", "tags", "notes"}, names)
	assert.True(t, defs[0].Required())
	assert.Equal(t, TypeDate, defs[3].Type())
	assert.Equal(t, TypeArray, defs[4].Type())

	inst, err := class.New()
	require.NoError(t, err)
	quantity, _ := inst.Get("quantity")
	assert.Equal(t, int64(1), quantity)
	status, _ := inst.Get("status")
	assert.Equal(t, statusEnum.Member("Draft"), status)
}

func TestDeclareStructErrors(t *testing.T) {
	class := NewClass("Order")
	_, err := DeclareStruct(class, reflect.TypeOf(order{}), map[string][]Option{
		"status":  {WithEnum(statusEnum)},
		"missing": {Required()},
	})
	assert.True(t, errors.Is(err, Error{Code: "attributes.unknownField"}))
	assert.Empty(t, class.Attributes(), "nothing is declared")

	_, err = DeclareStruct(class, reflect.TypeOf(order{}), nil)
	assert.Error(t, err, "enums require their enum type")

	_, err = DeclareStruct(class, reflect.TypeOf(""), nil)
	assert.Error(t, err)
}

func TestAssignStruct(t *testing.T) {
	inst, err := orderClass(t).New()
	require.NoError(t, err)
	require.NoError(t, inst.AssignStruct(&order{Name: "Widget", Quantity: 3, Status: "Placed", Tags: []string{"a", ""}}))
	assert.Equal(t, map[string]any{
		"name":     "Widget",
		"quantity": int64(3),
		"status":   statusEnum.Member("Placed"),
		"placed":   nil,
		"tags":     []any{"a"},
		"notes":    nil,
	}, inst.Attributes())

	assert.True(t, errors.Is(inst.AssignStruct(order{Status: "Bogus"}), ErrInvalidEnumValue))
	assert.Error(t, inst.AssignStruct((*order)(nil)))
}

func TestDecode(t *testing.T) {
	inst, err := orderClass(t).New()
	require.NoError(t, err)
	require.NoError(t, inst.AssignParams(map[string]any{
		"name":   "Widget",
		"placed": "2010-01-12",
		"tags":   []any{"a", "b"},
	}))
	var out order
	require.NoError(t, inst.Decode(&out))
	placed := NewDate(2010, 1, 12)
	assert.Equal(t, order{
		Name:     "Widget",
		Quantity: 1,
		Status:   "Draft",
		Placed:   &placed,
		Tags:     []string{"a", "b"},
	}, out)

	assert.Error(t, inst.Decode(out))
}
