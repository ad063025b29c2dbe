package shredder

import (
	"testing"
	"time"

	"github.com/dball/riveter/internal/params"
	"github.com/dball/riveter/internal/structs/models"
	"github.com/stretchr/testify/assert"
)

func TestShred(t *testing.T) {
	type person struct {
		Name      string     `attr:"name"`
		UUID      string     `attr:"uuid,ignoreempty"`
		Age       int        `attr:"age,ignoreempty"`
		Pets      *int       `attr:"pets"`
		Tags      []string   `attr:"tags"`
		Birthdate time.Time  `attr:"birthdate,ignoreempty"`
		Deathdate *time.Time `attr:"deathdate"`
		Nickname  string
	}
	analyzer := models.BuildCachingAnalyzer()

	t.Run("struct", func(t *testing.T) {
		epoch := time.Date(1969, 7, 20, 20, 17, 54, 0, time.UTC)
		p := person{Name: "Donald", Age: 48, Tags: []string{"a"}, Birthdate: epoch, Nickname: "Don"}
		m, err := Shred(analyzer, p)
		assert.NoError(t, err)
		assert.Equal(t, []string{"name", "uuid", "age", "pets", "tags", "birthdate", "deathdate"}, m.Keys())
		assert.Equal(t, map[string]any{
			"name":      "Donald",
			"uuid":      nil,
			"age":       48,
			"pets":      nil,
			"tags":      []any{"a"},
			"birthdate": epoch,
			"deathdate": nil,
		}, m.Map())
		assert.Equal(t, map[string]any{"name": "Donald", "age": 48, "tags": []any{"a"}, "birthdate": epoch}, params.CleanMapping(m).Map())
	})

	t.Run("pointer", func(t *testing.T) {
		pets := 0
		m, err := Shred(analyzer, &person{Pets: &pets})
		assert.NoError(t, err)
		v, _ := m.Get("pets")
		assert.Equal(t, params.Scalar{V: 0}, v)
		v, _ = m.Get("age")
		assert.Equal(t, params.Scalar{}, v)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := Shred(analyzer, (*person)(nil))
		assert.Error(t, err)
		_, err = Shred(analyzer, 23)
		assert.Error(t, err)
		_, err = Shred(analyzer, nil)
		assert.Error(t, err)
	})
}
