package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, body string) map[string]any {
	t.Helper()

	m, err := Parse([]byte(body))
	require.NoError(t, err)
	return m
}

func TestParseRejectsInvalidJSON(t *testing.T) {
	_, err := Parse([]byte("{"))
	assert.Error(t, err)

	_, err = Parse([]byte(""))
	assert.Error(t, err)
}

func TestInt(t *testing.T) {
	m := parse(t, `{"a": 3, "b": 3.5, "c": 3.0, "d": "3", "e": true}`)

	v, ok := Int(m, "a")
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = Int(m, "b")
	assert.False(t, ok, "fractional numbers are not integers")

	// json.Number keeps the literal, so 3.0 is not an int either
	_, ok = Int(m, "c")
	assert.False(t, ok)

	_, ok = Int(m, "d")
	assert.False(t, ok)

	_, ok = Int(m, "e")
	assert.False(t, ok)

	_, ok = Int(m, "missing")
	assert.False(t, ok)
}

func TestNumber(t *testing.T) {
	m := parse(t, `{"a": 3, "b": 3.5, "c": "3"}`)

	v, ok := Number(m, "a")
	assert.True(t, ok)
	assert.Equal(t, 3.0, v)

	v, ok = Number(m, "b")
	assert.True(t, ok)
	assert.Equal(t, 3.5, v)

	_, ok = Number(m, "c")
	assert.False(t, ok)
}

func TestBool(t *testing.T) {
	m := parse(t, `{"a": true, "b": 1, "c": "true"}`)

	v, ok := Bool(m, "a")
	assert.True(t, ok)
	assert.True(t, v)

	_, ok = Bool(m, "b")
	assert.False(t, ok, "truthy numbers are not booleans")

	_, ok = Bool(m, "c")
	assert.False(t, ok)
}

func TestStringSliceObject(t *testing.T) {
	m := parse(t, `{"s": "hi", "l": [1, 2], "o": {"k": "v"}, "n": null}`)

	s, ok := String(m, "s")
	assert.True(t, ok)
	assert.Equal(t, "hi", s)

	l, ok := Slice(m, "l")
	assert.True(t, ok)
	assert.Len(t, l, 2)

	o, ok := Object(m, "o")
	assert.True(t, ok)
	assert.Equal(t, "v", o["k"])

	_, ok = String(m, "n")
	assert.False(t, ok)
	_, ok = Slice(m, "s")
	assert.False(t, ok)
	_, ok = Object(m, "l")
	assert.False(t, ok)
}

func TestAsInt(t *testing.T) {
	v, ok := AsInt(7)
	assert.True(t, ok)
	assert.Equal(t, 7, v)

	v, ok = AsInt(7.0)
	assert.True(t, ok)
	assert.Equal(t, 7, v)

	_, ok = AsInt(7.5)
	assert.False(t, ok)

	_, ok = AsInt("7")
	assert.False(t, ok)

	_, ok = AsInt(nil)
	assert.False(t, ok)
}
