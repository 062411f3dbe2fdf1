package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOneLine(t *testing.T) {
	assert.Equal(t, "", OneLine(nil))
	assert.Equal(t, "", OneLine("   "))
	assert.Equal(t, "a b c", OneLine("  a \t b\n c "))
	assert.Equal(t, "150", OneLine(150.0))
	assert.Equal(t, "12.5", OneLine(12.5))
	assert.Equal(t, "true", OneLine(true))
}

func TestFloat(t *testing.T) {
	assert.Equal(t, 12.5, Float("12.5", 0))
	assert.Equal(t, 12.5, Float("12,5", 0))
	assert.Equal(t, 150.0, Float(150.0, 0))
	assert.Equal(t, 7.0, Float("garbage", 7))
	assert.Equal(t, 7.0, Float(nil, 7))
	assert.Equal(t, 7.0, Float("", 7))
}

func TestInt(t *testing.T) {
	assert.Equal(t, 3, Int("3", 0))
	assert.Equal(t, 3, Int("3.0", 0))
	assert.Equal(t, 3, Int("3,7", 0))
	assert.Equal(t, 3, Int(3.9, 0))
	assert.Equal(t, 5, Int("garbage", 5))
	assert.Equal(t, 5, Int(nil, 5))
}

func TestBool(t *testing.T) {
	for _, v := range []string{"1", "true", "yes", "y", "on", "TRUE", "Да"} {
		assert.True(t, Bool(v, false), v)
	}
	assert.False(t, Bool("0", true))
	assert.False(t, Bool("anything-else", true))
	assert.True(t, Bool(nil, true))
	assert.True(t, Bool("", true))
	assert.False(t, Bool("", false))
	assert.True(t, Bool(true, false))
	assert.False(t, Bool(false, true))
}

func TestTags(t *testing.T) {
	assert.Nil(t, Tags(nil))
	assert.Nil(t, Tags(""))
	assert.Equal(t, []string{"a", "b"}, Tags("a, b"))
	assert.Equal(t, []string{"a", "b"}, Tags([]any{" a ", "", "b"}))
	// first-appearance order kept, no dedup
	assert.Equal(t, []string{"b", "a", "b"}, Tags("b,a,b"))
}

func TestSpecs(t *testing.T) {
	assert.Equal(t, "", Specs(nil))
	assert.Equal(t, "oled 6.1", Specs("  oled   6.1 "))
	assert.Equal(t, "RAM: 8GB", Specs(map[string]any{"RAM": "8GB", "Color": ""}))
	assert.Equal(t, "Color: black; RAM: 8GB", Specs(map[string]any{"RAM": "8GB", "Color": "black"}))
	// value survives an empty key
	assert.Equal(t, "8GB", Specs(map[string]any{"": "8GB"}))
	assert.Equal(t, "a; b", Specs([]any{"a", " ", "b"}))
	assert.Equal(t, "42", Specs(42))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Samsung", Title("samsung"))
	assert.Equal(t, "", Title("  "))
	assert.Equal(t, "Зарядка", Title("зарядка"))
}
