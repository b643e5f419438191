package kdtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPoint(t *testing.T) {
	values := []int{2, 3, 5}
	p := NewPoint(values...)
	values[0] = 100

	assert.Equal(t, 3, p.NumDims())
	assert.Equal(t, 2, p.At(0), "NewPoint must copy its arguments")
	assert.Equal(t, []int{2, 3, 5}, p.Coords())

	coords := p.Coords()
	coords[1] = 100
	assert.Equal(t, 3, p.At(1), "Coords must return a copy")

	p.Set(2, 7)
	assert.Equal(t, 7, p.At(2))
}

func TestPointEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Point[float64]
		want bool
	}{
		{"Same", NewPoint(1.0, 2.0), NewPoint(1.0, 2.0), true},
		{"DifferentLast", NewPoint(1.0, 2.0), NewPoint(1.0, 2.5), false},
		{"DifferentFirst", NewPoint(0.0, 2.0), NewPoint(1.0, 2.0), false},
		{"DifferentDims", NewPoint(1.0, 2.0), NewPoint(1.0, 2.0, 3.0), false},
		{"BothNil", nil, nil, true},
		{"OneNil", NewPoint(1.0), nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
		})
	}
}

func TestPointEqualIgnoresData(t *testing.T) {
	a := NewPoint(1, 2)
	a.Data = "a"
	b := NewPoint(1, 2)
	b.Data = "b"
	assert.True(t, a.Equal(b))
}

func TestPointString(t *testing.T) {
	assert.Equal(t, "8 1", NewPoint(8, 1).String())
	assert.Equal(t, "1.5 -2 0", NewPoint(1.5, -2, 0).String())
	assert.Equal(t, "", NewPoint[int]().String())
}
