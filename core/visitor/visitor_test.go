package visitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisitors(t *testing.T) {
	assert.Equal(t, Small, Deliver[VanillaIceCream](VisitorA{Contract: 5}).ScoopType)
	assert.Equal(t, Medium, Deliver[BlueBerryIceCream](VisitorB{Contract: 8}).ScoopType)
	assert.Equal(t, Large, Deliver[SpanishDelightIceCream](VisitorC{Contract: 10}).ScoopType)
}

func TestBands(t *testing.T) {
	tests := []struct {
		contract int64
		a, b, c  Scoop
	}{
		{0, Large, Large, Large},
		{1, Small, Small, Small},
		{2, Small, Small, Small},
		{3, Small, Small, Medium},
		{5, Small, Small, Medium},
		{6, Medium, Small, Medium},
		{7, Medium, Small, Medium},
		{8, Medium, Medium, Large},
		{10, Medium, Medium, Large},
		{11, Large, Medium, Large},
		{20, Large, Medium, Large},
		{21, Large, Large, Large},
		{-3, Large, Large, Large},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.a, VisitorA{tt.contract}.Visit().ScoopType, "A(%d)", tt.contract)
		assert.Equal(t, tt.b, VisitorB{tt.contract}.Visit().ScoopType, "B(%d)", tt.contract)
		assert.Equal(t, tt.c, VisitorC{tt.contract}.Visit().ScoopType, "C(%d)", tt.contract)
	}
}

func TestScoopString(t *testing.T) {
	assert.Equal(t, "medium", Medium.String())
	assert.Equal(t, "unknown", Scoop(9).String())
}
