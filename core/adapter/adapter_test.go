package adapter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConverterOnPrebuiltData(t *testing.T) {
	data := Target{}.Call(3)

	result := Adaptee{}.SpecificCall(Converter{}.Convert(data))

	assert.Equal(t, "0123", result)
}

func TestLimitAdapter(t *testing.T) {
	result := Adaptee{}.SpecificCall(LimitAdapter{}.Convert(3))

	assert.Equal(t, "0123", result)
}

func TestVariantsAgree(t *testing.T) {
	for limit := -1; limit <= 12; limit++ {
		assert.Equal(t,
			Converter{}.Convert(Target{}.Call(limit)),
			LimitAdapter{}.Convert(limit),
			"limit %d", limit)
	}
}

func TestTargetCall(t *testing.T) {
	assert.Equal(t, []int{0}, Target{}.Call(0))
	assert.Empty(t, Target{}.Call(-4))
	assert.Equal(t, "012345678910", Adaptee{}.SpecificCall(LimitAdapter{}.Convert(10)))
}

func TestTargetCallBounds(t *testing.T) {
	assert.Len(t, Target{}.Call(MaxLimit), MaxLimit+1)
	assert.Empty(t, Target{}.Call(MaxLimit+1))
	assert.Empty(t, Target{}.Call(math.MaxInt))
	assert.Empty(t, LimitAdapter{}.Convert(math.MaxInt))
}
