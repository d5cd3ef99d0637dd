package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		query string
		want  Plan
	}{
		{query: "apple inc", want: Plan{Search: true}},
		{query: "AAPL", want: Plan{Symbol: "AAPL"}},
		{query: "goog", want: Plan{Search: true}},
		{query: "BRK.B", want: Plan{Symbol: "BRK.B"}},
		{query: "GOOGLE", want: Plan{}},
		{query: "A B C", want: Plan{Search: true, Symbol: "A B C"}},
		{query: "a", want: Plan{}},
		{query: "A", want: Plan{Symbol: "A"}},
		{query: "42", want: Plan{Search: true}},
		{query: "Ms", want: Plan{Search: true}},
		{query: "", want: Plan{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.query))
		})
	}
}

func TestPlanEmpty(t *testing.T) {
	assert.True(t, Resolve("").Empty())
	assert.True(t, Resolve("GOOGLE").Empty())
	assert.False(t, Resolve("AAPL").Empty())
}

func TestIsUpper(t *testing.T) {
	assert.True(t, IsUpper("AAPL"))
	assert.True(t, IsUpper("BRK.B"))
	assert.True(t, IsUpper("ÄB"))
	assert.False(t, IsUpper("Aapl"))
	assert.False(t, IsUpper("123"))
	assert.False(t, IsUpper(""))
}

func TestForce(t *testing.T) {
	assert.Equal(t, "MSFT", Force("msft"))
}
