package product

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpectedInput_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		category int64
	}{
		{
			name:     "category",
			body:     `[{"name":"Apples","description":"Golden","category":2,"price":2.5,"unit":"kg","quantity":50}]`,
			category: 2,
		},
		{
			name:     "category_id",
			body:     `[{"name":"Apples","description":"Golden","category_id":2,"price":"2.50","unit":"kg","quantity":50}]`,
			category: 2,
		},
		{
			name:     "category wins over category_id",
			body:     `[{"name":"Apples","description":"Golden","category":4,"category_id":2,"price":2.5,"unit":"kg","quantity":50}]`,
			category: 4,
		},
		{
			name:     "missing",
			body:     `[{"name":"Apples","description":"Golden","price":2.5,"unit":"kg","quantity":50}]`,
			category: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var items []ExpectedInput
			require.NoError(t, json.Unmarshal([]byte(tt.body), &items))
			require.Len(t, items, 1)

			it := items[0]
			assert.Equal(t, tt.category, it.CategoryID)
			assert.Equal(t, "Apples", it.Name)
			assert.Equal(t, "Golden", it.Description)
			assert.True(t, decimal.NewFromFloat(2.5).Equal(it.Price))
			assert.Equal(t, "kg", it.Unit)
			assert.Equal(t, 50, it.Quantity)
		})
	}

	t.Run("Malformed", func(t *testing.T) {
		var items []ExpectedInput
		assert.Error(t, json.Unmarshal([]byte(`[{"category":"fruit"}]`), &items))
	})
}
