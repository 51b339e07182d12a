package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Tienda-api/pkg/money"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "1.99", money.Format(199))
	assert.Equal(t, "0.00", money.Format(0))
	assert.Equal(t, "0.05", money.Format(5))
	assert.Equal(t, "120.00", money.Format(12000))
}

func TestSum(t *testing.T) {
	assert.Equal(t, int64(0), money.Sum(nil))
	assert.Equal(t, int64(398), money.Sum([]int64{199, 199}))
}
