package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/nyx-os/pkg/money"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "$1,234.50", money.Format(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "$18.50", money.Format(decimal.RequireFromString("18.5")))
	assert.Equal(t, "-$3.00", money.Format(decimal.NewFromInt(-3)))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "77.3%", money.Percent(decimal.RequireFromString("77.29166")))
}
