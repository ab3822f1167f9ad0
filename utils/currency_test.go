package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "Rp.12.000", FormatPrice(12.0))
	assert.Equal(t, "Rp.2.500", FormatPrice(2.5))
	assert.Equal(t, "Rp.0.000", FormatPrice(0))
	assert.Equal(t, "Rp.40.000", FormatPrice(40))
}
