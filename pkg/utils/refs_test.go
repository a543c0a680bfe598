package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Maize Flour 2kg":    "maize-flour-2kg",
		"  Spaced   Out  ":   "spaced-out",
		"Special!@#Chars":    "specialchars",
		"already-slugged":    "already-slugged",
		"Trailing Dash -- !": "trailing-dash",
	}
	for input, want := range cases {
		assert.Equal(t, want, Slugify(input), "input %q", input)
	}
}

func TestGenerateTransactionNo(t *testing.T) {
	no := GenerateTransactionNo()
	assert.True(t, strings.HasPrefix(no, "TXN-"))
	assert.Len(t, strings.Split(no, "-"), 3)
}

func TestGenerateTransferRef(t *testing.T) {
	productID := uuid.MustParse("32883907-29e9-43a5-901a-c6c425dddbad")
	ref := GenerateTransferRef(productID)
	assert.True(t, strings.HasPrefix(ref, "TRF-"))
	assert.True(t, strings.HasSuffix(ref, "-3288"))
}

func TestGenerateAdjustmentRef(t *testing.T) {
	assert.True(t, strings.HasPrefix(GenerateAdjustmentRef(), "ADJ-"))
}

func TestGenerateSKU(t *testing.T) {
	sku := GenerateSKU()
	assert.True(t, strings.HasPrefix(sku, "SKU-"))
	assert.Len(t, sku, 12)
	assert.NotEqual(t, sku, GenerateSKU())
}
