package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInquiryStatus(t *testing.T) {
	for _, valid := range []string{"pending", "contacted", "closed"} {
		status, err := ParseInquiryStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, InquiryStatus(valid), status)
	}

	for _, invalid := range []string{"", "archived", "PENDING", "done"} {
		_, err := ParseInquiryStatus(invalid)
		assert.Error(t, err, "status %q must be rejected", invalid)
	}
}

func TestNewInquiry(t *testing.T) {
	product := NewProduct("Диван", "описание", 100, nil, "Sofas", nil, 0, 0, false)
	product.ID = "prod-1"

	inquiry := NewInquiry(product, "buyer@example.com", "+79990001122")

	assert.Equal(t, "prod-1", inquiry.ProductDbID)
	assert.Equal(t, product.Code, inquiry.ProductCode)
	assert.Equal(t, "Диван", inquiry.ProductName)
	assert.Equal(t, InquiryStatusPending, inquiry.Status)
}
