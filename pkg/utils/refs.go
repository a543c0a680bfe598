package utils

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// Slugify converts a string to a URL-friendly slug
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")

	reg := regexp.MustCompile("[^a-z0-9-]")
	s = reg.ReplaceAllString(s, "")

	reg = regexp.MustCompile("-+")
	s = reg.ReplaceAllString(s, "-")

	return strings.Trim(s, "-")
}

// GenerateTransactionNo generates a sales transaction number, e.g. TXN-1718000000000-0042
func GenerateTransactionNo() string {
	return fmt.Sprintf("TXN-%d-%04d", time.Now().UnixMilli(), rand.Intn(10000))
}

// GenerateTransferRef generates a reference shared by the two legs of a stock transfer
func GenerateTransferRef(productID uuid.UUID) string {
	return fmt.Sprintf("TRF-%d-%s", time.Now().UnixMilli(), productID.String()[:4])
}

// GenerateAdjustmentRef generates a reference for a manual stock adjustment
func GenerateAdjustmentRef() string {
	return fmt.Sprintf("ADJ-%d", time.Now().UnixMilli())
}

// GenerateSKU generates a unique product SKU
func GenerateSKU() string {
	return "SKU-" + strings.ToUpper(uuid.New().String()[:8])
}
