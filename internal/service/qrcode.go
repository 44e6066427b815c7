package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

// DefaultQRGenerator encodes a link to the order page, printed on the
// delivery receipt.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(orderID uuid.UUID) ([]byte, error) {
	qrData := fmt.Sprintf("%s/order.html?id=%s", g.BaseURL, orderID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
