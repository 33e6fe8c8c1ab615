// Package stamp generates machine-readable verification stamps for reports.
//
// Stamps are plain images: the caller places them through the layout
// engine's image primitive, so stamp generation stays independent of the
// drawing backend. QR codes carry verification URLs on audit and
// acknowledgement reports; PDF417 codes carry the payload of stack-delivery
// receipts.
package stamp

import (
	"errors"
	"fmt"
	"image"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
	"github.com/ruudk/golang-pdf417"
)

// ErrEmptyContent is returned when a stamp is requested for empty content.
var ErrEmptyContent = errors.New("stamp: empty content")

// QR encodes content as a QR code scaled to px by px pixels, using medium
// error correction.
func QR(content string, px int) (image.Image, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	if px <= 0 {
		px = 256
	}
	code, err := qr.Encode(content, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("stamp: encoding qr: %w", err)
	}
	scaled, err := barcode.Scale(code, px, px)
	if err != nil {
		return nil, fmt.Errorf("stamp: scaling qr: %w", err)
	}
	return scaled, nil
}

// DeliveryCode encodes content as a PDF417 barcode, the symbology used on
// stack-delivery receipts. columns and securityLevel follow the PDF417
// conventions; zero values select 4 columns and security level 2.
func DeliveryCode(content string, columns, securityLevel int) (image.Image, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	if columns <= 0 {
		columns = 4
	}
	if securityLevel <= 0 {
		securityLevel = 2
	}
	return pdf417.Encode(content, columns, securityLevel), nil
}
