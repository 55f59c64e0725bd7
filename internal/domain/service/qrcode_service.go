package service

// QRCodeService renders a URL as a QR code image. Reset links go out to
// people standing at a Wi-Fi gate with a phone in hand, so the email
// carries the link both as text and as a scannable code.
type QRCodeService interface {
	// GenerateURLQR renders the given URL as a PNG image.
	GenerateURLQR(url string) ([]byte, error)
}
