package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimal valid headers for content sniffing
var (
	pngHead  = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	jpegHead = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F'}
)

func TestValidateInvoiceImage(t *testing.T) {
	mime, err := ValidateInvoiceImage("faktura.png", pngHead)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)

	mime, err = ValidateInvoiceImage("IMG_0042.JPG", jpegHead)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mime)
}

func TestValidateInvoiceImageRejectsExtension(t *testing.T) {
	_, err := ValidateInvoiceImage("faktura.pdf", pngHead)
	assert.Error(t, err)

	_, err = ValidateInvoiceImage("faktura", pngHead)
	assert.Error(t, err)
}

func TestValidateInvoiceImageRejectsScriptableContent(t *testing.T) {
	_, err := ValidateInvoiceImage("faktura.png", []byte("<!DOCTYPE html><html><body>x</body></html>"))
	assert.Error(t, err)

	_, err = ValidateInvoiceImage("faktura.png", []byte(`<?xml version="1.0"?><svg xmlns="http://www.w3.org/2000/svg"></svg>`))
	assert.Error(t, err)
}

func TestValidateInvoiceImageHeicFallback(t *testing.T) {
	// HEIC headers often sniff as octet-stream; the extension decides
	mime, err := ValidateInvoiceImage("faktura.heic", []byte{0x00, 0x00, 0x00, 0x18, 'f', 't', 'y', 'p'})
	require.NoError(t, err)
	assert.Equal(t, "image/heic", mime)
}

func TestValidateInvoiceImageRejectsNonImage(t *testing.T) {
	_, err := ValidateInvoiceImage("faktura.png", []byte("plain text, not an image"))
	assert.Error(t, err)
}
