package services

import (
	"encoding/base64"
	"net/url"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"qrfleet/pkg/utils"
)

// qrImageSize renders scannable at a quarter-page printout; medium error
// correction keeps a ~15% damage margin.
const qrImageSize = 300

type QRBinderInterface interface {
	PublicURL(licensePlate string) string
	PayloadFor(licensePlate string) (string, error)
}

type QRBinder struct {
	baseURL string
}

func NewQRBinder(baseURL string) QRBinderInterface {
	return &QRBinder{
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (q *QRBinder) PublicURL(licensePlate string) string {
	return q.baseURL + "/vehicle/" + url.PathEscape(licensePlate)
}

// PayloadFor encodes the public URL for the given plate into a PNG data
// URI. Deterministic: the same plate always yields the same payload.
func (q *QRBinder) PayloadFor(licensePlate string) (string, error) {
	png, err := qrcode.Encode(q.PublicURL(licensePlate), qrcode.Medium, qrImageSize)
	if err != nil {
		return "", utils.ErrQRCodeGeneration
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
