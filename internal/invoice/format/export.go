package format

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gosimple/slug"
)

const pdfDataURIPrefix = "data:application/pdf;base64,"

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Filename builds invoice-<company>-<number>.pdf. An empty company becomes
// "document" and an empty number becomes the unix millisecond timestamp.
func Filename(companyName, invoiceNumber string, now time.Time) string {
	company := slug.Make(companyName)
	if company == "" {
		company = "document"
	}
	number := strings.Trim(unsafeFilenameChars.ReplaceAllString(strings.TrimSpace(invoiceNumber), "-"), "-")
	if number == "" {
		number = strconv.FormatInt(now.UnixMilli(), 10)
	}
	return "invoice-" + company + "-" + number + ".pdf"
}

// DataURI encodes PDF bytes as a data URI.
func DataURI(pdf []byte) string {
	return pdfDataURIPrefix + base64.StdEncoding.EncodeToString(pdf)
}

// DecodeDataURI accepts a data URI or bare base64 and returns the payload.
func DecodeDataURI(raw string) ([]byte, error) {
	payload := strings.TrimSpace(raw)
	if strings.HasPrefix(payload, "data:") {
		idx := strings.Index(payload, ",")
		if idx < 0 {
			return nil, fmt.Errorf("data uri without payload")
		}
		payload = payload[idx+1:]
	}
	if payload == "" {
		return nil, fmt.Errorf("empty attachment payload")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode attachment: %w", err)
	}
	return data, nil
}
