package palette

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// DefaultQRSize is the edge length in pixels of generated QR images
const DefaultQRSize = 200

const qrServerURL = "https://api.qrserver.com/v1/create-qr-code/"

// ExportCSS renders p as a stylesheet of custom properties named
// --color-<scheme>-<n>, n counting from 1
func ExportCSS(p Palette) string {
	var b strings.Builder
	b.WriteString("/* ===== Chromix Pro - Color Palette ===== */\n\n")
	b.WriteString(":root {\n")
	for _, scheme := range p.Schemes {
		for i, c := range scheme.Colors {
			fmt.Fprintf(&b, "    --color-%s-%d: %s;\n", scheme.Kind, i+1, c)
		}
	}
	b.WriteString("}\n")
	return b.String()
}

// CopyAll returns every color of p once, in first-seen order, rendered in f
func CopyAll(p Palette, f Format) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, scheme := range p.Schemes {
		for _, c := range scheme.Colors {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, FormatColor(c, f))
		}
	}
	return out
}

// QRPayload is the comma-joined hex list of the first scheme
func QRPayload(p Palette) string {
	if len(p.Schemes) == 0 {
		return ""
	}
	return strings.Join(p.Schemes[0].Colors, ",")
}

// QRImageURL builds the image URL a client fetches to display payload as a
// QR code. Nothing is requested here.
func QRImageURL(payload string, size int) string {
	if size <= 0 {
		size = DefaultQRSize
	}
	q := url.Values{}
	q.Set("size", fmt.Sprintf("%dx%d", size, size))
	q.Set("data", payload)
	return qrServerURL + "?" + q.Encode()
}

// ShareURL appends the palette query parameter to base
func ShareURL(base string, p Palette) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid share base url: %w", err)
	}
	q := u.Query()
	q.Set("palette", QRPayload(p))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

var errNoSharedPalette = errors.New("no palette parameter")

// ParseShared extracts the base color from a shared query string such as
// "palette=%236366F1,%23..."
func ParseShared(rawQuery string) (string, error) {
	q, err := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))
	if err != nil {
		return "", fmt.Errorf("invalid share query: %w", err)
	}
	shared := q.Get("palette")
	if shared == "" {
		return "", errNoSharedPalette
	}
	first, _, _ := strings.Cut(shared, ",")
	return NormalizeHex(strings.TrimSpace(first))
}
