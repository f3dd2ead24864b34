// Package upload resolves and cleans the content of an uploaded file.
package upload

import (
	"fmt"
	"mime"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/microcosm-cc/bluemonday"

	"github.com/brandvault/brandvault/internal/domain/asset"
)

const octetStream = "application/octet-stream"

var sniffable = []string{
	asset.MIMEJPEG,
	asset.MIMEPNG,
	asset.MIMESVG,
	asset.MIMEWebP,
	asset.MIMEPDF,
	asset.MIMEPostScript,
}

// Inspected is an upload ready for the blob store.
type Inspected struct {
	ContentType string
	Content     []byte
}

// Inspect settles the content type and sanitises SVG. The declared type wins
// when present; otherwise the bytes are sniffed. Whitelist checks stay with
// the caller.
func Inspect(declaredType string, content []byte) (Inspected, error) {
	contentType := normalize(declaredType)
	if contentType == "" || contentType == octetStream {
		contentType = Sniff(content)
	}

	if contentType == asset.MIMESVG || mimetype.Detect(content).Is(asset.MIMESVG) {
		cleaned, err := SanitizeSVG(content)
		if err != nil {
			return Inspected{}, err
		}
		return Inspected{ContentType: asset.MIMESVG, Content: cleaned}, nil
	}

	return Inspected{ContentType: contentType, Content: content}, nil
}

// Sniff detects the type from content, mapping aliases onto the upload
// whitelist. Unrecognised content yields the bare detected type.
func Sniff(content []byte) string {
	detected := mimetype.Detect(content)
	for _, t := range sniffable {
		if detected.Is(t) {
			return t
		}
	}
	return normalize(detected.String())
}

func normalize(contentType string) string {
	contentType = strings.TrimSpace(contentType)
	if contentType == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(contentType)
	}
	return mediaType
}

var svgColorPattern = regexp.MustCompile(`^(#[0-9a-fA-F]{3,8}|none|currentColor|transparent|[a-zA-Z]+)$`)

var dangerousSVGPatterns = []string{
	"<script", "javascript:", "vbscript:", "data:text/html",
	"expression(", "eval(", "onclick", "onerror", "onload",
}

func svgPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.AllowElements("svg", "g", "defs", "symbol", "title", "desc")
	p.AllowElements("circle", "ellipse", "line", "path", "polygon", "polyline", "rect")
	p.AllowElements("text", "tspan")
	p.AllowElements("linearGradient", "radialGradient", "stop")
	p.AllowElements("clipPath", "mask")

	// No style attribute.
	p.AllowAttrs("id", "class").Globally()
	p.AllowAttrs("x", "y", "width", "height", "rx", "ry").Globally()
	p.AllowAttrs("cx", "cy", "r", "fx", "fy").Globally()
	p.AllowAttrs("x1", "y1", "x2", "y2").Globally()
	p.AllowAttrs("points", "d").Globally()
	p.AllowAttrs("stroke-width", "stroke-linecap", "stroke-linejoin").Globally()
	p.AllowAttrs("opacity", "fill-opacity", "stroke-opacity").Globally()
	p.AllowAttrs("transform", "viewBox", "preserveAspectRatio").Globally()
	p.AllowAttrs("offset", "stop-color", "stop-opacity").Globally()
	p.AllowAttrs("font-family", "font-size", "font-weight", "text-anchor").Globally()
	p.AllowAttrs("fill", "stroke").Matching(svgColorPattern).Globally()
	p.AllowAttrs("xmlns").OnElements("svg")
	p.AllowAttrs("version").OnElements("svg")

	return p
}

// SanitizeSVG rejects scripted SVG and strips everything outside a drawing whitelist.
func SanitizeSVG(content []byte) ([]byte, error) {
	lower := strings.ToLower(string(content))
	for _, pattern := range dangerousSVGPatterns {
		if strings.Contains(lower, pattern) {
			return nil, fmt.Errorf("potentially malicious content detected in SVG")
		}
	}

	sanitized := svgPolicy().SanitizeBytes(content)
	if !strings.Contains(strings.ToLower(string(sanitized)), "<svg") {
		return nil, fmt.Errorf("SVG content was completely stripped during sanitization")
	}
	return sanitized, nil
}
