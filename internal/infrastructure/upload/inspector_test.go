package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandvault/brandvault/internal/domain/asset"
)

var (
	pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")
	pdfHeader = []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n1 0 obj\n<<>>\nendobj\n")
	svgDoc    = []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"><circle cx="5" cy="5" r="4" fill="red"/></svg>`)
)

func TestSniff(t *testing.T) {
	assert.Equal(t, asset.MIMEPNG, Sniff(pngHeader))
	assert.Equal(t, asset.MIMEPDF, Sniff(pdfHeader))
	assert.Equal(t, asset.MIMESVG, Sniff(svgDoc))
}

func TestInspect(t *testing.T) {
	tests := []struct {
		name     string
		declared string
		content  []byte
		want     string
	}{
		{"declared type wins", "image/png", pngHeader, asset.MIMEPNG},
		{"parameters are dropped", "image/jpeg; charset=binary", []byte("\xff\xd8\xff\xe0"), asset.MIMEJPEG},
		{"missing type is sniffed", "", pdfHeader, asset.MIMEPDF},
		{"octet stream is sniffed", "application/octet-stream", pngHeader, asset.MIMEPNG},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Inspect(tt.declared, tt.content)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.ContentType)
			assert.Equal(t, tt.content, got.Content)
		})
	}
}

func TestInspect_SVGIsSanitised(t *testing.T) {
	got, err := Inspect("", svgDoc)
	require.NoError(t, err)
	assert.Equal(t, asset.MIMESVG, got.ContentType)
	assert.Contains(t, string(got.Content), "<svg")
	assert.Contains(t, string(got.Content), "circle")
}

func TestSanitizeSVG_RejectsScripts(t *testing.T) {
	cases := []string{
		`<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`,
		`<svg xmlns="http://www.w3.org/2000/svg" onload="alert(1)"></svg>`,
		`<svg xmlns="http://www.w3.org/2000/svg"><a href="javascript:alert(1)"><rect/></a></svg>`,
	}
	for _, c := range cases {
		_, err := SanitizeSVG([]byte(c))
		assert.Error(t, err, c)
	}
}

func TestSanitizeSVG_RejectsNonSVG(t *testing.T) {
	_, err := SanitizeSVG([]byte("<p>not a drawing</p>"))
	assert.Error(t, err)
}
