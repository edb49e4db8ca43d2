package pipeline

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/overlaykit/pkg/render"
	"github.com/matzehuels/overlaykit/pkg/scene"
)

// Render generates output artifacts in the requested formats.
func Render(res *scene.Result, opts Options) (map[string][]byte, error) {
	svgOpts := opts.SVGOptions()
	artifacts := make(map[string][]byte, len(opts.Formats))

	var svg []byte
	svgOnce := func() []byte {
		if svg == nil {
			svg = render.RenderSVG(res, svgOpts...)
		}
		return svg
	}

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = svgOnce()
		case FormatPNG:
			data, err = render.ToPNG(svgOnce(), DefaultPNGScale)
		case FormatPDF:
			data, err = render.ToPDF(svgOnce())
		case FormatJSON:
			data, err = json.MarshalIndent(res, "", "  ")
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
