// This file is part of myopengl.
//
// myopengl is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// myopengl is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with myopengl.  If not, see <https://www.gnu.org/licenses/>.

// Package texture loads image files into RGBA pixel data ready for uploading
// to the GPU.
//
// The format of the file is decided by inspecting the file header rather than
// the filename extension. PNG, JPEG, GIF, BMP, TIFF and WebP files are
// supported.
//
// OpenGL expects the first row of texture data to be the bottom of the image,
// which is the opposite of most image formats. The FlipVertical option
// reverses the rows of the image.
package texture

import (
	"bytes"
	"image"
	"io"
	"os"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"

	// image decoders
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"myopengl/curated"
	"myopengl/logger"
)

// Error is the pattern of errors returned by the texture package.
const Error = "texture: %v"

// UnsupportedFormat is found in the chain of an Error if the data is not an
// image that can be decoded.
const UnsupportedFormat = "unsupported format: %s"

// TooLarge is found in the chain of an Error if the image dimensions are
// larger than MaxDimension.
const TooLarge = "image too large: %dx%d"

// MaxDimension is the largest width or height of an image that will be
// decoded. The dimensions are checked before the pixel data is allocated.
const MaxDimension = 16384

// Options control how an image is prepared.
type Options struct {
	// reverse the order of the rows
	FlipVertical bool

	// if either dimension of the image is larger than MaxSize the image is
	// scaled down, preserving the aspect ratio. a value of zero means no
	// maximum
	MaxSize int
}

// Load decodes the image file at the path.
func Load(path string, opts Options) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, curated.Errorf(Error, err)
	}
	defer f.Close()

	img, err := Decode(f, opts)
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "texture", "%s (%dx%d)", path, img.Rect.Dx(), img.Rect.Dy())

	return img, nil
}

// Decode image data from the reader.
func Decode(r io.Reader, opts Options) (*image.RGBA, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, curated.Errorf(Error, err)
	}

	kind, _ := filetype.Match(data)
	if !filetype.IsImage(data) {
		return nil, curated.Errorf(Error, curated.Errorf(UnsupportedFormat, describe(kind.MIME.Value)))
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		// filetype recognises more image formats than there are decoders for
		if err == image.ErrFormat {
			return nil, curated.Errorf(Error, curated.Errorf(UnsupportedFormat, describe(kind.MIME.Value)))
		}
		return nil, curated.Errorf(Error, err)
	}
	if cfg.Width > MaxDimension || cfg.Height > MaxDimension {
		return nil, curated.Errorf(Error, curated.Errorf(TooLarge, cfg.Width, cfg.Height))
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, curated.Errorf(Error, err)
	}

	var img *image.RGBA
	if opts.FlipVertical {
		img = transform.FlipV(src)
	} else {
		img = clone.AsRGBA(src)
	}

	if opts.MaxSize > 0 {
		img = limit(img, opts.MaxSize)
	}

	return img, nil
}

func describe(mime string) string {
	if mime == "" {
		return "unknown"
	}
	return mime
}

// limit scales the image down so that neither dimension is larger than size.
func limit(img *image.RGBA, size int) *image.RGBA {
	w := img.Rect.Dx()
	h := img.Rect.Dy()
	if w <= size && h <= size {
		return img
	}

	if w >= h {
		h = max(h*size/w, 1)
		w = size
	} else {
		w = max(w*size/h, 1)
		h = size
	}

	logger.Logf(logger.Allow, "texture", "resizing from %dx%d to %dx%d", img.Rect.Dx(), img.Rect.Dy(), w, h)

	return transform.Resize(img, w, h, transform.Linear)
}
