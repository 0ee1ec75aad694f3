// Package report renders learning curves to image and HTML files.
//
// Images are drawn with gonum/plot, and the image format is chosen by
// the file extension: .svg, .png, .pdf, .eps, .jpg, or .tif. HTML
// reports are interactive charts drawn with go-echarts, chosen with
// the .html extension.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/samuelfneumann/gobandit/errs"
)

// Series is a single named learning curve. Values[i] is the value of
// the curve at step i.
type Series struct {
	Name   string
	Values []float64
}

// Figure is a collection of learning curves drawn on the same axes
// along with a horizontal reference line, usually the best achievable
// value.
type Figure struct {
	Title          string
	XLabel         string
	YLabel         string
	Series         []Series
	Reference      float64
	ReferenceLabel string
}

// Steps returns the length of the longest Series in the Figure
func (f Figure) Steps() int {
	steps := 0
	for _, s := range f.Series {
		if len(s.Values) > steps {
			steps = len(s.Values)
		}
	}
	return steps
}

// Format is a file format that a Figure can be saved as
type Format string

const (
	SVG  Format = ".svg"
	PNG  Format = ".png"
	PDF  Format = ".pdf"
	EPS  Format = ".eps"
	JPG  Format = ".jpg"
	JPEG Format = ".jpeg"
	TIF  Format = ".tif"
	TIFF Format = ".tiff"
	HTML Format = ".html"
)

// FormatOf returns the Format that the file at path would be saved as
func FormatOf(path string) (Format, error) {
	format := Format(strings.ToLower(filepath.Ext(path)))
	switch format {
	case SVG, PNG, PDF, EPS, JPG, JPEG, TIF, TIFF, HTML:
		return format, nil
	}
	return "", errs.InvalidArgument("formatOf",
		"cannot save figures as %q files", filepath.Ext(path))
}

// Save saves the Figure to the file at path, in the format given by
// the extension of path
func Save(f Figure, path string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	if len(f.Series) == 0 {
		return errs.InvalidArgument("save", "figure has no series")
	}

	if format == HTML {
		err = saveHTML(f, path)
	} else {
		err = savePlot(f, path)
	}
	if err != nil {
		return fmt.Errorf("save: could not save figure to %v: %w", path, err)
	}
	return nil
}

// WriteFile creates the file at path and writes its contents with
// write. If write succeeds, any error closing the file is returned.
func WriteFile(path string, write func(io.Writer) error) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("could not close %v: %w", path, cerr)
		}
	}()

	return write(file)
}
