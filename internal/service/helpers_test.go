package service

import (
	"errors"
	"image"

	"pdf-triage/internal/domain"
)

// testLogger is a no-op domain.Logger.
type testLogger struct{}

func (testLogger) Info(msg string, fields ...interface{})             {}
func (testLogger) Error(msg string, err error, fields ...interface{}) {}
func (testLogger) Debug(msg string, fields ...interface{})            {}
func (testLogger) Warn(msg string, fields ...interface{})             {}

// testConfig implements domain.Config with deterministic fixture values.
type testConfig struct {
	samplePages   int
	detectionDPI  float64
	processDPI    float64
	edgeThreshold float64
	rasterMaxText int
	vectorMinText int
	binarize      uint8
	maxPages      int
	workers       int
}

func newTestConfig() *testConfig {
	return &testConfig{
		samplePages:   3,
		detectionDPI:  72,
		processDPI:    150,
		edgeThreshold: 0.95,
		rasterMaxText: 16,
		vectorMinText: 64,
		binarize:      128,
		workers:       2,
	}
}

func (c *testConfig) GetLogLevel() string              { return "debug" }
func (c *testConfig) GetInputPath() string             { return "" }
func (c *testConfig) GetOutputPath() string            { return "" }
func (c *testConfig) GetWorkerCount() int              { return c.workers }
func (c *testConfig) GetSamplePages() int              { return c.samplePages }
func (c *testConfig) GetDetectionDPI() float64         { return c.detectionDPI }
func (c *testConfig) GetProcessDPI() float64           { return c.processDPI }
func (c *testConfig) GetEdgeDensityThreshold() float64 { return c.edgeThreshold }
func (c *testConfig) GetRasterMaxTextLen() int         { return c.rasterMaxText }
func (c *testConfig) GetVectorMinTextLen() int         { return c.vectorMinText }
func (c *testConfig) GetBinarizeThreshold() uint8      { return c.binarize }
func (c *testConfig) GetMaxPages() int                 { return c.maxPages }

// flatImage is a uniform white page: zero edge density.
func flatImage() image.Image {
	img := image.NewGray(image.Rect(0, 0, 64, 16))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	return img
}

// stripedImage alternates 2-pixel black/white columns. Its Sobel density
// exceeds 0.95, the high-density default.
func stripedImage() image.Image {
	img := image.NewGray(image.Rect(0, 0, 64, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 64; x++ {
			if (x/2)%2 == 0 {
				img.Pix[y*img.Stride+x] = 255
			}
		}
	}
	return img
}

// fakeSource is a scriptable domain.DocumentSource.
type fakeSource struct {
	pages     int
	img       image.Image
	texts     map[int]string
	renderErr map[int]bool
	textErr   map[int]bool
	markers   bool
	meta      map[string]string
	closed    bool
}

var errPageBroken = errors.New("page broken")

func (f *fakeSource) PageCount() int { return f.pages }

func (f *fakeSource) RenderPage(pageNumber int, dpi float64) (image.Image, error) {
	if f.renderErr[pageNumber] {
		return nil, errPageBroken
	}
	if f.img != nil {
		return f.img, nil
	}
	return flatImage(), nil
}

func (f *fakeSource) PageText(pageNumber int) (string, error) {
	if f.textErr[pageNumber] {
		return "", errPageBroken
	}
	return f.texts[pageNumber], nil
}

func (f *fakeSource) Metadata() map[string]string {
	if f.meta == nil {
		return map[string]string{}
	}
	return f.meta
}

func (f *fakeSource) HasVectorMarkers(pageNumber int) (bool, error) {
	return f.markers, nil
}

func (f *fakeSource) Close() error {
	f.closed = true
	return nil
}

// fakeOpener hands out a fixed source, or fails.
type fakeOpener struct {
	src *fakeSource
	err error
}

func (o *fakeOpener) Open(path string) (domain.DocumentSource, error) {
	if o.err != nil {
		return nil, o.err
	}
	return o.src, nil
}

// fakeValidator accepts everything unless told otherwise.
type fakeValidator struct {
	err   error
	pages int
}

func (v *fakeValidator) Validate(path string) error { return v.err }

func (v *fakeValidator) StructuralPageCount(path string) (int, error) {
	if v.pages == 0 {
		return 0, errPageBroken
	}
	return v.pages, nil
}
