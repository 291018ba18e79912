package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdf-triage/internal/domain"
	apperrors "pdf-triage/pkg/errors"
)

func TestClassifyRasterHighDensityNoText(t *testing.T) {
	src := &fakeSource{pages: 5, img: stripedImage()}
	detector := NewTypeDetector(newTestConfig(), testLogger{})

	docType, confidence, err := detector.Classify(src)

	require.NoError(t, err)
	assert.Equal(t, domain.TypeRaster, docType)
	assert.GreaterOrEqual(t, confidence, 0.0)
	assert.LessOrEqual(t, confidence, 1.0)
}

func TestClassifyVectorTextDominatesDensity(t *testing.T) {
	// High edge density, but the text layer exceeds the minimum-text
	// threshold: the vector rule wins regardless of density.
	src := &fakeSource{
		pages: 3,
		img:   stripedImage(),
		texts: map[int]string{1: strings.Repeat("lorem ipsum ", 10)},
	}
	detector := NewTypeDetector(newTestConfig(), testLogger{})

	docType, confidence, err := detector.Classify(src)

	require.NoError(t, err)
	assert.Equal(t, domain.TypeVector, docType)
	assert.GreaterOrEqual(t, confidence, 0.0)
	assert.LessOrEqual(t, confidence, 1.0)
}

func TestClassifyVectorMarkersWithoutText(t *testing.T) {
	src := &fakeSource{pages: 2, markers: true}
	detector := NewTypeDetector(newTestConfig(), testLogger{})

	docType, confidence, err := detector.Classify(src)

	require.NoError(t, err)
	assert.Equal(t, domain.TypeVector, docType)
	assert.GreaterOrEqual(t, confidence, 0.75)
}

func TestClassifyVectorEvidenceBeatsRenderFailure(t *testing.T) {
	// Every sampled page fails to rasterize, but the text layer is
	// intact: classification still succeeds as vector.
	src := &fakeSource{
		pages:     2,
		renderErr: map[int]bool{1: true, 2: true},
		texts:     map[int]string{1: strings.Repeat("text ", 20)},
	}
	detector := NewTypeDetector(newTestConfig(), testLogger{})

	docType, _, err := detector.Classify(src)

	require.NoError(t, err)
	assert.Equal(t, domain.TypeVector, docType)
}

func TestClassifyDetectionErrorWhenNothingRenders(t *testing.T) {
	src := &fakeSource{
		pages:     3,
		renderErr: map[int]bool{1: true, 2: true, 3: true},
	}
	detector := NewTypeDetector(newTestConfig(), testLogger{})

	_, _, err := detector.Classify(src)

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeDetection))
}

func TestClassifyDetectionErrorOnEmptyDocument(t *testing.T) {
	src := &fakeSource{pages: 0}
	detector := NewTypeDetector(newTestConfig(), testLogger{})

	_, _, err := detector.Classify(src)

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeDetection))
}

func TestClassifyAmbiguousTieDefaultsToVector(t *testing.T) {
	// Flat page, no text: density score and text score are both zero.
	// The documented tie policy routes to vector.
	src := &fakeSource{pages: 1}
	detector := NewTypeDetector(newTestConfig(), testLogger{})

	docType, confidence, err := detector.Classify(src)

	require.NoError(t, err)
	assert.Equal(t, domain.TypeVector, docType)
	assert.Equal(t, 0.0, confidence)
}

func TestClassifyFallbackDominantSignalWins(t *testing.T) {
	// Dense page with a little text: neither rule is decisive (text is
	// above the raster cutoff but below the vector minimum), so the
	// higher normalized score decides.
	cfg := newTestConfig()
	cfg.rasterMaxText = 4
	src := &fakeSource{
		pages: 1,
		img:   stripedImage(),
		texts: map[int]string{1: "tiny note"},
	}
	detector := NewTypeDetector(cfg, testLogger{})

	docType, _, err := detector.Classify(src)

	require.NoError(t, err)
	assert.Equal(t, domain.TypeRaster, docType)
}

func TestClassifySamplesBoundedPages(t *testing.T) {
	// Only the sampled pages contribute text. Page 4 is past the sample
	// window, so its text must not flip the decision.
	cfg := newTestConfig()
	cfg.samplePages = 3
	src := &fakeSource{
		pages: 10,
		img:   stripedImage(),
		texts: map[int]string{4: strings.Repeat("hidden ", 50)},
	}
	detector := NewTypeDetector(cfg, testLogger{})

	docType, _, err := detector.Classify(src)

	require.NoError(t, err)
	assert.Equal(t, domain.TypeRaster, docType)
}
