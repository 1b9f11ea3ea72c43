// internal/pipeline/dispatcher_test.go
package pipeline_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"assetmirror/internal/assets"
	"assetmirror/internal/convert"
	"assetmirror/internal/pipeline"
	"assetmirror/internal/pipeline/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newMocks(t *testing.T) (loc, img, pl *mocks.MockConverter) {
	ctrl := gomock.NewController(t)
	loc = mocks.NewMockConverter(ctrl)
	img = mocks.NewMockConverter(ctrl)
	pl = mocks.NewMockConverter(ctrl)
	loc.EXPECT().Name().Return("StringsTableConverter").AnyTimes()
	img.EXPECT().Name().Return("ImageCopier").AnyTimes()
	pl.EXPECT().Name().Return("PlistNormalizer").AnyTimes()
	return loc, img, pl
}

func TestDispatch_RoutesByCategory(t *testing.T) {
	loc, img, pl := newMocks(t)
	loc.EXPECT().Convert("x/Table.loctable").Return(convert.Result{Written: true}, nil)
	img.EXPECT().Convert("x/icon.png").Return(convert.Result{Written: true}, nil)
	pl.EXPECT().Convert("x/Info.plist").Return(convert.Result{Written: true}, nil)

	d := pipeline.NewDispatcher(assets.NewClassifier(assets.DefaultExtensions(), false), loc, img, pl, testLogger())

	for _, path := range []string{"x/Table.loctable", "x/icon.png", "x/Info.plist"} {
		out := d.Dispatch(path)
		assert.Equal(t, pipeline.Converted, out.Code, path)
	}
}

func TestDispatch_Unclassified(t *testing.T) {
	loc, img, pl := newMocks(t)
	d := pipeline.NewDispatcher(assets.NewClassifier(assets.DefaultExtensions(), false), loc, img, pl, testLogger())

	out := d.Dispatch("x/libfoo.dylib")
	assert.Equal(t, pipeline.Unclassified, out.Code)
	assert.Empty(t, out.Converter)
}

func TestDispatch_SkipMetadata(t *testing.T) {
	loc, img, pl := newMocks(t)
	d := pipeline.NewDispatcher(assets.NewClassifier(assets.DefaultExtensions(), true), loc, img, pl, testLogger())

	// no converter expectation: Info.plist must never reach one
	out := d.Dispatch("x/Info.plist")
	assert.Equal(t, pipeline.Unclassified, out.Code)
}

func TestDispatch_ConverterError(t *testing.T) {
	loc, img, pl := newMocks(t)
	pl.EXPECT().Convert("x/bad.plist").Return(convert.Result{}, errors.New("decode failed: truncated"))

	d := pipeline.NewDispatcher(assets.NewClassifier(assets.DefaultExtensions(), false), loc, img, pl, testLogger())

	out := d.Dispatch("x/bad.plist")
	require.Equal(t, pipeline.Failed, out.Code)
	assert.Equal(t, "PlistNormalizer", out.Converter)
	assert.Contains(t, out.Message, "decode failed")
}

func TestDispatch_ConverterSkip(t *testing.T) {
	loc, img, pl := newMocks(t)
	loc.EXPECT().Convert("x/Empty.loctable").Return(convert.Result{Reason: "no english strings"}, nil)

	d := pipeline.NewDispatcher(assets.NewClassifier(assets.DefaultExtensions(), false), loc, img, pl, testLogger())

	out := d.Dispatch("x/Empty.loctable")
	assert.Equal(t, pipeline.Skipped, out.Code)
	assert.Equal(t, "no english strings", out.Message)
}

func TestDispatch_RecoversPanic(t *testing.T) {
	loc, img, pl := newMocks(t)
	img.EXPECT().Convert("x/evil.png").DoAndReturn(func(string) (convert.Result, error) {
		panic("native decoder blew up")
	})

	d := pipeline.NewDispatcher(assets.NewClassifier(assets.DefaultExtensions(), false), loc, img, pl, testLogger())

	out := d.Dispatch("x/evil.png")
	require.Equal(t, pipeline.Failed, out.Code)
	assert.Contains(t, out.Message, "unexpected panic")
	assert.Contains(t, out.Message, "native decoder blew up")
	assert.Equal(t, "ImageCopier", out.Converter)
}
