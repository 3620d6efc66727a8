package ilda

import (
	"github.com/mishiro-goudou-company/ilda/_test_data/ilds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestFrame_Fingerprint(t *testing.T) {
	a := Frame{Name: "a", Points: []Point{{X: 1, Y: 2, R: 3}, {X: 4, Y: 5, Blanking: true}}}
	b := Frame{Name: "b", Company: "other", Number: 9, Points: []Point{{X: 1, Y: 2, R: 3}, {X: 4, Y: 5, Blanking: true}}}
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	c := Frame{Points: []Point{{X: 1, Y: 2, R: 3}, {X: 4, Y: 5}}}
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())

	d := Frame{Points: []Point{{X: 4, Y: 5, Blanking: true}, {X: 1, Y: 2, R: 3}}}
	assert.NotEqual(t, a.Fingerprint(), d.Fingerprint())
}

func TestFrame_BlankedPoints(t *testing.T) {
	f := Frame{Points: []Point{{Blanking: true}, {}, {Blanking: true}}}
	assert.Equal(t, 2, f.BlankedPoints())
	assert.Equal(t, 0, Frame{}.BlankedPoints())
}

func TestPoint_Color(t *testing.T) {
	assert.Equal(t, Magenta, Point{R: 255, B: 255}.Color())
}

func TestSummarize(t *testing.T) {
	f, err := ilds.Open("mixed.ild")
	require.NoError(t, err)
	defer func() {
		_ = f.Close()
	}()
	result, err := Parse(f, nil)
	require.NoError(t, err)
	frames := append(result.Frames, result.Frames[0])

	s := Summarize(frames)
	assert.Equal(t, 5, s.Frames)
	assert.Equal(t, 4, s.UniqueFrames)
	assert.Equal(t, 3+4+2+2+3, s.Points)
	assert.Equal(t, 1+1+1+0+1, s.BlankedPoints)
	assert.Equal(t, 4, s.MaxPoints)
	assert.Equal(t, map[FormatCode]int{
		Format3DIndexed:   2,
		Format2DIndexed:   1,
		Format3DTrueColor: 1,
		Format2DTrueColor: 1,
	}, s.FramesByFormat)

	empty := Summarize(nil)
	assert.Equal(t, 0, empty.Frames)
	assert.Equal(t, 0, empty.UniqueFrames)
	assert.Empty(t, empty.FramesByFormat)
}
