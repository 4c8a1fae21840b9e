// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
	"testing"
)

// drain reads src to exhaustion and returns everything it produced.
func drain(t testing.TB, src Source) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, 512)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestResampler_Metadata(t *testing.T) {
	t.Parallel()

	src := newSilentSource(44100, 1, 100)
	res := NewResampler(src, 16000)

	if res.SampleRate() != 16000 {
		t.Errorf("Resampler.SampleRate() = %d, want 16000", res.SampleRate())
	}
	if res.Channels() != 1 {
		t.Errorf("Resampler.Channels() = %d, want 1", res.Channels())
	}
}

func TestResampler_UpsampleConstant(t *testing.T) {
	t.Parallel()

	src := newConstantSource(8000, 1, 100, 0.5)
	res := NewResampler(src, 16000)

	out := drain(t, res)

	// Doubling the rate should roughly double the sample count. The
	// window priming eats a few samples at each edge.
	if len(out) < 180 || len(out) > 210 {
		t.Errorf("upsample output length = %d, want ~200", len(out))
	}

	// Cubic interpolation of a constant signal is the constant.
	for i, v := range out {
		if math.Abs(float64(v-0.5)) > 0.001 {
			t.Fatalf("out[%d] = %v, want 0.5", i, v)
		}
	}
}

func TestResampler_DownsampleConstant(t *testing.T) {
	t.Parallel()

	src := newConstantSource(16000, 1, 200, 0.5)
	res := NewResampler(src, 8000)

	out := drain(t, res)

	if len(out) < 85 || len(out) > 105 {
		t.Errorf("downsample output length = %d, want ~100", len(out))
	}

	// The anti-alias filter is seeded with the first sample, so a DC
	// signal passes through unchanged.
	for i, v := range out {
		if math.Abs(float64(v-0.5)) > 0.001 {
			t.Fatalf("out[%d] = %v, want 0.5", i, v)
		}
	}
}

func TestResampler_SineStaysBounded(t *testing.T) {
	t.Parallel()

	src := newSineSource(44100, 1, 44100, 440.0)
	res := NewResampler(src, 16000)

	out := drain(t, res)

	if len(out) == 0 {
		t.Fatal("resampler produced no output")
	}

	// Catmull-Rom can overshoot slightly; allow a small margin.
	for i, v := range out {
		if v > 1.1 || v < -1.1 {
			t.Fatalf("out[%d] = %v, outside [-1.1, 1.1]", i, v)
		}
	}
}

func TestResampler_EmptySource(t *testing.T) {
	t.Parallel()

	src := newSilentSource(8000, 1, 0)
	res := NewResampler(src, 16000)

	buf := make([]float32, 16)
	n, err := res.ReadSamples(buf)

	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}
	if n != 0 {
		t.Errorf("ReadSamples() n = %d, want 0", n)
	}
}

func TestResampler_EmptyDst(t *testing.T) {
	t.Parallel()

	src := newSilentSource(8000, 1, 100)
	res := NewResampler(src, 16000)

	n, err := res.ReadSamples(nil)
	if err != nil {
		t.Errorf("ReadSamples(nil) error = %v, want nil", err)
	}
	if n != 0 {
		t.Errorf("ReadSamples(nil) n = %d, want 0", n)
	}
}

func TestResampler_Close(t *testing.T) {
	t.Parallel()

	src := newSilentSource(8000, 1, 100)
	res := NewResampler(src, 16000)

	if err := res.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}

func BenchmarkResampler_Downsample(b *testing.B) {
	src := newSineSource(44100, 1, 44100, 440.0)
	buf := make([]float32, 4096)

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		src.Reset()
		res := NewResampler(src, 16000)
		for {
			_, err := res.ReadSamples(buf)
			if err == io.EOF {
				break
			}
		}
	}
}
