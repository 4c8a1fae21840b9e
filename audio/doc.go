// SPDX-License-Identifier: EPL-2.0

// Package audio provides the low-level audio primitives the splitter is
// built from.
//
// # Source Interface
//
// The Source interface is the foundation of audio processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// All format decoders and processors implement this interface, allowing
// them to be chained together in processing pipelines.
//
// # Downmixing
//
// The Downmixer converts multi-channel audio to mono by averaging:
//
//	mono := audio.NewDownmixer(source)
//	buf := make([]float32, 4096)
//	n, err := mono.ReadSamples(buf)
//
// # Resampling
//
// The Resampler changes the sample rate of a mono stream using cubic
// interpolation:
//
//	resampled := audio.NewResampler(mono, 16000)
//	n, err := resampled.ReadSamples(buf)
//
// Resampling works for both upsampling and downsampling. Downmix before
// resampling; the resampler expects a mono source.
//
// # Collecting
//
// MonoPipeline and Collect build the downmix+resample chain and drain it
// into a Buffer, which is the unit the clip partitioner consumes:
//
//	buffer, err := audio.Collect(source, 16000)
//
// # Format Registry
//
// The registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("mp3", mp3.Decoder{})
//	decoder, ok := registry.Get("mp3")
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// # Error Handling
//
// Sources return io.EOF when no more data is available. Other errors
// indicate problems with the source or processing:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
package audio
