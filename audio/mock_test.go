package audio

import "github.com/ik5/waveviz/internal/audiotest"

// Thin aliases over the shared test mock so test bodies stay short.

func newSilentSource(sampleRate, channels, totalSamples int) *audiotest.MockSource {
	return audiotest.NewSilentSource(sampleRate, channels, totalSamples)
}

func newSineSource(sampleRate, channels, totalSamples int, frequency float64) *audiotest.MockSource {
	return audiotest.NewSineSource(sampleRate, channels, totalSamples, frequency)
}

func newConstantSource(sampleRate, channels, totalSamples int, value float32) *audiotest.MockSource {
	return audiotest.NewConstantSource(sampleRate, channels, totalSamples, value)
}

func audiotestSource(sampleRate, totalSamples int, left, right float32) *audiotest.MockSource {
	return audiotest.NewMockSource(sampleRate, 2, totalSamples, func(sample, channel int) float32 {
		if channel == 0 {
			return left
		}
		return right
	})
}
