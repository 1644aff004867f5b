package audio

import (
	"errors"
	"io"
)

// ReadAll reads the stream until it is exhausted.
func ReadAll[S Sample](stream AudioStream[S]) ([]S, error) {
	sampleCount := max(0, stream.Config().SampleCount())
	samples := make([]S, 0, sampleCount)

	var buf [4096]S

	for {
		n, err := stream.Read(buf[:])
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if errors.Is(err, io.EOF) || (err == nil && n == 0) {
			return samples, nil
		}

		if err != nil {
			return nil, err
		}
	}
}
