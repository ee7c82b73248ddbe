package audio

import (
	"errors"

	"github.com/faiface/beep"
)

type fakeOutput struct {
	rate       beep.SampleRate
	played     []beep.Streamer
	suspended  bool
	resumes    int
	failResume bool
}

func newFakeOutput() *fakeOutput {
	return &fakeOutput{rate: 44100}
}

func (f *fakeOutput) Play(s beep.Streamer) { f.played = append(f.played, s) }
func (f *fakeOutput) Do(fn func())         { fn() }

func (f *fakeOutput) Resume() error {
	f.resumes++
	if f.failResume {
		return errors.New("no device")
	}
	f.suspended = false
	return nil
}

func (f *fakeOutput) Suspended() bool             { return f.suspended }
func (f *fakeOutput) SampleRate() beep.SampleRate { return f.rate }

// drain streams s until it ends or max samples were produced, returning the
// number of samples and the peak absolute value seen on either channel.
func drain(s beep.Streamer, max int) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for total < max {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for _, v := range buf[i] {
				if v < 0 {
					v = -v
				}
				if v > peak {
					peak = v
				}
			}
		}
		total += n
		if !ok {
			break
		}
	}
	return total, peak
}
