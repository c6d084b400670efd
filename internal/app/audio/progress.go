package audio

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

type ProgressConfig struct {
	Enabled bool
	Writer  io.Writer
}

// Indicator shows that a recording is running.
type Indicator interface {
	Update(frames int)
	Done()
}

// NewIndicator returns a spinner on config.Writer, or a no-op when disabled.
func NewIndicator(config ProgressConfig, sampleRate int) Indicator {
	if !config.Enabled {
		return noopIndicator{}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	container := mpb.New(
		mpb.WithOutput(writer),
		mpb.WithRefreshRate(120*time.Millisecond),
	)

	bar := container.New(0,
		mpb.SpinnerStyle(),
		mpb.PrependDecorators(
			decor.Name("Recording ", decor.WC{C: decor.DindentRight}),
			decor.Any(func(st decor.Statistics) string {
				return FormatDuration(int(st.Current), sampleRate)
			}, decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.Name(" press Ctrl+C to stop"),
		),
	)

	return &spinnerIndicator{container: container, bar: bar}
}

type spinnerIndicator struct {
	container *mpb.Progress
	bar       *mpb.Bar
}

func (s *spinnerIndicator) Update(frames int) {
	s.bar.SetCurrent(int64(frames))
}

func (s *spinnerIndicator) Done() {
	if s.bar == nil {
		return
	}
	s.bar.SetTotal(-1, true)
	s.container.Wait()
	s.bar = nil
}

type noopIndicator struct{}

func (noopIndicator) Update(int) {}
func (noopIndicator) Done() {}

func IsTTY(writer io.Writer) bool {
	if writer == nil {
		return false
	}

	if file, ok := writer.(*os.File); ok {
		stat, err := file.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

// ShouldShowProgress enables the spinner only on an interactive stderr.
func ShouldShowProgress(disabled bool) bool {
	if disabled {
		return false
	}
	return IsTTY(os.Stderr)
}

// FormatDuration renders a frame count as m:ss.
func FormatDuration(frames int, sampleRate int) string {
	if sampleRate <= 0 {
		return "0:00"
	}
	secs := frames / sampleRate
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
