package stagetimer

import (
	"bytes"
	"errors"
	"testing"
	"time"

	. "github.com/onsi/gomega"
)

// fakeClock advances by step on every reading.
func fakeClock(step time.Duration) func() time.Duration {
	var now time.Duration
	return func() time.Duration {
		now += step
		return now
	}
}

func TestTimeRecordsStages(t *testing.T) {
	g := NewWithT(t)

	timer := &Timer{now: fakeClock(time.Millisecond)}

	g.Expect(timer.Time("createInstance", func() error { return nil })).To(Succeed())

	boom := errors.New("boom")
	g.Expect(timer.Time("createDevice", func() error { return boom })).To(MatchError(boom))

	g.Expect(timer.Stages()).To(Equal([]Stage{
		{Name: "createInstance", Elapsed: time.Millisecond},
		{Name: "createDevice", Elapsed: time.Millisecond, Failed: true},
	}))
	g.Expect(timer.Total()).To(Equal(2 * time.Millisecond))
}

func TestReport(t *testing.T) {
	g := NewWithT(t)

	timer := &Timer{now: fakeClock(2 * time.Millisecond)}
	_ = timer.Time("createSwapchain", func() error { return nil })
	_ = timer.Time("createShaderModules", func() error { return errors.New("no file") })

	var out bytes.Buffer
	timer.Report(&out)

	g.Expect(out.String()).To(ContainSubstring("createSwapchain"))
	g.Expect(out.String()).To(ContainSubstring("2ms"))
	g.Expect(out.String()).To(ContainSubstring("createShaderModules"))
	g.Expect(out.String()).To(ContainSubstring("(failed)"))
	g.Expect(out.String()).To(MatchRegexp(`total\s+4ms`))
}

func TestNewUsesRealClock(t *testing.T) {
	g := NewWithT(t)

	timer := New()
	_ = timer.Time("sleep", func() error {
		time.Sleep(time.Millisecond)
		return nil
	})
	g.Expect(timer.Total()).To(BeNumerically(">=", time.Millisecond))
}
