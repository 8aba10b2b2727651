package loop

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/sorter"
	"github.com/sirupsen/logrus"
)

type recorder struct {
	frames []Frame
}

func (r *recorder) Draw(f Frame) { r.frames = append(r.frames, f) }

func (r *recorder) last() Frame { return r.frames[len(r.frames)-1] }

func runToIdle(l *Loop) int {
	ticks := 0
	for l.Sorting() {
		l.Tick()
		ticks++
		Expect(ticks).To(BeNumerically("<", 10000))
	}
	return ticks
}

var _ = Describe("Loop", func() {
	var (
		rec *recorder
		l   *Loop
	)

	BeforeEach(func() {
		rec = &recorder{}
		var err error
		l, err = New(Config{Size: 12, Min: 0, Max: 50, Seed: 42}, rec, nil)
		Expect(err).NotTo(HaveOccurred())
	})

	It("starts idle with bubble sort ascending", func() {
		Expect(l.Sorting()).To(BeFalse())
		Expect(l.Algorithm()).To(Equal("bubble"))
		Expect(l.Direction()).To(Equal(sorter.Ascending))
		Expect(l.Array().Len()).To(Equal(12))
	})

	It("rejects an invalid range", func() {
		_, err := New(Config{Size: 5, Min: 9, Max: 1}, rec, nil)
		Expect(err).To(MatchError(array.ErrInvalidRange))
	})

	It("rejects an unknown algorithm", func() {
		_, err := New(Config{Size: 5, Max: 10, Algorithm: "quick"}, rec, nil)
		Expect(err).To(HaveOccurred())
	})

	It("draws a full frame while idle", func() {
		l.Tick()
		Expect(rec.frames).To(HaveLen(1))
		f := rec.last()
		Expect(f.FullRedraw).To(BeTrue())
		Expect(f.Sorting).To(BeFalse())
		Expect(f.Algorithm).To(Equal("Bubble Sort"))
		Expect(f.Values).To(Equal(l.Array().Values()))
	})

	It("sorts to completion and returns to idle", func() {
		l.Array().Set([]int{5, 3, 8, 1})
		l.Handle(CmdStart)
		Expect(l.Sorting()).To(BeTrue())

		ticks := runToIdle(l)
		Expect(ticks).To(Equal(6))
		Expect(l.Array().Values()).To(Equal([]int{1, 3, 5, 8}))
		Expect(l.Metrics().Values()["writes"]).To(BeNumerically("==", 4))

		for _, f := range rec.frames {
			Expect(f.FullRedraw).To(BeFalse())
			Expect(f.Highlight).To(HaveLen(2))
		}
	})

	It("sorts descending with insertion sort", func() {
		l.Array().Set([]int{5, 3, 8, 1})
		l.Handle(CmdInsertion)
		l.Handle(CmdDescending)
		l.Handle(CmdStart)
		runToIdle(l)
		Expect(l.Array().Values()).To(Equal([]int{8, 5, 3, 1}))
	})

	It("ignores selection commands while sorting", func() {
		l.Handle(CmdStart)
		Expect(l.Handle(CmdDescending)).To(BeFalse())
		Expect(l.Handle(CmdInsertion)).To(BeFalse())
		Expect(l.Handle(CmdStart)).To(BeFalse())
		Expect(l.Direction()).To(Equal(sorter.Ascending))
		Expect(l.Algorithm()).To(Equal("bubble"))
		Expect(l.Active().Name()).To(Equal("Bubble Sort"))
	})

	It("applies selection commands while idle", func() {
		l.Handle(CmdInsertion)
		l.Handle(CmdDescending)
		Expect(l.Algorithm()).To(Equal("insertion"))
		Expect(l.Direction()).To(Equal(sorter.Descending))
		l.Handle(CmdBubble)
		l.Handle(CmdAscending)
		Expect(l.Algorithm()).To(Equal("bubble"))
		Expect(l.Direction()).To(Equal(sorter.Ascending))
	})

	It("discards sorter state on reset", func() {
		l.Handle(CmdStart)
		for i := 0; i < 5; i++ {
			l.Tick()
		}
		first := l.Active()
		outer, inner := first.Counters()
		Expect(outer).To(BeZero())
		Expect(inner).To(Equal(5))

		before := l.Array().Values()
		Expect(l.Handle(CmdReset)).To(BeFalse())
		Expect(l.Sorting()).To(BeFalse())
		Expect(l.Active()).To(BeNil())
		Expect(l.Array().Len()).To(Equal(12))
		Expect(&l.Array().Values()[0]).NotTo(BeIdenticalTo(&before[0]))

		l.Handle(CmdStart)
		Expect(l.Active()).NotTo(BeIdenticalTo(first))
		outer, inner = l.Active().Counters()
		Expect(outer).To(BeZero())
		Expect(inner).To(BeZero())
	})

	It("restarts insertion sort at position one after reset", func() {
		l.Handle(CmdInsertion)
		l.Handle(CmdStart)
		l.Tick()
		l.Tick()
		l.Handle(CmdReset)
		l.Handle(CmdStart)
		outer, cursor := l.Active().Counters()
		Expect(outer).To(Equal(1))
		Expect(cursor).To(Equal(1))
	})

	It("quits from any state", func() {
		Expect(l.Handle(CmdQuit)).To(BeTrue())
		l.Handle(CmdStart)
		Expect(l.Handle(CmdQuit)).To(BeTrue())
	})

	It("logs state transitions", func() {
		var buf bytes.Buffer
		log := logrus.New()
		log.SetOutput(&buf)
		log.SetLevel(logrus.DebugLevel)

		lg, err := New(Config{Size: 3, Max: 9, Seed: 1}, rec, log)
		Expect(err).NotTo(HaveOccurred())
		lg.Handle(CmdStart)
		runToIdle(lg)

		Expect(buf.String()).To(ContainSubstring("sort started"))
		Expect(buf.String()).To(ContainSubstring("sort completed"))
	})

	It("shows the disorder of the array while idle", func() {
		l.Tick()
		f := rec.last()
		want := float64(metrics.Inversions(l.Array().Values(), sorter.Ascending))
		Expect(f.Metrics["inversions"]).To(Equal(want))
		Expect(f.Metrics["steps"]).To(BeZero())
		Expect(f.History).To(Equal([]float64{want}))
	})

	It("clears finished sort metrics on reset", func() {
		l.Handle(CmdStart)
		runToIdle(l)
		Expect(l.Metrics().Values()["steps"]).To(BeNumerically("==", 66))

		l.Handle(CmdReset)
		l.Tick()
		f := rec.last()
		Expect(f.Metrics["steps"]).To(BeZero())
		Expect(f.Metrics["comparisons"]).To(BeZero())
		Expect(f.Metrics["inversions"]).To(Equal(float64(metrics.Inversions(l.Array().Values(), sorter.Ascending))))
	})

	It("recounts disorder when the direction changes", func() {
		l.Array().Set([]int{1, 2, 3, 4})
		l.Handle(CmdDescending)
		Expect(l.Metrics().Values()["inversions"]).To(BeNumerically("==", 6))
		l.Handle(CmdAscending)
		Expect(l.Metrics().Values()["inversions"]).To(BeZero())
	})

	It("parses command names", func() {
		for _, c := range []Command{CmdReset, CmdStart, CmdAscending, CmdDescending, CmdBubble, CmdInsertion, CmdQuit} {
			parsed, err := ParseCommand(c.String())
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed).To(Equal(c))
		}
		_, err := ParseCommand("jump")
		Expect(err).To(HaveOccurred())
	})
})
