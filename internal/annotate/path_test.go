package annotate_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fitscape/internal/alphabet"
	"github.com/san-kum/fitscape/internal/annotate"
	"github.com/san-kum/fitscape/internal/landscape"
)

var _ = Describe("Build", func() {
	var land *landscape.Landscape

	BeforeEach(func() {
		var err error
		land, err = landscape.Generate(alphabet.AminoAcids.Len())
		Expect(err).NotTo(HaveOccurred())
	})

	Context("with the default pairs", func() {
		var path *annotate.Path

		BeforeEach(func() {
			var err error
			path, err = annotate.Build(alphabet.AminoAcids, land, annotate.DefaultPairs)
			Expect(err).NotTo(HaveOccurred())
		})

		It("produces ten points and nine segments", func() {
			Expect(path.Points).To(HaveLen(10))
			Expect(path.Segments).To(HaveLen(9))
		})

		It("joins consecutive points in input order", func() {
			for k, seg := range path.Segments {
				Expect(seg.From).To(Equal(path.Points[k]))
				Expect(seg.To).To(Equal(path.Points[k+1]))
			}
		})

		It("keeps the input order of pairs", func() {
			for k, pt := range path.Points {
				Expect(pt.Pair).To(Equal(annotate.DefaultPairs[k]))
			}
		})

		It("resolves A,C to (0,1) with the closed-form height", func() {
			first := path.Points[0]
			Expect(first.I).To(Equal(0))
			Expect(first.J).To(Equal(1))
			want := 0.5*math.Sin(0)*math.Cos(0.5) +
				0.5*math.Exp(-0.1*((0.0-10)*(0.0-10)+(1.0-10)*(1.0-10))) +
				0.25*math.Sin(0)*math.Cos(0.5)
			Expect(first.Height).To(BeNumerically("~", want, 1e-9))
		})

		It("resolves W,Y to (18,19)", func() {
			last := path.Points[9]
			Expect(last.I).To(Equal(18))
			Expect(last.J).To(Equal(19))
			Expect(last.Height).To(Equal(landscape.Fitness(18, 19, 20)))
		})

		It("reads every height from the landscape", func() {
			for _, pt := range path.Points {
				h, err := land.At(pt.I, pt.J)
				Expect(err).NotTo(HaveOccurred())
				Expect(pt.Height).To(Equal(h))
			}
			Expect(path.Heights()).To(HaveLen(10))
		})

		It("labels points with the pair and two-decimal height", func() {
			Expect(path.Labels()[0]).To(Equal("A,C: 0.00"))
		})
	})

	It("fails on a symbol outside the alphabet", func() {
		pairs := []annotate.Pair{{"A", "C"}, {"B", "D"}}
		path, err := annotate.Build(alphabet.AminoAcids, land, pairs)
		Expect(path).To(BeNil())
		Expect(err).To(MatchError(alphabet.ErrUnknownSymbol))
		Expect(err.Error()).To(ContainSubstring(`"B"`))
	})

	It("never defaults an unknown second symbol to index 0", func() {
		_, err := annotate.Build(alphabet.AminoAcids, land, []annotate.Pair{{"A", "Z"}})
		Expect(err).To(MatchError(alphabet.ErrUnknownSymbol))
	})

	It("builds no segments for a single point", func() {
		path, err := annotate.Build(alphabet.AminoAcids, land, []annotate.Pair{{"G", "G"}})
		Expect(err).NotTo(HaveOccurred())
		Expect(path.Points).To(HaveLen(1))
		Expect(path.Segments).To(BeEmpty())
	})

	It("rejects a landscape of another size", func() {
		small, err := landscape.Generate(5)
		Expect(err).NotTo(HaveOccurred())
		_, err = annotate.Build(alphabet.AminoAcids, small, annotate.DefaultPairs)
		Expect(err).To(MatchError(annotate.ErrSizeMismatch))
	})
})

var _ = Describe("ParsePairs", func() {
	It("returns the default pairs for empty input", func() {
		pairs, err := annotate.ParsePairs(nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(pairs).To(Equal(annotate.DefaultPairs))
	})

	It("trims whitespace", func() {
		pairs, err := annotate.ParsePairs([]string{" A , C", "D,E "})
		Expect(err).NotTo(HaveOccurred())
		Expect(pairs).To(Equal([]annotate.Pair{{"A", "C"}, {"D", "E"}}))
	})

	DescribeTable("rejects malformed entries",
		func(entry string) {
			_, err := annotate.ParsePairs([]string{entry})
			Expect(err).To(MatchError(annotate.ErrMalformedPair))
		},
		Entry("no comma", "AC"),
		Entry("too many parts", "A,C,D"),
		Entry("empty first", ",C"),
		Entry("empty second", "A, "),
	)
})
