package alm_test

import (
	"net/url"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rlc-community-providers/rlc-hpalm-provider/pkg/alm"
)

var _ = Describe("DefectQuery", func() {
	Context("Filter", func() {
		// Given a query with a title and multiple statuses
		// When we render the filter expression
		// Then both clauses appear joined by a semicolon
		It("should render title and status clauses", func() {
			// Arrange
			q := alm.DefectQuery{
				Title:    "login",
				Statuses: []string{"New", "Open"},
			}

			// Act
			filter := q.Filter()

			// Assert
			Expect(filter).To(Equal("{name[*login*]; status[New or Open]}"))
		})

		// Given a query with statuses only
		// When we render the filter expression
		// Then only the status clause appears
		It("should render a status-only filter", func() {
			q := alm.DefectQuery{Statuses: []string{"Closed"}}

			Expect(q.Filter()).To(Equal("{status[Closed]}"))
		})

		// Given a query with a title only
		// When we render the filter expression
		// Then only the name clause appears, wrapped in wildcards
		It("should render a title-only filter with wildcards", func() {
			q := alm.DefectQuery{Title: "timeout"}

			Expect(q.Filter()).To(Equal("{name[*timeout*]}"))
		})

		// Given an empty query
		// When we render the filter expression
		// Then the braces are still emitted
		It("should render empty braces for an empty query", func() {
			q := alm.DefectQuery{}

			Expect(q.Filter()).To(Equal("{}"))
		})

		// Given several statuses
		// When we render the filter expression
		// Then they are joined with " or "
		It("should join statuses with or", func() {
			q := alm.DefectQuery{Statuses: []string{"New", "Open", "Reopen"}}

			Expect(q.Filter()).To(Equal("{status[New or Open or Reopen]}"))
		})
	})

	Context("Encode", func() {
		// Given a query with filter clauses
		// When we encode it
		// Then the result is the form-encoded filter expression
		It("should form-encode the filter expression", func() {
			// Arrange
			q := alm.DefectQuery{Title: "login", Statuses: []string{"New", "Open"}}

			// Act
			encoded := q.Encode()

			// Assert
			Expect(encoded).To(Equal(url.QueryEscape("{name[*login*]; status[New or Open]}")))

			decoded, err := url.QueryUnescape(encoded)
			Expect(err).NotTo(HaveOccurred())
			Expect(decoded).To(Equal(q.Filter()))
		})

		// Given an empty query
		// When we encode it
		// Then the encoded empty braces survive
		It("should encode empty braces", func() {
			q := alm.DefectQuery{}

			Expect(q.Encode()).To(Equal(url.QueryEscape("{}")))
		})
	})
})
