package alm_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rlc-community-providers/rlc-hpalm-provider/pkg/alm"
	srvErrors "github.com/rlc-community-providers/rlc-hpalm-provider/pkg/errors"
)

var _ = Describe("Parsing", func() {
	Context("ParseProjects", func() {
		// Given a projects envelope with two projects
		// When we parse it
		// Then both project names are returned
		It("should parse the projects envelope", func() {
			// Arrange
			payload := []byte(`{
				"Projects": {
					"Project": [
						{"Name": "Demo"},
						{"Name": "Payments"}
					]
				}
			}`)

			// Act
			projects, err := alm.ParseProjects(payload)

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(projects).To(HaveLen(2))
			Expect(projects[0].Name).To(Equal("Demo"))
			Expect(projects[1].Name).To(Equal("Payments"))
		})

		// Given an empty projects envelope
		// When we parse it
		// Then an empty list is returned without error
		It("should return an empty list for an empty envelope", func() {
			projects, err := alm.ParseProjects([]byte(`{"Projects": {"Project": []}}`))

			Expect(err).NotTo(HaveOccurred())
			Expect(projects).To(BeEmpty())
		})

		// Given malformed JSON
		// When we parse it
		// Then a typed parse error is returned
		It("should return a parse error for malformed JSON", func() {
			_, err := alm.ParseProjects([]byte(`{"Projects": `))

			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsParseError(err)).To(BeTrue())
		})
	})

	Context("ParseDefects", func() {
		// Given an entities envelope with field arrays
		// When we parse it
		// Then fields map onto the defect and the record Type wins
		It("should map field arrays onto defects", func() {
			// Arrange
			payload := []byte(`{
				"entities": [
					{
						"Fields": [
							{"Name": "id", "values": [{"value": "17"}]},
							{"Name": "name", "values": [{"value": "Login fails"}]},
							{"Name": "status", "values": [{"value": "Open"}]},
							{"Name": "severity", "values": [{"value": "2-High"}]},
							{"Name": "detected-by", "values": [{"value": "alice"}]},
							{"Name": "type", "values": [{"value": "ignored"}]}
						],
						"Type": "defect"
					}
				]
			}`)

			// Act
			defects, err := alm.ParseDefects(payload)

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(defects).To(HaveLen(1))
			Expect(defects[0].ID).To(Equal("17"))
			Expect(defects[0].Name).To(Equal("Login fails"))
			Expect(defects[0].Status).To(Equal("Open"))
			Expect(defects[0].Severity).To(Equal("2-High"))
			Expect(defects[0].Creator).To(Equal("alice"))
			Expect(defects[0].Type).To(Equal("defect"))
		})

		// Given a field with an empty values array
		// When we parse it
		// Then the attribute is the empty string, not absent
		It("should map a missing value to the empty string", func() {
			payload := []byte(`{
				"entities": [
					{
						"Fields": [
							{"Name": "id", "values": [{"value": "3"}]},
							{"Name": "owner", "values": []},
							{"Name": "priority", "values": [{}]}
						],
						"Type": "defect"
					}
				]
			}`)

			defects, err := alm.ParseDefects(payload)

			Expect(err).NotTo(HaveOccurred())
			Expect(defects).To(HaveLen(1))
			Expect(defects[0].Owner).To(Equal(""))
			Expect(defects[0].Priority).To(Equal(""))
		})

		// Given a field with multiple values
		// When we parse it
		// Then only the first value is kept
		It("should keep the first of multiple values", func() {
			payload := []byte(`{
				"entities": [
					{
						"Fields": [
							{"Name": "status", "values": [{"value": "Open"}, {"value": "Closed"}]}
						],
						"Type": "defect"
					}
				]
			}`)

			defects, err := alm.ParseDefects(payload)

			Expect(err).NotTo(HaveOccurred())
			Expect(defects[0].Status).To(Equal("Open"))
		})

		// Given a non-string field value
		// When we parse it
		// Then the value is rendered as its string form
		It("should render numeric values as strings", func() {
			payload := []byte(`{
				"entities": [
					{
						"Fields": [
							{"Name": "id", "values": [{"value": 42}]}
						],
						"Type": "defect"
					}
				]
			}`)

			defects, err := alm.ParseDefects(payload)

			Expect(err).NotTo(HaveOccurred())
			Expect(defects[0].ID).To(Equal("42"))
		})

		// Given unknown field names
		// When we parse the envelope
		// Then they are ignored without error
		It("should ignore unknown field names", func() {
			payload := []byte(`{
				"entities": [
					{
						"Fields": [
							{"Name": "id", "values": [{"value": "9"}]},
							{"Name": "some-custom-field", "values": [{"value": "x"}]}
						],
						"Type": "defect"
					}
				]
			}`)

			defects, err := alm.ParseDefects(payload)

			Expect(err).NotTo(HaveOccurred())
			Expect(defects[0].ID).To(Equal("9"))
		})

		// Given malformed JSON
		// When we parse it
		// Then a typed parse error is returned instead of an empty list
		It("should return a parse error for malformed JSON", func() {
			_, err := alm.ParseDefects([]byte(`not json`))

			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsParseError(err)).To(BeTrue())
		})
	})

	Context("ParseDefect", func() {
		// Given a single defect record without the entities wrapper
		// When we parse it
		// Then the fields map onto the defect
		It("should parse a single defect record", func() {
			// Arrange
			payload := []byte(`{
				"Fields": [
					{"Name": "id", "values": [{"value": "101"}]},
					{"Name": "name", "values": [{"value": "Crash on save"}]},
					{"Name": "project", "values": [{"value": "Demo"}]},
					{"Name": "creation-time", "values": [{"value": "2026-03-14"}]},
					{"Name": "last-modified", "values": [{"value": "2026-03-20 09:15:00"}]}
				],
				"Type": "defect"
			}`)

			// Act
			defect, err := alm.ParseDefect(payload)

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(defect.ID).To(Equal("101"))
			Expect(defect.Name).To(Equal("Crash on save"))
			Expect(defect.Project).To(Equal("Demo"))
			Expect(defect.DateCreated).To(Equal("2026-03-14"))
			Expect(defect.LastUpdated).To(Equal("2026-03-20 09:15:00"))
		})

		// Given malformed JSON
		// When we parse it
		// Then a typed parse error is returned
		It("should return a parse error for malformed JSON", func() {
			_, err := alm.ParseDefect([]byte(`{"Fields": [`))

			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsParseError(err)).To(BeTrue())
		})
	})
})
