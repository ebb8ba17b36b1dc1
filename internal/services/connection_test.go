package services_test

import (
	"context"
	"database/sql"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rlc-community-providers/rlc-hpalm-provider/internal/models"
	"github.com/rlc-community-providers/rlc-hpalm-provider/internal/services"
	"github.com/rlc-community-providers/rlc-hpalm-provider/internal/store"
	"github.com/rlc-community-providers/rlc-hpalm-provider/internal/store/migrations"
	srvErrors "github.com/rlc-community-providers/rlc-hpalm-provider/pkg/errors"
)

func validConnection(name string) *models.Connection {
	return &models.Connection{
		Name:     name,
		URL:      "http://alm.example.com:8080",
		Username: "alm-user",
		Password: "alm-pass",
	}
}

var _ = Describe("ConnectionService", func() {
	var (
		ctx     context.Context
		db      *sql.DB
		s       *store.Store
		service *services.ConnectionService
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		db, err = store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())
		Expect(migrations.Run(ctx, db)).To(Succeed())
		s = store.NewStore(db)
		service = services.NewConnectionService(s)
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	Context("Create", func() {
		// Given an empty store
		// When we create the first profile
		// Then it gets a generated id, the default domain and becomes active
		It("should activate the first profile and fill defaults", func() {
			// Act
			created, err := service.Create(ctx, validConnection("first"))

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(created.ID).NotTo(BeEmpty())
			Expect(created.Domain).To(Equal(models.DefaultDomain))
			Expect(created.Active).To(BeTrue())
		})

		// Given an existing active profile
		// When we create a second profile without the active flag
		// Then the first profile stays active
		It("should not steal the active flag", func() {
			first, err := service.Create(ctx, validConnection("first"))
			Expect(err).NotTo(HaveOccurred())

			second, err := service.Create(ctx, validConnection("second"))
			Expect(err).NotTo(HaveOccurred())
			Expect(second.Active).To(BeFalse())

			active, err := s.Connection().GetActive(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(active.ID).To(Equal(first.ID))
		})

		// Given an existing active profile
		// When we create a second profile with the active flag set
		// Then the active flag moves to the new profile
		It("should activate a profile created with the active flag", func() {
			_, err := service.Create(ctx, validConnection("first"))
			Expect(err).NotTo(HaveOccurred())

			conn := validConnection("second")
			conn.Active = true
			second, err := service.Create(ctx, conn)
			Expect(err).NotTo(HaveOccurred())
			Expect(second.Active).To(BeTrue())

			active, err := s.Connection().GetActive(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(active.ID).To(Equal(second.ID))
		})

		// Given a profile missing required fields
		// When we create it
		// Then a validation error is returned
		It("should validate required fields", func() {
			conn := validConnection("incomplete")
			conn.Username = ""

			_, err := service.Create(ctx, conn)

			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsValidationError(err)).To(BeTrue())
		})
	})

	Context("List", func() {
		BeforeEach(func() {
			_, err := service.Create(ctx, validConnection("beta"))
			Expect(err).NotTo(HaveOccurred())
			_, err = service.Create(ctx, validConnection("alpha"))
			Expect(err).NotTo(HaveOccurred())
		})

		// Given two stored profiles
		// When we list without filters
		// Then both come back sorted by name with the total count
		It("should list profiles with the total", func() {
			result, err := service.List(ctx, services.ConnectionListParams{})

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Total).To(Equal(2))
			Expect(result.Connections[0].Name).To(Equal("alpha"))
			Expect(result.Connections[1].Name).To(Equal("beta"))
		})

		// Given two stored profiles
		// When we list one page of size one
		// Then the total still reflects every stored profile
		It("should paginate while keeping the full total", func() {
			result, err := service.List(ctx, services.ConnectionListParams{Limit: 1})

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Connections).To(HaveLen(1))
			Expect(result.Total).To(Equal(2))
		})
	})

	Context("Update", func() {
		// Given a stored profile
		// When we update it with the active flag
		// Then the changes persist and the profile becomes active
		It("should update and activate a profile", func() {
			// Arrange
			_, err := service.Create(ctx, validConnection("first"))
			Expect(err).NotTo(HaveOccurred())
			second, err := service.Create(ctx, validConnection("second"))
			Expect(err).NotTo(HaveOccurred())

			// Act
			second.Name = "renamed"
			second.Active = true
			updated, err := service.Update(ctx, second)

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal("renamed"))
			Expect(updated.Active).To(BeTrue())
		})

		// Given the currently active profile
		// When we update it with the active flag cleared
		// Then the profile stays active; the flag only moves by activating another
		It("should keep the profile active when the flag is cleared", func() {
			// Arrange
			first, err := service.Create(ctx, validConnection("only"))
			Expect(err).NotTo(HaveOccurred())
			Expect(first.Active).To(BeTrue())

			// Act
			first.Active = false
			updated, err := service.Update(ctx, first)

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Active).To(BeTrue())

			active, err := s.Connection().GetActive(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(active.ID).To(Equal(first.ID))
		})

		// Given an empty store
		// When we update a missing profile
		// Then a not found error is returned
		It("should return a not found error for a missing profile", func() {
			conn := validConnection("ghost")
			conn.ID = "missing"

			_, err := service.Update(ctx, conn)

			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})

	Context("Delete", func() {
		// Given a stored profile
		// When we delete it
		// Then it is gone
		It("should delete a profile", func() {
			created, err := service.Create(ctx, validConnection("doomed"))
			Expect(err).NotTo(HaveOccurred())

			Expect(service.Delete(ctx, created.ID)).To(Succeed())

			_, err = service.Get(ctx, created.ID)
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})
})
