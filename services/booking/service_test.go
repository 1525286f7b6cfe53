package booking

import (
	"testing"
	"time"

	"contracthub/models"
	"contracthub/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput(contractorID string) models.BookingInput {
	return models.BookingInput{
		ContractorID: contractorID,
		ServiceDetails: models.ServiceDetails{
			Category:  "electrical",
			Price:     200,
			PriceType: models.PriceHourly,
		},
		ScheduledDate: time.Now().UTC().Add(24 * time.Hour),
		ScheduledTime: "09:00",
		TotalAmount:   200,
	}
}

func TestCreateValidation(t *testing.T) {
	f := newFixture()

	cases := []struct {
		name   string
		mutate func(*models.BookingInput)
	}{
		{"missing contractor", func(in *models.BookingInput) { in.ContractorID = "" }},
		{"missing category", func(in *models.BookingInput) { in.ServiceDetails.Category = "" }},
		{"bad price type", func(in *models.BookingInput) { in.ServiceDetails.PriceType = "weekly" }},
		{"zero amount", func(in *models.BookingInput) { in.TotalAmount = 0 }},
		{"negative amount", func(in *models.BookingInput) { in.TotalAmount = -5 }},
		{"missing date", func(in *models.BookingInput) { in.ScheduledDate = time.Time{} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput(f.contractorID)
			tc.mutate(&input)
			var validationErr *utils.ValidationError
			_, err := f.svc.Create(f.client, input)
			require.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestCreateRequiresClientRole(t *testing.T) {
	f := newFixture()

	var authErr *utils.AuthorizationError
	_, err := f.svc.Create(f.contractor, validInput(f.contractorID))
	require.ErrorAs(t, err, &authErr)

	// Admin may create on a client's behalf.
	_, err = f.svc.Create(f.admin, validInput(f.contractorID))
	require.NoError(t, err)
}

func TestCreateUnknownContractor(t *testing.T) {
	f := newFixture()

	var notFound *utils.NotFoundError
	_, err := f.svc.Create(f.client, validInput("ghost"))
	require.ErrorAs(t, err, &notFound)
}

func TestCreateInactiveContractor(t *testing.T) {
	f := newFixture()
	contractor, err := f.contractors.GetByID(f.contractorID)
	require.NoError(t, err)
	contractor.IsActive = false
	require.NoError(t, f.contractors.Update(contractor))

	var validationErr *utils.ValidationError
	_, err = f.svc.Create(f.client, validInput(f.contractorID))
	require.ErrorAs(t, err, &validationErr)
}

func TestCreateSnapshotsServiceDetails(t *testing.T) {
	f := newFixture()
	b := f.createBooking(150)

	assert.Equal(t, "plumbing", b.ServiceDetails.Category)
	assert.Equal(t, models.BookingPending, b.Status)
	assert.Equal(t, f.client.ID, b.ClientID)
	assert.Equal(t, f.contractorID, b.ContractorID)
	assert.NotEmpty(t, b.ID)
}

func TestGetVisibility(t *testing.T) {
	f := newFixture()
	b := f.createBooking(100)

	for _, actor := range []models.Actor{f.client, f.contractor, f.admin} {
		got, err := f.svc.Get(actor, b.ID)
		require.NoError(t, err, "actor %s", actor.ID)
		assert.Equal(t, b.ID, got.ID)
	}

	stranger := models.Actor{ID: "client-2", Role: models.RoleClient}
	var authErr *utils.AuthorizationError
	_, err := f.svc.Get(stranger, b.ID)
	require.ErrorAs(t, err, &authErr)

	var notFound *utils.NotFoundError
	_, err = f.svc.Get(f.client, "missing")
	require.ErrorAs(t, err, &notFound)
}

func TestListJobRequestsOnlyPending(t *testing.T) {
	f := newFixture()
	first := f.createBooking(50)
	second := f.createBooking(75)
	_, err := f.svc.Transition(f.contractor, first.ID, models.BookingAccepted)
	require.NoError(t, err)

	requests, err := f.svc.ListJobRequests(f.contractor)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, second.ID, requests[0].ID)

	var notFound *utils.NotFoundError
	_, err = f.svc.ListJobRequests(models.Actor{ID: "no-profile", Role: models.RoleContractor})
	require.ErrorAs(t, err, &notFound)
}
