package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/Eesar1/booking-system/internal/domain/appointment"
	"github.com/Eesar1/booking-system/internal/httperr"
)

func strPtr(s string) *string { return &s }

func TestUpdate_CustomerCancelsOwnAppointment(t *testing.T) {
	repo := newFakeRepo()
	owner := repo.addUser("customer")
	service := repo.addService()
	ap := repo.addAppointment(owner.ID, service.ID)

	uc := NewUpdateAppointment(repo, nil)

	updated, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		AppointmentID: ap.ID.String(),
		ActorID:       owner.ID,
		ActorRole:     domain.RoleCustomer,
		Patch:         domain.UpdatePatch{Status: strPtr("cancelled")},
	})
	require.NoError(t, err)

	assert.Equal(t, "cancelled", updated.Status)
	assert.Equal(t, 1, repo.updateCalls)
	assert.Equal(t, map[string]any{"status": "cancelled"}, repo.lastUpdate)
}

func TestUpdate_CustomerCannotConfirm(t *testing.T) {
	repo := newFakeRepo()
	owner := repo.addUser("customer")
	service := repo.addService()
	ap := repo.addAppointment(owner.ID, service.ID)

	uc := NewUpdateAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		AppointmentID: ap.ID.String(),
		ActorID:       owner.ID,
		ActorRole:     domain.RoleCustomer,
		Patch:         domain.UpdatePatch{Status: strPtr("confirmed")},
	})
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))
	assert.Zero(t, repo.updateCalls)
}

func TestUpdate_UnknownStatusRejected(t *testing.T) {
	repo := newFakeRepo()
	admin := repo.addUser("admin")
	customer := repo.addUser("customer")
	service := repo.addService()
	ap := repo.addAppointment(customer.ID, service.ID)

	uc := NewUpdateAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		AppointmentID: ap.ID.String(),
		ActorID:       admin.ID,
		ActorRole:     domain.RoleAdmin,
		Patch:         domain.UpdatePatch{Status: strPtr("archived")},
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
	assert.Zero(t, repo.updateCalls)
}

func TestUpdate_NonOwnerForbidden(t *testing.T) {
	repo := newFakeRepo()
	owner := repo.addUser("customer")
	stranger := repo.addUser("customer")
	service := repo.addService()
	ap := repo.addAppointment(owner.ID, service.ID)

	uc := NewUpdateAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		AppointmentID: ap.ID.String(),
		ActorID:       stranger.ID,
		ActorRole:     domain.RoleCustomer,
		Patch:         domain.UpdatePatch{Notes: strPtr("mine now")},
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "forbidden"))
}

func TestUpdate_CustomerReassignmentSilentlyDropped(t *testing.T) {
	repo := newFakeRepo()
	owner := repo.addUser("customer")
	other := repo.addUser("customer")
	service := repo.addService()
	ap := repo.addAppointment(owner.ID, service.ID)

	uc := NewUpdateAppointment(repo, nil)

	updated, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		AppointmentID: ap.ID.String(),
		ActorID:       owner.ID,
		ActorRole:     domain.RoleCustomer,
		Patch: domain.UpdatePatch{
			Customer: strPtr(other.ID.String()),
			Notes:    strPtr("bring paperwork"),
		},
	})
	require.NoError(t, err)

	// The customer field never reaches the store; the rest of the patch does.
	assert.Equal(t, owner.ID, updated.CustomerID)
	assert.Equal(t, map[string]any{"notes": "bring paperwork"}, repo.lastUpdate)
}

func TestUpdate_AdminReassignsCustomer(t *testing.T) {
	repo := newFakeRepo()
	admin := repo.addUser("admin")
	owner := repo.addUser("customer")
	other := repo.addUser("customer")
	service := repo.addService()
	ap := repo.addAppointment(owner.ID, service.ID)

	uc := NewUpdateAppointment(repo, nil)

	updated, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		AppointmentID: ap.ID.String(),
		ActorID:       admin.ID,
		ActorRole:     domain.RoleAdmin,
		Patch:         domain.UpdatePatch{Customer: strPtr(other.ID.String())},
	})
	require.NoError(t, err)
	assert.Equal(t, other.ID, updated.CustomerID)
}

func TestUpdate_AdminReassignToAdminRejected(t *testing.T) {
	repo := newFakeRepo()
	admin := repo.addUser("admin")
	owner := repo.addUser("customer")
	otherAdmin := repo.addUser("admin")
	service := repo.addService()
	ap := repo.addAppointment(owner.ID, service.ID)

	uc := NewUpdateAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		AppointmentID: ap.ID.String(),
		ActorID:       admin.ID,
		ActorRole:     domain.RoleAdmin,
		Patch:         domain.UpdatePatch{Customer: strPtr(otherAdmin.ID.String())},
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "customer_not_found"))
	assert.Zero(t, repo.updateCalls)
}

func TestUpdate_UnknownServiceBlocksWholePatch(t *testing.T) {
	repo := newFakeRepo()
	admin := repo.addUser("admin")
	owner := repo.addUser("customer")
	service := repo.addService()
	ap := repo.addAppointment(owner.ID, service.ID)

	uc := NewUpdateAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		AppointmentID: ap.ID.String(),
		ActorID:       admin.ID,
		ActorRole:     domain.RoleAdmin,
		Patch: domain.UpdatePatch{
			Service: strPtr("3f5bb7e0-3c4d-4a47-9d9e-000000000000"),
			Notes:   strPtr("should never land"),
		},
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
	assert.Zero(t, repo.updateCalls)
	assert.Empty(t, repo.appointments[ap.ID].Notes)
}

func TestUpdate_InvalidDateBlocksWholePatch(t *testing.T) {
	repo := newFakeRepo()
	owner := repo.addUser("customer")
	service := repo.addService()
	ap := repo.addAppointment(owner.ID, service.ID)

	uc := NewUpdateAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		AppointmentID: ap.ID.String(),
		ActorID:       owner.ID,
		ActorRole:     domain.RoleCustomer,
		Patch: domain.UpdatePatch{
			AppointmentDate: strPtr("01/09/2026"),
			Notes:           strPtr("should never land"),
		},
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_appointment_date"))
	assert.Zero(t, repo.updateCalls)
}

func TestUpdate_EmptyPatchSkipsWrite(t *testing.T) {
	repo := newFakeRepo()
	owner := repo.addUser("customer")
	service := repo.addService()
	ap := repo.addAppointment(owner.ID, service.ID)

	uc := NewUpdateAppointment(repo, nil)

	got, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		AppointmentID: ap.ID.String(),
		ActorID:       owner.ID,
		ActorRole:     domain.RoleCustomer,
		Patch:         domain.UpdatePatch{},
	})
	require.NoError(t, err)
	assert.Equal(t, ap.ID, got.ID)
	assert.Zero(t, repo.updateCalls)
}

func TestUpdate_MalformedID(t *testing.T) {
	repo := newFakeRepo()
	owner := repo.addUser("customer")

	uc := NewUpdateAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		AppointmentID: "abc",
		ActorID:       owner.ID,
		ActorRole:     domain.RoleCustomer,
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_appointment_id"))
}

func TestUpdate_MissingAppointment(t *testing.T) {
	repo := newFakeRepo()
	owner := repo.addUser("customer")

	uc := NewUpdateAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		AppointmentID: "3f5bb7e0-3c4d-4a47-9d9e-000000000000",
		ActorID:       owner.ID,
		ActorRole:     domain.RoleCustomer,
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestUpdate_TimeFieldsStoredVerbatim(t *testing.T) {
	repo := newFakeRepo()
	admin := repo.addUser("admin")
	owner := repo.addUser("customer")
	service := repo.addService()
	ap := repo.addAppointment(owner.ID, service.ID)

	uc := NewUpdateAppointment(repo, nil)

	updated, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		AppointmentID: ap.ID.String(),
		ActorID:       admin.ID,
		ActorRole:     domain.RoleAdmin,
		Patch: domain.UpdatePatch{
			StartTime: strPtr("whenever"),
			EndTime:   strPtr("later"),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "whenever", updated.StartTime)
	assert.Equal(t, "later", updated.EndTime)
}
