package service

import (
	"testing"

	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/role"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminActor() Actor { return Actor{ID: uuid.New(), Role: role.Admin} }
func userActor() Actor  { return Actor{ID: uuid.New(), Role: role.User} }

func TestEnvironmentCreate_DefaultStatus(t *testing.T) {
	repo := newFakeRepo()
	svc := NewEnvironmentService(repo, &fakeStorage{})

	err := svc.Create(dto.CreateEnvironmentRequest{Name: "Спортзал", Capacity: 10}, nil, "")
	require.NoError(t, err)

	envs, err := svc.FindAll(adminActor(), "")
	require.NoError(t, err)
	require.Len(t, envs, 1)
	assert.Equal(t, ds.EnvironmentAvailable, envs[0].Status)
	assert.EqualValues(t, 10, envs[0].Capacity)
}

func TestEnvironmentCreate_WithImage(t *testing.T) {
	repo := newFakeRepo()
	storage := &fakeStorage{}
	svc := NewEnvironmentService(repo, storage)

	err := svc.Create(dto.CreateEnvironmentRequest{Name: "Зал", Capacity: 4},
		[]byte("png-data"), "hall.png")
	require.NoError(t, err)

	envs, _ := svc.FindAll(adminActor(), "")
	require.Len(t, envs, 1)
	require.NotNil(t, envs[0].ImageURL)
	assert.Equal(t, "uploaded_hall.png", *envs[0].ImageURL)
	assert.Len(t, storage.uploaded, 1)
}

func TestEnvironmentFindAll_VisibilityFilter(t *testing.T) {
	repo := newFakeRepo()
	repo.addEnvironment(ds.Environment{Name: "Зал", Status: ds.EnvironmentAvailable})
	repo.addEnvironment(ds.Environment{Name: "Бассейн", Status: ds.EnvironmentDisabled})
	svc := NewEnvironmentService(repo, &fakeStorage{})

	// обычный пользователь не видит отключённые помещения
	envs, err := svc.FindAll(userActor(), "")
	require.NoError(t, err)
	require.Len(t, envs, 1)
	assert.Equal(t, "Зал", envs[0].Name)

	// даже при явном фильтре disabled
	envs, err = svc.FindAll(userActor(), "disabled")
	require.NoError(t, err)
	assert.Empty(t, envs)

	// администратор видит всё
	envs, err = svc.FindAll(adminActor(), "")
	require.NoError(t, err)
	assert.Len(t, envs, 2)

	envs, err = svc.FindAll(adminActor(), "disabled")
	require.NoError(t, err)
	require.Len(t, envs, 1)
	assert.Equal(t, "Бассейн", envs[0].Name)
}

func TestEnvironmentFindAll_InvalidStatus(t *testing.T) {
	svc := NewEnvironmentService(newFakeRepo(), &fakeStorage{})

	_, err := svc.FindAll(adminActor(), "broken")
	assert.ErrorIs(t, err, ds.ErrInvalidEnvironmentStatus)
}

func TestEnvironmentUpdate_StatusWorkflow(t *testing.T) {
	repo := newFakeRepo()
	env := repo.addEnvironment(ds.Environment{Name: "Зал", Status: ds.EnvironmentAvailable})
	svc := NewEnvironmentService(repo, &fakeStorage{})

	// available -> pending
	updated, err := svc.Update(env.ID, dto.UpdateEnvironmentRequest{Status: "pending"}, nil, "")
	require.NoError(t, err)
	assert.Equal(t, ds.EnvironmentPending, updated.Status)

	// pending -> pending запрещён
	_, err = svc.Update(env.ID, dto.UpdateEnvironmentRequest{Status: "pending"}, nil, "")
	var transitionErr *ds.StatusTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, "environment is not available to request", transitionErr.Reason)

	// pending -> locked
	updated, err = svc.Update(env.ID, dto.UpdateEnvironmentRequest{Status: "locked"}, nil, "")
	require.NoError(t, err)
	assert.Equal(t, ds.EnvironmentLocked, updated.Status)

	// locked -> locked запрещён
	_, err = svc.Update(env.ID, dto.UpdateEnvironmentRequest{Status: "locked"}, nil, "")
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, "environment is not ready to approve", transitionErr.Reason)

	// locked -> available
	updated, err = svc.Update(env.ID, dto.UpdateEnvironmentRequest{Status: "available"}, nil, "")
	require.NoError(t, err)
	assert.Equal(t, ds.EnvironmentAvailable, updated.Status)

	// available -> available запрещён
	_, err = svc.Update(env.ID, dto.UpdateEnvironmentRequest{Status: "available"}, nil, "")
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, "environment is not ready to release", transitionErr.Reason)

	// disabled можно выставить из любого состояния
	updated, err = svc.Update(env.ID, dto.UpdateEnvironmentRequest{Status: "disabled"}, nil, "")
	require.NoError(t, err)
	assert.Equal(t, ds.EnvironmentDisabled, updated.Status)
}

func TestEnvironmentUpdate_FieldsWithoutStatus(t *testing.T) {
	repo := newFakeRepo()
	env := repo.addEnvironment(ds.Environment{Name: "Зал", Capacity: 4, Status: ds.EnvironmentAvailable})
	svc := NewEnvironmentService(repo, &fakeStorage{})

	capacity := uint(8)
	updated, err := svc.Update(env.ID, dto.UpdateEnvironmentRequest{
		Name:     "Большой зал",
		Capacity: &capacity,
	}, nil, "")
	require.NoError(t, err)
	assert.Equal(t, "Большой зал", updated.Name)
	assert.EqualValues(t, 8, updated.Capacity)
	// статус не изменился
	assert.Equal(t, ds.EnvironmentAvailable, updated.Status)
}

func TestEnvironmentUpdate_ReplacesOldImage(t *testing.T) {
	repo := newFakeRepo()
	oldImage := "old.png"
	env := repo.addEnvironment(ds.Environment{
		Name: "Зал", Status: ds.EnvironmentAvailable, ImageURL: &oldImage,
	})
	storage := &fakeStorage{}
	svc := NewEnvironmentService(repo, storage)

	updated, err := svc.Update(env.ID, dto.UpdateEnvironmentRequest{}, []byte("data"), "new.png")
	require.NoError(t, err)
	require.NotNil(t, updated.ImageURL)
	assert.Equal(t, "uploaded_new.png", *updated.ImageURL)
	assert.Equal(t, []string{"old.png"}, storage.deleted)
}

func TestEnvironmentUpdate_NotFound(t *testing.T) {
	svc := NewEnvironmentService(newFakeRepo(), &fakeStorage{})

	_, err := svc.Update(uuid.New(), dto.UpdateEnvironmentRequest{Status: "pending"}, nil, "")
	assert.ErrorIs(t, err, ds.ErrNotFound)
}

func TestEnvironmentRemove_SoftDelete(t *testing.T) {
	repo := newFakeRepo()
	env := repo.addEnvironment(ds.Environment{Name: "Зал", Status: ds.EnvironmentAvailable})
	svc := NewEnvironmentService(repo, &fakeStorage{})

	require.NoError(t, svc.Remove(env.ID))

	_, err := svc.FindOne(env.ID)
	assert.ErrorIs(t, err, ds.ErrNotFound)

	err = svc.Remove(env.ID)
	assert.ErrorIs(t, err, ds.ErrNotFound)
}

func TestEnvironmentFindEnvReservationsByID(t *testing.T) {
	repo := newFakeRepo()
	env := repo.addEnvironment(ds.Environment{Name: "Зал", Status: ds.EnvironmentAvailable})
	other := repo.addEnvironment(ds.Environment{Name: "Бассейн", Status: ds.EnvironmentAvailable})
	res := repo.addReservation(ds.EnvReservation{
		EnvironmentID: env.ID, Status: ds.ReservationPending, DateIn: day(10), DateOut: day(11),
	})
	repo.addReservation(ds.EnvReservation{
		EnvironmentID: other.ID, Status: ds.ReservationPending, DateIn: day(10), DateOut: day(11),
	})
	svc := NewEnvironmentService(repo, &fakeStorage{})

	reservations, err := svc.FindEnvReservationsByID(env.ID)
	require.NoError(t, err)
	require.Len(t, reservations, 1)
	assert.Equal(t, res.ID, reservations[0].ID)

	_, err = svc.FindEnvReservationsByID(uuid.New())
	assert.ErrorIs(t, err, ds.ErrNotFound)
}

func TestEnvironmentCount(t *testing.T) {
	repo := newFakeRepo()
	repo.addEnvironment(ds.Environment{Name: "Зал", Status: ds.EnvironmentAvailable})
	repo.addEnvironment(ds.Environment{Name: "Бассейн", Status: ds.EnvironmentDisabled})
	svc := NewEnvironmentService(repo, &fakeStorage{})

	total, err := svc.Count("")
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	disabled, err := svc.Count("disabled")
	require.NoError(t, err)
	assert.EqualValues(t, 1, disabled)

	_, err = svc.Count("broken")
	assert.ErrorIs(t, err, ds.ErrInvalidEnvironmentStatus)
}
