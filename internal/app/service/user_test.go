package service

import (
	"testing"
	"time"

	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/role"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hashStub(password string) string { return "hashed:" + password }

func TestUserUpdate_SelfAndAdmin(t *testing.T) {
	repo := newFakeRepo()
	user := repo.addUser(ds.User{Login: "resident1", FullName: "Иван", Role: role.User})
	svc := NewUserService(repo, hashStub, &fakeStorage{})

	// сам пользователь меняет свой профиль
	updated, err := svc.Update(user.ID, dto.UpdateUserRequest{FullName: "Иван Петров"},
		Actor{ID: user.ID, Role: role.User}, nil, "")
	require.NoError(t, err)
	assert.Equal(t, "Иван Петров", updated.FullName)

	// чужой пользователь — нет
	_, err = svc.Update(user.ID, dto.UpdateUserRequest{FullName: "x"},
		Actor{ID: uuid.New(), Role: role.User}, nil, "")
	assert.ErrorIs(t, err, ds.ErrForbidden)

	// администратор — да, пароль хешируется
	updated, err = svc.Update(user.ID, dto.UpdateUserRequest{Password: "secret12"},
		Actor{ID: uuid.New(), Role: role.Admin}, nil, "")
	require.NoError(t, err)
	assert.Equal(t, "hashed:secret12", updated.Password)
}

func TestUserUpdate_AvatarUpload(t *testing.T) {
	repo := newFakeRepo()
	oldAvatar := "old.jpg"
	user := repo.addUser(ds.User{Login: "resident1", Avatar: &oldAvatar, Role: role.User})
	storage := &fakeStorage{}
	svc := NewUserService(repo, hashStub, storage)

	updated, err := svc.Update(user.ID, dto.UpdateUserRequest{},
		Actor{ID: user.ID, Role: role.User}, []byte("img"), "new.jpg")
	require.NoError(t, err)
	require.NotNil(t, updated.Avatar)
	assert.Equal(t, "uploaded_new.jpg", *updated.Avatar)
	assert.Equal(t, []string{"old.jpg"}, storage.deleted)
}

func TestUserRemove_SoftDelete(t *testing.T) {
	repo := newFakeRepo()
	user := repo.addUser(ds.User{Login: "resident1"})
	svc := NewUserService(repo, hashStub, &fakeStorage{})

	require.NoError(t, svc.Remove(user.ID))

	_, err := svc.FindOne(user.ID)
	assert.ErrorIs(t, err, ds.ErrNotFound)

	total, err := svc.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
}

func TestUserFindEnvReservationsByID(t *testing.T) {
	repo := newFakeRepo()
	env := repo.addEnvironment(ds.Environment{Name: "Зал", Status: ds.EnvironmentAvailable})
	user := repo.addUser(ds.User{Login: "resident1"})
	res := repo.addReservation(ds.EnvReservation{
		EnvironmentID: env.ID, UserID: user.ID, Status: ds.ReservationPending,
		DateIn: day(10), DateOut: day(11),
	})
	repo.addReservation(ds.EnvReservation{
		EnvironmentID: env.ID, UserID: uuid.New(), Status: ds.ReservationPending,
		DateIn: day(10).Add(24 * time.Hour), DateOut: day(11).Add(24 * time.Hour),
	})
	svc := NewUserService(repo, hashStub, &fakeStorage{})

	reservations, err := svc.FindEnvReservationsByID(user.ID)
	require.NoError(t, err)
	require.Len(t, reservations, 1)
	assert.Equal(t, res.ID, reservations[0].ID)

	_, err = svc.FindEnvReservationsByID(uuid.New())
	assert.ErrorIs(t, err, ds.ErrNotFound)
}
