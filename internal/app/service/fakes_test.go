package service

import (
	"sort"
	"time"

	"backend/internal/app/ds"

	"github.com/google/uuid"
)

// fakeRepo — хранилище в памяти для тестов сервисов. Повторяет контракт
// репозитория: soft delete скрывает записи, создание брони перепроверяет
// занятость суток.
type fakeRepo struct {
	environments map[uuid.UUID]ds.Environment
	reservations map[uuid.UUID]ds.EnvReservation
	users        map[uuid.UUID]ds.User
	deleted      map[uuid.UUID]bool
	now          time.Time
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		environments: map[uuid.UUID]ds.Environment{},
		reservations: map[uuid.UUID]ds.EnvReservation{},
		users:        map[uuid.UUID]ds.User{},
		deleted:      map[uuid.UUID]bool{},
		now:          time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

// tick возвращает монотонно растущее время для created_at
func (f *fakeRepo) tick() time.Time {
	f.now = f.now.Add(time.Second)
	return f.now
}

func (f *fakeRepo) addEnvironment(env ds.Environment) ds.Environment {
	if env.ID == uuid.Nil {
		env.ID = uuid.New()
	}
	env.CreatedAt = f.tick()
	f.environments[env.ID] = env
	return env
}

func (f *fakeRepo) addReservation(res ds.EnvReservation) ds.EnvReservation {
	if res.ID == uuid.Nil {
		res.ID = uuid.New()
	}
	res.CreatedAt = f.tick()
	f.reservations[res.ID] = res
	return res
}

func (f *fakeRepo) addUser(user ds.User) ds.User {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = f.tick()
	f.users[user.ID] = user
	return user
}

// ============ EnvironmentRepository ============

func (f *fakeRepo) CreateEnvironment(env *ds.Environment) error {
	*env = f.addEnvironment(*env)
	return nil
}

func (f *fakeRepo) GetEnvironments(status string, includeDisabled bool) ([]ds.Environment, error) {
	var result []ds.Environment
	for id, env := range f.environments {
		if f.deleted[id] {
			continue
		}
		if status != "" && string(env.Status) != status {
			continue
		}
		if !includeDisabled && env.Status == ds.EnvironmentDisabled {
			continue
		}
		result = append(result, env)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

func (f *fakeRepo) GetEnvironmentByID(id uuid.UUID) (*ds.Environment, error) {
	env, ok := f.environments[id]
	if !ok || f.deleted[id] {
		return nil, ds.ErrNotFound
	}
	return &env, nil
}

func (f *fakeRepo) GetEnvironmentReservations(id uuid.UUID) ([]ds.EnvReservation, error) {
	if _, err := f.GetEnvironmentByID(id); err != nil {
		return nil, err
	}
	var result []ds.EnvReservation
	for resID, res := range f.reservations {
		if f.deleted[resID] || res.EnvironmentID != id {
			continue
		}
		result = append(result, res)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

func (f *fakeRepo) UpdateEnvironment(id uuid.UUID, updates map[string]interface{}) (*ds.Environment, error) {
	env, ok := f.environments[id]
	if !ok || f.deleted[id] {
		return nil, ds.ErrNotFound
	}
	if v, ok := updates["name"]; ok {
		env.Name = v.(string)
	}
	if v, ok := updates["description"]; ok {
		env.Description = v.(string)
	}
	if v, ok := updates["capacity"]; ok {
		env.Capacity = v.(uint)
	}
	if v, ok := updates["status"]; ok {
		env.Status = v.(ds.EnvironmentStatus)
	}
	if v, ok := updates["image_url"]; ok {
		s := v.(string)
		env.ImageURL = &s
	}
	env.UpdatedAt = f.tick()
	f.environments[id] = env
	return &env, nil
}

func (f *fakeRepo) DeleteEnvironment(id uuid.UUID) error {
	if _, err := f.GetEnvironmentByID(id); err != nil {
		return err
	}
	f.deleted[id] = true
	return nil
}

func (f *fakeRepo) CountEnvironments(status string) (int64, error) {
	envs, _ := f.GetEnvironments(status, true)
	return int64(len(envs)), nil
}

// ============ ReservationRepository ============

func (f *fakeRepo) CountBlockingReservations(environmentID uuid.UUID, from, to time.Time) (int64, error) {
	var count int64
	for id, res := range f.reservations {
		if f.deleted[id] || res.EnvironmentID != environmentID {
			continue
		}
		blocking := false
		for _, s := range ds.BlockingReservationStatuses {
			if res.Status == s {
				blocking = true
			}
		}
		if !blocking {
			continue
		}
		if res.DateIn.Before(from) || res.DateIn.After(to) {
			continue
		}
		count++
	}
	return count, nil
}

func (f *fakeRepo) CreateReservation(res *ds.EnvReservation) error {
	if _, err := f.GetEnvironmentByID(res.EnvironmentID); err != nil {
		return err
	}
	from, to := ds.DayWindow(res.DateIn)
	count, _ := f.CountBlockingReservations(res.EnvironmentID, from, to)
	if count > 0 {
		return ds.ErrEnvironmentUnavailable
	}
	*res = f.addReservation(*res)
	return nil
}

func (f *fakeRepo) GetReservations(status string) ([]ds.EnvReservation, error) {
	var result []ds.EnvReservation
	for id, res := range f.reservations {
		if f.deleted[id] {
			continue
		}
		if status != "" && string(res.Status) != status {
			continue
		}
		result = append(result, res)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

func (f *fakeRepo) GetReservationsByUser(userID uuid.UUID, status string) ([]ds.EnvReservation, error) {
	all, _ := f.GetReservations(status)
	var result []ds.EnvReservation
	for _, res := range all {
		if res.UserID == userID {
			result = append(result, res)
		}
	}
	return result, nil
}

func (f *fakeRepo) GetReservationByID(id uuid.UUID) (*ds.EnvReservation, error) {
	res, ok := f.reservations[id]
	if !ok || f.deleted[id] {
		return nil, ds.ErrNotFound
	}
	return &res, nil
}

func (f *fakeRepo) UpdateReservation(id uuid.UUID, updates map[string]interface{}) (*ds.EnvReservation, error) {
	res, ok := f.reservations[id]
	if !ok || f.deleted[id] {
		return nil, ds.ErrNotFound
	}
	if v, ok := updates["status"]; ok {
		res.Status = v.(ds.ReservationStatus)
	}
	res.UpdatedAt = f.tick()
	f.reservations[id] = res
	return &res, nil
}

func (f *fakeRepo) DeleteReservation(id uuid.UUID) error {
	if _, err := f.GetReservationByID(id); err != nil {
		return err
	}
	f.deleted[id] = true
	return nil
}

func (f *fakeRepo) CountReservations(status string) (int64, error) {
	all, _ := f.GetReservations(status)
	return int64(len(all)), nil
}

// ============ UserRepository ============

func (f *fakeRepo) GetUsers() ([]ds.User, error) {
	var result []ds.User
	for id, user := range f.users {
		if f.deleted[id] {
			continue
		}
		result = append(result, user)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

func (f *fakeRepo) GetUserByID(id uuid.UUID) (*ds.User, error) {
	user, ok := f.users[id]
	if !ok || f.deleted[id] {
		return nil, ds.ErrNotFound
	}
	return &user, nil
}

func (f *fakeRepo) UpdateUser(id uuid.UUID, updates map[string]interface{}) (*ds.User, error) {
	user, ok := f.users[id]
	if !ok || f.deleted[id] {
		return nil, ds.ErrNotFound
	}
	if v, ok := updates["full_name"]; ok {
		user.FullName = v.(string)
	}
	if v, ok := updates["password"]; ok {
		user.Password = v.(string)
	}
	if v, ok := updates["avatar"]; ok {
		s := v.(string)
		user.Avatar = &s
	}
	user.UpdatedAt = f.tick()
	f.users[id] = user
	return &user, nil
}

func (f *fakeRepo) DeleteUser(id uuid.UUID) error {
	if _, err := f.GetUserByID(id); err != nil {
		return err
	}
	f.deleted[id] = true
	return nil
}

func (f *fakeRepo) CountUsers() (int64, error) {
	users, _ := f.GetUsers()
	return int64(len(users)), nil
}

// ============ ImageStorage ============

type fakeStorage struct {
	uploaded []string
	deleted  []string
	failNext bool
}

func (f *fakeStorage) UploadFile(fileData []byte, originalFilename string) (string, error) {
	if f.failNext {
		return "", ds.ErrNotFound
	}
	name := "uploaded_" + originalFilename
	f.uploaded = append(f.uploaded, name)
	return name, nil
}

func (f *fakeStorage) DeleteFile(filename string) error {
	f.deleted = append(f.deleted, filename)
	return nil
}
