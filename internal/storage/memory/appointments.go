package memory

import (
	"context"

	"github.com/magabrotheeeer/contact-hub/internal/models"
)

// AppointmentStore — хранилище встреч в памяти.
type AppointmentStore struct {
	c *collection[models.Appointment]
}

// NewAppointmentStore создает пустое хранилище встреч.
func NewAppointmentStore() *AppointmentStore {
	return &AppointmentStore{
		c: newCollection(func(a models.Appointment) (string, string) {
			return a.ID, a.OwnerUID
		}),
	}
}

// CreateAppointment сохраняет новую встречу.
func (s *AppointmentStore) CreateAppointment(_ context.Context, a models.Appointment) error {
	return s.c.create(a)
}

// FindAppointmentByID возвращает встречу по идентификатору в пределах владельца.
func (s *AppointmentStore) FindAppointmentByID(_ context.Context, id, ownerUID string) (*models.Appointment, error) {
	a, err := s.c.find(id, ownerUID)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateAppointment обновляет существующую встречу.
func (s *AppointmentStore) UpdateAppointment(_ context.Context, a models.Appointment) error {
	return s.c.update(a)
}

// DeleteAppointment удаляет встречу по идентификатору в пределах владельца.
func (s *AppointmentStore) DeleteAppointment(_ context.Context, id, ownerUID string) error {
	return s.c.delete(id, ownerUID)
}

// ListAppointments возвращает встречи владельца с пагинацией.
func (s *AppointmentStore) ListAppointments(_ context.Context, ownerUID string, limit, offset int) ([]models.Appointment, error) {
	return s.c.list(func(a models.Appointment) bool { return a.OwnerUID == ownerUID }, limit, offset), nil
}

// ListAllAppointments возвращает встречи всех пользователей с пагинацией.
func (s *AppointmentStore) ListAllAppointments(_ context.Context, limit, offset int) ([]models.Appointment, error) {
	return s.c.list(func(models.Appointment) bool { return true }, limit, offset), nil
}
