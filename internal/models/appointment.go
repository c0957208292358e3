package models

import "time"

// Appointment представляет встречу пользователя.
// Дата встречи не может находиться в прошлом.
type Appointment struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	OwnerUID    string    `json:"owner_uid,omitempty"`
}

// NewAppointment создает встречу, проверяя все поля.
func NewAppointment(id string, date time.Time, description string) (Appointment, error) {
	var a Appointment
	var err error
	if a.ID, err = validateLength(id, "id", minFieldLength, maxIDLength); err != nil {
		return Appointment{}, err
	}
	if err = a.Update(date, description); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

// Update обновляет дату и описание встречи атомарно.
func (a *Appointment) Update(date time.Time, description string) error {
	if err := validateDateNotPast(date, "date"); err != nil {
		return err
	}
	validDesc, err := validateLength(description, "description", minFieldLength, maxDescLength)
	if err != nil {
		return err
	}
	a.Date = date
	a.Description = validDesc
	return nil
}

// AppointmentRequest используется для приёма данных из JSON-запроса.
// Дата приходит строкой в формате RFC3339 и парсится вручную.
type AppointmentRequest struct {
	ID          string `json:"id" validate:"required,max=10"`
	Date        string `json:"date" validate:"required"`
	Description string `json:"description" validate:"required,max=50"`
}
