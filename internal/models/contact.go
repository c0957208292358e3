package models

// Ограничения полей контакта. Совпадают с ограничениями колонок в базе,
// поэтому проверка здесь избавляет хранилище от ошибок усечения.
const (
	minFieldLength    = 1
	maxIDLength       = 10
	maxNameLength     = 10
	maxAddressLength  = 30
	phoneDigits       = 10
	maxTaskNameLength = 20
	maxDescLength     = 50
	maxProjNameLength = 50
	maxProjDescLength = 100
	maxRoleLength     = 50
)

// Contact представляет контакт пользователя.
//
// ID неизменяем после создания. OwnerUID выставляется сервисным слоем
// из аутентифицированного субъекта; значение из запроса игнорируется.
type Contact struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	OwnerUID  string `json:"owner_uid,omitempty"`
}

// NewContact создает контакт, проверяя и нормализуя все поля.
// Любое нарушение ограничений возвращает ошибку apperr.ErrValidation.
func NewContact(id, firstName, lastName, phone, address string) (Contact, error) {
	var c Contact
	var err error
	if c.ID, err = validateLength(id, "id", minFieldLength, maxIDLength); err != nil {
		return Contact{}, err
	}
	if err = c.Update(firstName, lastName, phone, address); err != nil {
		return Contact{}, err
	}
	return c, nil
}

// Update обновляет изменяемые поля контакта, предварительно проверив
// каждое новое значение. Если хоть одно значение некорректно, контакт
// не меняется вовсе.
func (c *Contact) Update(firstName, lastName, phone, address string) error {
	validFirst, err := validateLength(firstName, "first_name", minFieldLength, maxNameLength)
	if err != nil {
		return err
	}
	validLast, err := validateLength(lastName, "last_name", minFieldLength, maxNameLength)
	if err != nil {
		return err
	}
	validPhone, err := validateDigits(phone, "phone", phoneDigits)
	if err != nil {
		return err
	}
	validAddress, err := validateLength(address, "address", minFieldLength, maxAddressLength)
	if err != nil {
		return err
	}
	c.FirstName = validFirst
	c.LastName = validLast
	c.Phone = validPhone
	c.Address = validAddress
	return nil
}

// ContactRequest используется для приёма данных из JSON-запроса,
// прежде чем конвертировать их в Contact.
type ContactRequest struct {
	ID        string `json:"id" validate:"required,max=10"`
	FirstName string `json:"first_name" validate:"required,max=10"`
	LastName  string `json:"last_name" validate:"required,max=10"`
	Phone     string `json:"phone" validate:"required,numeric,len=10"`
	Address   string `json:"address" validate:"required,max=30"`
}
