package entity

// Роли пользователей (таблица users принадлежит внешней подсистеме аутентификации,
// здесь используется только для чтения)
const (
	RoleAdmin   = 1
	RoleStudent = 3
)

// UserRef - read-only проекция пользователя из внешней таблицы users
type UserRef struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	CompanyID uint   `json:"company_id"`
	RoleID    int    `json:"role_id"`
	IsActive  bool   `gorm:"column:isactive" json:"isactive"`
}

// TableName определяет имя таблицы для GORM
func (UserRef) TableName() string {
	return "users"
}
