package models

// Seeded role names. Authorization always resolves the role through the
// user's loaded UserType, never through an assumed row id.
const (
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// UserType is immutable reference data seeded at startup.
type UserType struct {
	ID   uint64 `gorm:"primarykey" json:"id"`
	Name string `gorm:"type:varchar(50);uniqueIndex;not null" json:"user_type"`

	// Relations
	Users []User `gorm:"foreignKey:UserTypeID" json:"-"`
}
