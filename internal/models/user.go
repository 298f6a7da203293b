package models

// User is the schema for the user collection. No routes operate on it yet.
type User struct {
	ID       string `json:"id,omitempty" bson:"-"`
	Name     string `json:"name" bson:"name" validate:"required"`
	Email    string `json:"email" bson:"email" validate:"required,email"`
	Address  string `json:"address" bson:"address" validate:"required"`
	Age      *int   `json:"age,omitempty" bson:"age,omitempty" validate:"omitempty,gte=0,lte=120"`
	IsActive *bool  `json:"is_active" bson:"is_active"`
}

// ApplyDefaults fills the schema defaults for fields the client omitted.
func (u *User) ApplyDefaults() {
	if u.IsActive == nil {
		active := true
		u.IsActive = &active
	}
}
