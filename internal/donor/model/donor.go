package model

// Donor is a person or organisation that gives donations.
type Donor struct {
	ID      int64  `json:"id" db:"ID"`
	UserID  int64  `json:"userId" db:"USER_ID"`
	Name    string `json:"name" db:"NAME" binding:"required"`
	Email   string `json:"email" db:"EMAIL" binding:"omitempty,email"`
	Phone   string `json:"phone" db:"PHONE"`
	Address string `json:"address" db:"ADDRESS"`
	Photo   []byte `json:"photo" db:"PHOTO"`
}

// ApplyUpdate copies the updatable fields of other onto d.
func (d *Donor) ApplyUpdate(other *Donor) {
	d.UserID = other.UserID
	d.Name = other.Name
	d.Email = other.Email
	d.Phone = other.Phone
	d.Address = other.Address
	d.Photo = other.Photo
}
