package model

// Donation is a listing of goods offered for collection.
type Donation struct {
	ID          int64  `json:"id" db:"ID"`
	Title       string `json:"title" db:"TITLE" binding:"required"`
	Description string `json:"description" db:"DESCRIPTION"`
	Type        string `json:"type" db:"TYPE"`
	Photo       []byte `json:"photo" db:"PHOTO"`
	Location    string `json:"location" db:"LOCATION"`
	Address     string `json:"address" db:"ADDRESS"`
}

// ApplyUpdate copies the updatable fields of other onto d.
func (d *Donation) ApplyUpdate(other *Donation) {
	d.Title = other.Title
	d.Description = other.Description
	d.Type = other.Type
	d.Photo = other.Photo
	d.Location = other.Location
	d.Address = other.Address
}
