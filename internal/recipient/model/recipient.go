package model

// Recipient is a person or organisation receiving donations, together with
// the KYC documents collected at registration.
type Recipient struct {
	ID                        int64  `json:"id" db:"ID"`
	UserID                    int64  `json:"userId" db:"USER_ID"`
	Name                      string `json:"name" db:"NAME" binding:"required"`
	Age                       int    `json:"age" db:"AGE" binding:"gte=0"`
	Address                   string `json:"address" db:"ADDRESS"`
	Location                  string `json:"location" db:"LOCATION"`
	OrganizationName          string `json:"organizationName" db:"ORGANIZATION_NAME"`
	PAN                       string `json:"pan" db:"PAN"`
	Aadhaar                   string `json:"aadhaar" db:"AADHAAR"`
	Phone                     string `json:"phone" db:"PHONE"`
	Email                     string `json:"email" db:"EMAIL" binding:"omitempty,email"`
	OrganizationCertificateID string `json:"organizationCertificateId" db:"ORGANIZATION_CERTIFICATE_ID"`
	OrganizationCertificate   []byte `json:"organizationCertificate" db:"ORGANIZATION_CERTIFICATE"`
	Photo                     []byte `json:"photo" db:"PHOTO"`
	Signature                 []byte `json:"signature" db:"SIGNATURE"`
}

// ApplyUpdate copies the updatable fields of other onto r. The organisation
// certificate and signature are fixed at registration and are left as is.
func (r *Recipient) ApplyUpdate(other *Recipient) {
	r.UserID = other.UserID
	r.Name = other.Name
	r.Age = other.Age
	r.Address = other.Address
	r.Location = other.Location
	r.OrganizationName = other.OrganizationName
	r.PAN = other.PAN
	r.Aadhaar = other.Aadhaar
	r.Phone = other.Phone
	r.Email = other.Email
	r.OrganizationCertificateID = other.OrganizationCertificateID
	r.Photo = other.Photo
}
