package model

import "time"

// Admin represents a back office account. Admins are provisioned with the
// seed-admin CLI; there is no self-registration for this identity domain.
type Admin struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Hash      string    `json:"-"`
	Name      string    `json:"name"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}
