package domain

import "time"

type Vendor struct {
	ID        string
	Name      string
	Phone     string
	CreatedAt time.Time
}
