package customers

import "time"

// Customer is a single document in the customers collection. The document
// key doubles as the public identifier; which value ends up there depends
// on the configured IdentityPolicy.
type Customer struct {
	CustomerID   string     `bson:"_id" json:"customerId"`
	Name         string     `bson:"name" json:"name"`
	VatID        string     `bson:"vatId" json:"vatId"`
	Address      string     `bson:"address" json:"address"`
	CreationDate *time.Time `bson:"creationDate,omitempty" json:"creationDate"`
}
