package identity

import (
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewRecordID returns a 24-char lowercase hex record key
// (timestamp + machine + pid + counter, ObjectID layout). Uniqueness is
// best-effort; at dashboard scale collisions are an accepted risk.
func NewRecordID() string {
	return primitive.NewObjectID().Hex()
}

// NewCustomerID returns an uppercase v4 UUID, assigned once to customers
// that arrive without a prior id.
func NewCustomerID() string {
	return strings.ToUpper(uuid.NewString())
}
