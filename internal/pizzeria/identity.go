package pizzeria

import (
	"strings"

	"github.com/google/uuid"
)

// OrderIDPrefix marks generated order identifiers.
const OrderIDPrefix = "ORD-"

// ComputeRoot derives a deterministic UUID v5 from a domain and business key.
//
// The UUID is derived from: hash("pizzeria" + domain + business_key)
// using the OID namespace.
func ComputeRoot(domain, businessKey string) uuid.UUID {
	seed := "pizzeria" + domain + businessKey
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(seed))
}

// NewOrderID returns a fresh, human-friendly order identifier.
func NewOrderID() string {
	id := uuid.New().String()
	return OrderIDPrefix + strings.ToUpper(id[:8])
}

// FavoriteRoot computes a deterministic key for a saved product, so the same
// customer saving the same product name twice lands on one favorite.
func FavoriteRoot(customerEmail, productName string) uuid.UUID {
	return ComputeRoot("favorite", strings.ToLower(customerEmail)+"/"+productName)
}
