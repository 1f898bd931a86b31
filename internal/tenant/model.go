package tenant

import "time"

// DefaultPlan is applied when a create request omits the plan.
const DefaultPlan = "free"

// Tenant represents an isolated customer account. Slug uniqueness is not
// enforced anywhere in this scope.
type Tenant struct {
	ID        string
	Name      string
	Slug      string
	Plan      string
	CreatedAt time.Time
}

// CreateInput carries the fields accepted on tenant creation.
type CreateInput struct {
	Name string
	Slug string
	Plan string
}
