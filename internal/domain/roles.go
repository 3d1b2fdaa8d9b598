package domain

// Role is the authenticated role carried in a verified token.
type Role string

// The closed role set. RoleUser appears in a handful of legacy requirement
// declarations but is never issued by login.
const (
	RoleBrand      Role = "brand"
	RoleInfluencer Role = "influencer"
	RoleUser       Role = "user"
)

// ValidLoginRole reports whether r may be assigned to a registering user.
func ValidLoginRole(r Role) bool {
	return r == RoleBrand || r == RoleInfluencer
}

// ContextPrincipal is the authenticated identity derived from a verified
// credential. Built fresh per request, never persisted.
type ContextPrincipal struct {
	SubjectID string
	Role      Role
}

// OperationRoles maps operation identifiers to the role sets allowed to
// invoke them. A nil or empty set means any authenticated principal. The
// router consults this table; nothing else grants access.
var OperationRoles = map[string][]Role{
	"users.linkBrand":              {RoleBrand, RoleInfluencer},
	"users.linkInfluencer":         {RoleBrand, RoleInfluencer},
	"brands.create":                {RoleBrand},
	"brands.list":                  {RoleInfluencer, RoleBrand},
	"brands.get":                   {RoleBrand},
	"brands.update":                {RoleBrand},
	"brands.delete":                {RoleBrand},
	"influencers.create":           {RoleBrand, RoleInfluencer},
	"influencers.list":             {RoleBrand},
	"influencers.get":              {RoleBrand, RoleInfluencer},
	"influencers.update":           {RoleInfluencer},
	"influencers.delete":           {RoleInfluencer},
	"campaigns.list":               nil,
	"campaigns.get":                nil,
	"campaigns.create":             {RoleBrand},
	"campaigns.update":             {RoleBrand},
	"campaigns.delete":             {RoleBrand},
	"submissions.list":             {RoleBrand, RoleInfluencer},
	"submissions.brandReport":      {RoleBrand},
	"submissions.influencerReport": {RoleInfluencer, RoleBrand},
	"submissions.get":              {RoleBrand, RoleInfluencer},
	"submissions.create":           {RoleInfluencer},
	"submissions.update":           {RoleInfluencer, RoleBrand},
	"submissions.delete":           {RoleInfluencer},
}

// RequiredRoles returns the requirement declared for an operation.
// Unknown operations have an empty requirement (authenticated-only).
func RequiredRoles(operation string) []Role {
	return OperationRoles[operation]
}
