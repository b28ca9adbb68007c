package groups

import (
	"fmt"

	admin "google.golang.org/api/admin/directory/v1"
)

// Group represents a Google Workspace group.
type Group struct {
	// ID is the unique identifier of the group (read-only)
	ID string `json:"id"`

	// Email is the group's email address
	Email string `json:"email"`

	// Name is the group's display name
	Name string `json:"name"`

	// Description is an extended description of the group's purpose
	Description string `json:"description,omitempty"`

	// AdminCreated indicates whether the group was created by an admin (read-only)
	AdminCreated bool `json:"adminCreated"`

	// DirectMembersCount is the number of direct members
	DirectMembersCount int64 `json:"directMembersCount,omitempty"`

	// Aliases are the group's email aliases (read-only)
	Aliases []string `json:"aliases,omitempty"`

	// NonEditableAliases are aliases managed by the domain (read-only)
	NonEditableAliases []string `json:"nonEditableAliases,omitempty"`

	// Etag is the ETag of the resource
	Etag string `json:"etag,omitempty"`
}

// Member represents a membership of a user or group in a group.
type Member struct {
	// ID is the unique identifier of the member (read-only)
	ID string `json:"id"`

	// Email is the member's email address
	Email string `json:"email"`

	// Role is the member's role: OWNER, MANAGER or MEMBER
	Role string `json:"role"`

	// Type is the member type: USER, GROUP, CUSTOMER or EXTERNAL (immutable)
	Type string `json:"type"`

	// Status is the membership status, e.g. ACTIVE or SUSPENDED (immutable)
	Status string `json:"status,omitempty"`

	// DeliverySettings controls mail delivery for the member
	DeliverySettings string `json:"deliverySettings,omitempty"`

	// Etag is the ETag of the resource
	Etag string `json:"etag,omitempty"`
}

// IsActive returns true if the member is an active, non-suspended user.
func (m *Member) IsActive() bool {
	return m.Type == MemberTypeUser && m.Status == "ACTIVE"
}

// Member roles.
const (
	RoleOwner   = "OWNER"
	RoleManager = "MANAGER"
	RoleMember  = "MEMBER"
)

// Member types.
const (
	MemberTypeUser     = "USER"
	MemberTypeGroup    = "GROUP"
	MemberTypeCustomer = "CUSTOMER"
	MemberTypeExternal = "EXTERNAL"
)

// Mail delivery settings.
const (
	DeliveryAllMail  = "ALL_MAIL"
	DeliveryDaily    = "DAILY"
	DeliveryDigest   = "DIGEST"
	DeliveryDisabled = "DISABLED"
	DeliveryNone     = "NONE"
)

// MemberInput is the input for adding a member to a group.
type MemberInput struct {
	// Email is the member's email address (required)
	Email string

	// Role is the member's role (required): OWNER, MANAGER or MEMBER
	Role string

	// Type is the member type (default USER)
	Type string

	// DeliverySettings controls mail delivery (default ALL_MAIL)
	DeliverySettings string
}

// Validate checks the input and applies the documented defaults.
func (in *MemberInput) Validate() error {
	if in.Email == "" {
		return fmt.Errorf("member email is required")
	}
	if err := ValidateRole(in.Role); err != nil {
		return err
	}
	if in.Type == "" {
		in.Type = MemberTypeUser
	}
	switch in.Type {
	case MemberTypeUser, MemberTypeGroup, MemberTypeCustomer, MemberTypeExternal:
	default:
		return fmt.Errorf("invalid member type %q: must be one of USER, GROUP, CUSTOMER, EXTERNAL", in.Type)
	}
	if in.DeliverySettings == "" {
		in.DeliverySettings = DeliveryAllMail
	}
	return ValidateDeliverySettings(in.DeliverySettings)
}

// ValidateRole checks that role is one of the Directory API member roles.
func ValidateRole(role string) error {
	switch role {
	case RoleOwner, RoleManager, RoleMember:
		return nil
	}
	return fmt.Errorf("invalid member role %q: must be one of OWNER, MANAGER, MEMBER", role)
}

// ValidateDeliverySettings checks that the delivery setting is valid.
func ValidateDeliverySettings(delivery string) error {
	switch delivery {
	case DeliveryAllMail, DeliveryDaily, DeliveryDigest, DeliveryDisabled, DeliveryNone:
		return nil
	}
	return fmt.Errorf("invalid delivery settings %q: must be one of ALL_MAIL, DAILY, DIGEST, DISABLED, NONE", delivery)
}

// toGroup converts a Directory API group to our Group type.
func toGroup(g *admin.Group) Group {
	if g == nil {
		return Group{}
	}
	return Group{
		ID:                 g.Id,
		Email:              g.Email,
		Name:               g.Name,
		Description:        g.Description,
		AdminCreated:       g.AdminCreated,
		DirectMembersCount: g.DirectMembersCount,
		Aliases:            g.Aliases,
		NonEditableAliases: g.NonEditableAliases,
		Etag:               g.Etag,
	}
}

// toMember converts a Directory API member to our Member type.
func toMember(m *admin.Member) Member {
	if m == nil {
		return Member{}
	}
	return Member{
		ID:               m.Id,
		Email:            m.Email,
		Role:             m.Role,
		Type:             m.Type,
		Status:           m.Status,
		DeliverySettings: m.DeliverySettings,
		Etag:             m.Etag,
	}
}
