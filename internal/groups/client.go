package groups

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
	admin "google.golang.org/api/admin/directory/v1"
	groupssettings "google.golang.org/api/groupssettings/v1"
	"google.golang.org/api/option"

	"github.com/traveloka/gsuite-go/internal/google"
)

// Directory API quota is roughly 2400 queries per minute per user. Staying
// at 10 rps keeps bulk member operations well under it.
const (
	defaultRequestsPerSecond = 10
	defaultBurst             = 10
)

// Client wraps the Admin SDK Directory service and the Groups Settings
// service for managing Google Workspace groups.
type Client struct {
	svc         *admin.Service
	settingsSvc *groupssettings.Service
	account     string
	ctx         context.Context
	limiter     *rate.Limiter
}

// Account returns the account name this client is associated with.
func (c *Client) Account() string {
	return c.account
}

// HasTokenForAccount checks if a valid OAuth token exists for the account.
func HasTokenForAccount(account string) bool {
	return google.HasTokenForAccount(account)
}

// NewClient creates a new Groups client for the given credential config.
// For service_account mode the delegated admin user is impersonated; for
// server_side mode a cached token must exist for the config's account.
func NewClient(ctx context.Context, cfg *google.Config) (*Client, error) {
	httpClient, err := google.HTTPClient(ctx, cfg, google.GroupsScopes...)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain Google credentials for account %s: %w", cfg.AccountName(), err)
	}

	svc, err := admin.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Directory service: %w", err)
	}

	settingsSvc, err := groupssettings.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Groups Settings service: %w", err)
	}

	return &Client{
		svc:         svc,
		settingsSvc: settingsSvc,
		account:     cfg.AccountName(),
		ctx:         ctx,
		limiter:     rate.NewLimiter(rate.Limit(defaultRequestsPerSecond), defaultBurst),
	}, nil
}

// wait blocks until the client-side quota limiter admits another request.
func (c *Client) wait() error {
	if err := c.limiter.Wait(c.ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}
	return nil
}

// CreateGroup creates a group. The email must be unique within the domain.
func (c *Client) CreateGroup(email, name, description string) (*Group, error) {
	if email == "" {
		return nil, fmt.Errorf("group email is required")
	}
	if err := c.wait(); err != nil {
		return nil, err
	}

	created, err := c.svc.Groups.Insert(&admin.Group{
		Email:       email,
		Name:        name,
		Description: description,
	}).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create group %s: %w", email, err)
	}

	result := toGroup(created)
	return &result, nil
}

// GetGroup retrieves a group. The groupKey can be the group's email address,
// an alias, or the unique group ID.
func (c *Client) GetGroup(groupKey string) (*Group, error) {
	if err := c.wait(); err != nil {
		return nil, err
	}

	g, err := c.svc.Groups.Get(groupKey).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get group %s: %w", groupKey, err)
	}

	result := toGroup(g)
	return &result, nil
}

// UpdateGroup updates a group's name and/or description. Empty fields keep
// their current value.
func (c *Client) UpdateGroup(groupKey, name, description string) (*Group, error) {
	if err := c.wait(); err != nil {
		return nil, err
	}

	patch := &admin.Group{}
	if name != "" {
		patch.Name = name
	}
	if description != "" {
		patch.Description = description
	}

	updated, err := c.svc.Groups.Patch(groupKey, patch).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update group %s: %w", groupKey, err)
	}

	result := toGroup(updated)
	return &result, nil
}

// DeleteGroup deletes a group.
func (c *Client) DeleteGroup(groupKey string) error {
	if err := c.wait(); err != nil {
		return err
	}

	if err := c.svc.Groups.Delete(groupKey).Do(); err != nil {
		return fmt.Errorf("failed to delete group %s: %w", groupKey, err)
	}
	return nil
}

// ListGroupsOptions narrows a group listing.
type ListGroupsOptions struct {
	// Domain restricts results to one domain of the account
	Domain string

	// Customer restricts results to the whole customer account
	// (default "my_customer" when Domain is empty)
	Customer string

	// Query is a Directory API search query, e.g. "email:devops-*"
	Query string
}

// ForeachGroup iterates over all groups matching the options, following
// pagination until exhausted.
func (c *Client) ForeachGroup(opts ListGroupsOptions, fn func(*Group) error) error {
	if opts.Domain == "" && opts.Customer == "" {
		opts.Customer = "my_customer"
	}

	pageToken := ""
	for {
		if err := c.wait(); err != nil {
			return err
		}

		req := c.svc.Groups.List()
		if opts.Domain != "" {
			req = req.Domain(opts.Domain)
		}
		if opts.Customer != "" {
			req = req.Customer(opts.Customer)
		}
		if opts.Query != "" {
			req = req.Query(opts.Query)
		}
		if pageToken != "" {
			req = req.PageToken(pageToken)
		}

		res, err := req.Do()
		if err != nil {
			return fmt.Errorf("failed to list groups: %w", err)
		}
		for _, g := range res.Groups {
			group := toGroup(g)
			if err := fn(&group); err != nil {
				return err
			}
		}
		if res.NextPageToken == "" {
			return nil
		}
		pageToken = res.NextPageToken
	}
}

// ListGroups retrieves all groups matching the options.
func (c *Client) ListGroups(opts ListGroupsOptions) ([]Group, error) {
	var result []Group
	err := c.ForeachGroup(opts, func(g *Group) error {
		result = append(result, *g)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetGroupSettings retrieves the Groups Settings of a group by email.
func (c *Client) GetGroupSettings(groupEmail string) (*GroupSettings, error) {
	if err := c.wait(); err != nil {
		return nil, err
	}

	g, err := c.settingsSvc.Groups.Get(groupEmail).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings for group %s: %w", groupEmail, err)
	}

	result := toSettings(g)
	return &result, nil
}

// UpdateGroupSettings patches a group's settings. A nil settings argument
// applies DefaultSettings.
func (c *Client) UpdateGroupSettings(groupEmail string, settings *GroupSettings) (*GroupSettings, error) {
	if settings == nil {
		settings = DefaultSettings()
	}
	if err := c.wait(); err != nil {
		return nil, err
	}

	updated, err := c.settingsSvc.Groups.Patch(groupEmail, settings.toAPI()).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update settings for group %s: %w", groupEmail, err)
	}

	result := toSettings(updated)
	return &result, nil
}

// GetMember retrieves a member of a group. The memberKey can be the member's
// primary email address, an alias, or the unique ID.
func (c *Client) GetMember(groupKey, memberKey string) (*Member, error) {
	if err := c.wait(); err != nil {
		return nil, err
	}

	m, err := c.svc.Members.Get(groupKey, memberKey).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get member %s of group %s: %w", memberKey, groupKey, err)
	}

	result := toMember(m)
	return &result, nil
}

// AddMember adds a user or group to the specified group. Type defaults to
// USER and delivery settings to ALL_MAIL; the role is required.
func (c *Client) AddMember(groupKey string, input MemberInput) (*Member, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := c.wait(); err != nil {
		return nil, err
	}

	created, err := c.svc.Members.Insert(groupKey, &admin.Member{
		Email:            input.Email,
		Role:             input.Role,
		Type:             input.Type,
		DeliverySettings: input.DeliverySettings,
	}).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to add member %s to group %s: %w", input.Email, groupKey, err)
	}

	result := toMember(created)
	return &result, nil
}

// UpdateMember updates the role and/or delivery settings of a membership.
// Empty values inherit the member's current ones, so either field can be
// changed in isolation.
func (c *Client) UpdateMember(groupKey, memberKey, role, deliverySettings string) (*Member, error) {
	existing, err := c.GetMember(groupKey, memberKey)
	if err != nil {
		return nil, err
	}

	if role == "" {
		role = existing.Role
	}
	if deliverySettings == "" {
		deliverySettings = existing.DeliverySettings
	}
	if err := ValidateRole(role); err != nil {
		return nil, err
	}
	if deliverySettings != "" {
		if err := ValidateDeliverySettings(deliverySettings); err != nil {
			return nil, err
		}
	}
	if err := c.wait(); err != nil {
		return nil, err
	}

	updated, err := c.svc.Members.Patch(groupKey, memberKey, &admin.Member{
		Role:             role,
		DeliverySettings: deliverySettings,
	}).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update member %s of group %s: %w", memberKey, groupKey, err)
	}

	result := toMember(updated)
	return &result, nil
}

// DeleteMember removes a member from a group.
func (c *Client) DeleteMember(groupKey, memberKey string) error {
	if err := c.wait(); err != nil {
		return err
	}

	if err := c.svc.Members.Delete(groupKey, memberKey).Do(); err != nil {
		return fmt.Errorf("failed to delete member %s from group %s: %w", memberKey, groupKey, err)
	}
	return nil
}

// ForeachMember iterates over all members of a group, following pagination
// until exhausted.
func (c *Client) ForeachMember(groupKey string, fn func(*Member) error) error {
	pageToken := ""
	for {
		if err := c.wait(); err != nil {
			return err
		}

		req := c.svc.Members.List(groupKey)
		if pageToken != "" {
			req = req.PageToken(pageToken)
		}

		res, err := req.Do()
		if err != nil {
			return fmt.Errorf("failed to list members of group %s: %w", groupKey, err)
		}
		for _, m := range res.Members {
			member := toMember(m)
			if err := fn(&member); err != nil {
				return err
			}
		}
		if res.NextPageToken == "" {
			return nil
		}
		pageToken = res.NextPageToken
	}
}

// ListMembers retrieves all members of a group.
func (c *Client) ListMembers(groupKey string) ([]Member, error) {
	var result []Member
	err := c.ForeachMember(groupKey, func(m *Member) error {
		result = append(result, *m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// HasMember checks whether memberKey is a member of the group, including
// via nested group membership.
func (c *Client) HasMember(groupKey, memberKey string) (bool, error) {
	if err := c.wait(); err != nil {
		return false, err
	}

	res, err := c.svc.Members.HasMember(groupKey, memberKey).Do()
	if err != nil {
		return false, fmt.Errorf("failed to check membership of %s in group %s: %w", memberKey, groupKey, err)
	}
	return res.IsMember, nil
}
