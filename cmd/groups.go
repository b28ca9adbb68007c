package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/traveloka/gsuite-go/internal/groups"
)

// newGroupsClient builds a Groups client from the shared auth flags
func newGroupsClient(ctx context.Context) (*groups.Client, error) {
	cfg := authConfigFromFlags()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	client, err := groups.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Groups client for account %s: %w", cfg.AccountName(), err)
	}
	return client, nil
}

func newGroupsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Manage Google Groups, their members and settings",
	}

	cmd.AddCommand(newGroupsListCmd())
	cmd.AddCommand(newGroupsGetCmd())
	cmd.AddCommand(newGroupsCreateCmd())
	cmd.AddCommand(newGroupsUpdateCmd())
	cmd.AddCommand(newGroupsDeleteCmd())
	cmd.AddCommand(newGroupsMembersCmd())
	cmd.AddCommand(newGroupsAddMemberCmd())
	cmd.AddCommand(newGroupsUpdateMemberCmd())
	cmd.AddCommand(newGroupsRemoveMemberCmd())
	cmd.AddCommand(newGroupsHasMemberCmd())
	cmd.AddCommand(newGroupsSettingsCmd())
	cmd.AddCommand(newGroupsSetSettingsCmd())

	return cmd
}

func newGroupsListCmd() *cobra.Command {
	var domain, customer, query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List groups in the domain or customer account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newGroupsClient(cmd.Context())
			if err != nil {
				return err
			}

			list, err := client.ListGroups(groups.ListGroupsOptions{
				Domain:   domain,
				Customer: customer,
				Query:    query,
			})
			if err != nil {
				return fmt.Errorf("failed to list groups: %w", err)
			}
			return printJSON(list)
		},
	}

	cmd.Flags().StringVar(&domain, "domain", "", "Restrict results to groups of this domain")
	cmd.Flags().StringVar(&customer, "customer", "", "Customer ID to list groups for (default: 'my_customer' when no domain is given)")
	cmd.Flags().StringVar(&query, "query", "", "Directory API search query, e.g. 'email:devops-*'")
	return cmd
}

func newGroupsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <group>",
		Short: "Get details of a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newGroupsClient(cmd.Context())
			if err != nil {
				return err
			}

			group, err := client.GetGroup(args[0])
			if err != nil {
				return fmt.Errorf("failed to get group: %w", err)
			}
			return printJSON(group)
		},
	}
}

func newGroupsCreateCmd() *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "create <email>",
		Short: "Create a new group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newGroupsClient(cmd.Context())
			if err != nil {
				return err
			}

			group, err := client.CreateGroup(args[0], name, description)
			if err != nil {
				return fmt.Errorf("failed to create group: %w", err)
			}
			return printJSON(group)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name of the new group")
	cmd.Flags().StringVar(&description, "description", "", "Description of the group's purpose")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newGroupsUpdateCmd() *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "update <group>",
		Short: "Update a group's name or description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" && description == "" {
				return fmt.Errorf("at least one of --name or --description is required")
			}

			client, err := newGroupsClient(cmd.Context())
			if err != nil {
				return err
			}

			group, err := client.UpdateGroup(args[0], name, description)
			if err != nil {
				return fmt.Errorf("failed to update group: %w", err)
			}
			return printJSON(group)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New display name for the group")
	cmd.Flags().StringVar(&description, "description", "", "New description for the group")
	return cmd
}

func newGroupsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <group>",
		Short: "Delete a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newGroupsClient(cmd.Context())
			if err != nil {
				return err
			}

			if err := client.DeleteGroup(args[0]); err != nil {
				return fmt.Errorf("failed to delete group: %w", err)
			}
			fmt.Printf("Group %s deleted\n", args[0])
			return nil
		},
	}
}

func newGroupsMembersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "members <group>",
		Short: "List all members of a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newGroupsClient(cmd.Context())
			if err != nil {
				return err
			}

			members, err := client.ListMembers(args[0])
			if err != nil {
				return fmt.Errorf("failed to list members: %w", err)
			}
			return printJSON(members)
		},
	}
}

func newGroupsAddMemberCmd() *cobra.Command {
	var role, memberType, deliverySettings string

	cmd := &cobra.Command{
		Use:   "add-member <group> <email>...",
		Short: "Add one or more members to a group",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newGroupsClient(cmd.Context())
			if err != nil {
				return err
			}

			groupKey := args[0]
			failed := 0
			for _, email := range args[1:] {
				member, err := client.AddMember(groupKey, groups.MemberInput{
					Email:            email,
					Role:             role,
					Type:             memberType,
					DeliverySettings: deliverySettings,
				})
				if err != nil {
					failed++
					fmt.Fprintf(os.Stderr, "failed to add %s: %v\n", email, err)
					continue
				}
				fmt.Printf("Added %s to %s with role %s\n", member.Email, groupKey, member.Role)
			}
			if failed > 0 {
				return fmt.Errorf("failed to add %d member(s)", failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", groups.RoleMember, "Role for the new members: OWNER, MANAGER or MEMBER")
	cmd.Flags().StringVar(&memberType, "type", "", "Member type: USER, GROUP, CUSTOMER or EXTERNAL (default: USER)")
	cmd.Flags().StringVar(&deliverySettings, "delivery", "", "Mail delivery: ALL_MAIL, DAILY, DIGEST, DISABLED or NONE (default: ALL_MAIL)")
	return cmd
}

func newGroupsUpdateMemberCmd() *cobra.Command {
	var role, deliverySettings string

	cmd := &cobra.Command{
		Use:   "update-member <group> <member>",
		Short: "Update a member's role or delivery settings",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if role == "" && deliverySettings == "" {
				return fmt.Errorf("at least one of --role or --delivery is required")
			}

			client, err := newGroupsClient(cmd.Context())
			if err != nil {
				return err
			}

			member, err := client.UpdateMember(args[0], args[1], role, deliverySettings)
			if err != nil {
				return fmt.Errorf("failed to update member: %w", err)
			}
			return printJSON(member)
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "New role: OWNER, MANAGER or MEMBER")
	cmd.Flags().StringVar(&deliverySettings, "delivery", "", "New mail delivery: ALL_MAIL, DAILY, DIGEST, DISABLED or NONE")
	return cmd
}

func newGroupsRemoveMemberCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-member <group> <member>...",
		Short: "Remove one or more members from a group",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newGroupsClient(cmd.Context())
			if err != nil {
				return err
			}

			groupKey := args[0]
			failed := 0
			for _, memberKey := range args[1:] {
				if err := client.DeleteMember(groupKey, memberKey); err != nil {
					failed++
					fmt.Fprintf(os.Stderr, "failed to remove %s: %v\n", memberKey, err)
					continue
				}
				fmt.Printf("Removed %s from %s\n", memberKey, groupKey)
			}
			if failed > 0 {
				return fmt.Errorf("failed to remove %d member(s)", failed)
			}
			return nil
		},
	}
}

func newGroupsHasMemberCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "has-member <group> <member>",
		Short: "Check whether a user is a member of a group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newGroupsClient(cmd.Context())
			if err != nil {
				return err
			}

			isMember, err := client.HasMember(args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to check membership: %w", err)
			}
			if isMember {
				fmt.Printf("%s is a member of %s\n", args[1], args[0])
			} else {
				fmt.Printf("%s is not a member of %s\n", args[1], args[0])
			}
			return nil
		},
	}
}

func newGroupsSettingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "settings <group>",
		Short: "Get the Groups Settings configuration of a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newGroupsClient(cmd.Context())
			if err != nil {
				return err
			}

			settings, err := client.GetGroupSettings(args[0])
			if err != nil {
				return fmt.Errorf("failed to get group settings: %w", err)
			}
			return printJSON(settings)
		},
	}
}

func newGroupsSetSettingsCmd() *cobra.Command {
	var settingsJSON string
	var useDefaults bool

	cmd := &cobra.Command{
		Use:   "set-settings <group>",
		Short: "Update the Groups Settings configuration of a group",
		Long: `Update the Groups Settings configuration of a group.

With --defaults the library's default settings body is applied. With --json
the given JSON object of settings fields is applied instead, e.g.:

  gsuite groups set-settings team@example.com --json '{"whoCanJoin": "INVITED_CAN_JOIN"}'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if settingsJSON == "" && !useDefaults {
				return fmt.Errorf("either --json or --defaults is required")
			}
			if settingsJSON != "" && useDefaults {
				return fmt.Errorf("--json and --defaults are mutually exclusive")
			}

			var settings *groups.GroupSettings
			if settingsJSON != "" {
				settings = &groups.GroupSettings{}
				if err := unmarshalStrict(settingsJSON, settings); err != nil {
					return fmt.Errorf("invalid settings JSON: %w", err)
				}
			}

			client, err := newGroupsClient(cmd.Context())
			if err != nil {
				return err
			}

			updated, err := client.UpdateGroupSettings(args[0], settings)
			if err != nil {
				return fmt.Errorf("failed to update group settings: %w", err)
			}
			return printJSON(updated)
		},
	}

	cmd.Flags().StringVar(&settingsJSON, "json", "", "JSON object with the settings fields to change")
	cmd.Flags().BoolVar(&useDefaults, "defaults", false, "Apply the library's default settings body")
	return cmd
}
