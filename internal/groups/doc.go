// Package groups provides a client for managing Google Workspace groups.
//
// This package wraps the Admin SDK Directory API (admin/directory/v1) and the
// Groups Settings API (groupssettings/v1) and provides functionality for:
//   - Managing groups (create, get, update, delete, list)
//   - Managing group members (get, add, update, delete, list, membership checks)
//   - Reading and patching Groups Settings, with a default settings profile
//     for newly provisioned groups
//
// API resources are converted into the package's own Group, Member and
// GroupSettings types; Google API errors are wrapped and propagated as-is.
// Calls are paced with a client-side rate limiter to stay inside the Admin
// SDK per-user quota during bulk operations.
//
// # Authentication
//
// The client authenticates through the internal/google package, either with
// a service account key using domain-wide delegation (the delegated user must
// be an admin with Groups privileges) or with a cached server_side OAuth
// token per account.
//
// # Example Usage
//
//	cfg := &google.Config{
//	    Mode:            google.AuthModeServiceAccount,
//	    CredentialsFile: "service-account.json",
//	    DelegatedEmail:  "admin@example.com",
//	}
//
//	client, err := groups.NewClient(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	group, err := client.CreateGroup("devops@example.com", "DevOps", "DevOps team")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	_, err = client.AddMember(group.Email, groups.MemberInput{
//	    Email: "jane@example.com",
//	    Role:  groups.RoleManager,
//	})
package groups
