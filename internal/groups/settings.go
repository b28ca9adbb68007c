package groups

import (
	"strconv"

	groupssettings "google.golang.org/api/groupssettings/v1"
)

// GroupSettings holds the Groups Settings API configuration of a group.
//
// The Groups Settings API encodes booleans as the strings "true"/"false";
// this type exposes real booleans and converts at the API boundary. Boolean
// fields are pointers so that an update sends only the fields the caller
// set; a nil boolean is omitted from the patch body entirely.
type GroupSettings struct {
	// Access
	WhoCanJoin           string `json:"whoCanJoin,omitempty"`
	WhoCanViewMembership string `json:"whoCanViewMembership,omitempty"`
	WhoCanViewGroup      string `json:"whoCanViewGroup,omitempty"`
	WhoCanInvite         string `json:"whoCanInvite,omitempty"`
	WhoCanAdd            string `json:"whoCanAdd,omitempty"`
	WhoCanLeaveGroup     string `json:"whoCanLeaveGroup,omitempty"`
	WhoCanContactOwner   string `json:"whoCanContactOwner,omitempty"`
	WhoCanDiscoverGroup  string `json:"whoCanDiscoverGroup,omitempty"`
	AllowExternalMembers *bool  `json:"allowExternalMembers,omitempty"`

	// Posting
	WhoCanPostMessage        string `json:"whoCanPostMessage,omitempty"`
	AllowWebPosting          *bool  `json:"allowWebPosting,omitempty"`
	MaxMessageBytes          int64  `json:"maxMessageBytes,omitempty"`
	MessageModerationLevel   string `json:"messageModerationLevel,omitempty"`
	SpamModerationLevel      string `json:"spamModerationLevel,omitempty"`
	ReplyTo                  string `json:"replyTo,omitempty"`
	CustomReplyTo            string `json:"customReplyTo,omitempty"`
	IncludeCustomFooter      *bool  `json:"includeCustomFooter,omitempty"`
	CustomFooterText         string `json:"customFooterText,omitempty"`
	MembersCanPostAsTheGroup *bool  `json:"membersCanPostAsTheGroup,omitempty"`
	MessageDisplayFont       string `json:"messageDisplayFont,omitempty"`

	// Archive
	IsArchived  *bool `json:"isArchived,omitempty"`
	ArchiveOnly *bool `json:"archiveOnly,omitempty"`

	// Notifications
	SendMessageDenyNotification        *bool  `json:"sendMessageDenyNotification,omitempty"`
	DefaultMessageDenyNotificationText string `json:"defaultMessageDenyNotificationText,omitempty"`

	// Directory
	ShowInGroupDirectory       *bool `json:"showInGroupDirectory,omitempty"`
	IncludeInGlobalAddressList *bool `json:"includeInGlobalAddressList,omitempty"`
	AllowGoogleCommunication   *bool `json:"allowGoogleCommunication,omitempty"`

	// Moderation
	WhoCanApproveMembers    string `json:"whoCanApproveMembers,omitempty"`
	WhoCanBanUsers          string `json:"whoCanBanUsers,omitempty"`
	WhoCanModifyMembers     string `json:"whoCanModifyMembers,omitempty"`
	WhoCanApproveMessages   string `json:"whoCanApproveMessages,omitempty"`
	WhoCanDeleteAnyPost     string `json:"whoCanDeleteAnyPost,omitempty"`
	WhoCanDeleteTopics      string `json:"whoCanDeleteTopics,omitempty"`
	WhoCanLockTopics        string `json:"whoCanLockTopics,omitempty"`
	WhoCanMoveTopicsIn      string `json:"whoCanMoveTopicsIn,omitempty"`
	WhoCanMoveTopicsOut     string `json:"whoCanMoveTopicsOut,omitempty"`
	WhoCanPostAnnouncements string `json:"whoCanPostAnnouncements,omitempty"`
	WhoCanHideAbuse         string `json:"whoCanHideAbuse,omitempty"`
	WhoCanMakeTopicsSticky  string `json:"whoCanMakeTopicsSticky,omitempty"`
	WhoCanModerateMembers   string `json:"whoCanModerateMembers,omitempty"`
	WhoCanModerateContent   string `json:"whoCanModerateContent,omitempty"`
	WhoCanAssistContent     string `json:"whoCanAssistContent,omitempty"`

	// Topics (legacy Google Groups features)
	WhoCanAddReferences                 string `json:"whoCanAddReferences,omitempty"`
	WhoCanAssignTopics                  string `json:"whoCanAssignTopics,omitempty"`
	WhoCanUnassignTopic                 string `json:"whoCanUnassignTopic,omitempty"`
	WhoCanTakeTopics                    string `json:"whoCanTakeTopics,omitempty"`
	WhoCanMarkDuplicate                 string `json:"whoCanMarkDuplicate,omitempty"`
	WhoCanMarkNoResponseNeeded          string `json:"whoCanMarkNoResponseNeeded,omitempty"`
	WhoCanMarkFavoriteReplyOnAnyTopic   string `json:"whoCanMarkFavoriteReplyOnAnyTopic,omitempty"`
	WhoCanMarkFavoriteReplyOnOwnTopic   string `json:"whoCanMarkFavoriteReplyOnOwnTopic,omitempty"`
	WhoCanUnmarkFavoriteReplyOnAnyTopic string `json:"whoCanUnmarkFavoriteReplyOnAnyTopic,omitempty"`
	WhoCanEnterFreeFormTags             string `json:"whoCanEnterFreeFormTags,omitempty"`
	WhoCanModifyTagsAndCategories       string `json:"whoCanModifyTagsAndCategories,omitempty"`
	FavoriteRepliesOnTop                *bool  `json:"favoriteRepliesOnTop,omitempty"`

	// Misc
	CustomRolesEnabledForSettingsToBeMerged *bool `json:"customRolesEnabledForSettingsToBeMerged,omitempty"`
	EnableCollaborativeInbox                *bool `json:"enableCollaborativeInbox,omitempty"`
}

// DefaultSettings returns the settings applied when UpdateGroupSettings is
// called with nil: a closed, archived, domain-internal group.
func DefaultSettings() *GroupSettings {
	return &GroupSettings{
		WhoCanJoin:           "CAN_REQUEST_TO_JOIN",
		WhoCanViewMembership: "ALL_IN_DOMAIN_CAN_VIEW",
		WhoCanViewGroup:      "ALL_MEMBERS_CAN_VIEW",
		WhoCanInvite:         "ALL_MANAGERS_CAN_INVITE",
		WhoCanAdd:            "ALL_MANAGERS_CAN_ADD",
		WhoCanLeaveGroup:     "ALL_MEMBERS_CAN_LEAVE",
		WhoCanContactOwner:   "ALL_IN_DOMAIN_CAN_CONTACT",
		WhoCanDiscoverGroup:  "ALL_MEMBERS_CAN_DISCOVER",
		AllowExternalMembers: boolPtr(false),

		WhoCanPostMessage:        "ANYONE_CAN_POST",
		AllowWebPosting:          boolPtr(false),
		MaxMessageBytes:          26214400,
		MessageModerationLevel:   "MODERATE_NONE",
		SpamModerationLevel:      "MODERATE",
		ReplyTo:                  "REPLY_TO_IGNORE",
		CustomReplyTo:            "",
		IncludeCustomFooter:      boolPtr(false),
		CustomFooterText:         "",
		MembersCanPostAsTheGroup: boolPtr(false),
		MessageDisplayFont:       "DEFAULT_FONT",

		IsArchived:  boolPtr(true),
		ArchiveOnly: boolPtr(false),

		SendMessageDenyNotification:        boolPtr(false),
		DefaultMessageDenyNotificationText: "",

		ShowInGroupDirectory:       boolPtr(false),
		IncludeInGlobalAddressList: boolPtr(true),
		AllowGoogleCommunication:   boolPtr(false),

		WhoCanApproveMembers:    "ALL_MANAGERS_CAN_APPROVE",
		WhoCanBanUsers:          "OWNERS_AND_MANAGERS",
		WhoCanModifyMembers:     "OWNERS_AND_MANAGERS",
		WhoCanApproveMessages:   "OWNERS_AND_MANAGERS",
		WhoCanDeleteAnyPost:     "OWNERS_AND_MANAGERS",
		WhoCanDeleteTopics:      "OWNERS_AND_MANAGERS",
		WhoCanLockTopics:        "OWNERS_AND_MANAGERS",
		WhoCanMoveTopicsIn:      "OWNERS_AND_MANAGERS",
		WhoCanMoveTopicsOut:     "OWNERS_AND_MANAGERS",
		WhoCanPostAnnouncements: "OWNERS_AND_MANAGERS",
		WhoCanHideAbuse:         "NONE",
		WhoCanMakeTopicsSticky:  "NONE",
		WhoCanModerateMembers:   "OWNERS_AND_MANAGERS",
		WhoCanModerateContent:   "OWNERS_AND_MANAGERS",
		WhoCanAssistContent:     "NONE",

		WhoCanAddReferences:                 "NONE",
		WhoCanAssignTopics:                  "NONE",
		WhoCanUnassignTopic:                 "NONE",
		WhoCanTakeTopics:                    "NONE",
		WhoCanMarkDuplicate:                 "NONE",
		WhoCanMarkNoResponseNeeded:          "NONE",
		WhoCanMarkFavoriteReplyOnAnyTopic:   "NONE",
		WhoCanMarkFavoriteReplyOnOwnTopic:   "NONE",
		WhoCanUnmarkFavoriteReplyOnAnyTopic: "NONE",
		WhoCanEnterFreeFormTags:             "NONE",
		WhoCanModifyTagsAndCategories:       "NONE",
		FavoriteRepliesOnTop:                boolPtr(false),

		CustomRolesEnabledForSettingsToBeMerged: boolPtr(false),
		EnableCollaborativeInbox:                boolPtr(false),
	}
}

// toAPI converts the settings to the Groups Settings API resource. Unset
// booleans become empty strings, which the API client omits from the patch.
func (s *GroupSettings) toAPI() *groupssettings.Groups {
	return &groupssettings.Groups{
		Kind: "groupsSettings#groups",

		WhoCanJoin:           s.WhoCanJoin,
		WhoCanViewMembership: s.WhoCanViewMembership,
		WhoCanViewGroup:      s.WhoCanViewGroup,
		WhoCanInvite:         s.WhoCanInvite,
		WhoCanAdd:            s.WhoCanAdd,
		WhoCanLeaveGroup:     s.WhoCanLeaveGroup,
		WhoCanContactOwner:   s.WhoCanContactOwner,
		WhoCanDiscoverGroup:  s.WhoCanDiscoverGroup,
		AllowExternalMembers: formatBool(s.AllowExternalMembers),

		WhoCanPostMessage:        s.WhoCanPostMessage,
		AllowWebPosting:          formatBool(s.AllowWebPosting),
		MaxMessageBytes:          s.MaxMessageBytes,
		MessageModerationLevel:   s.MessageModerationLevel,
		SpamModerationLevel:      s.SpamModerationLevel,
		ReplyTo:                  s.ReplyTo,
		CustomReplyTo:            s.CustomReplyTo,
		IncludeCustomFooter:      formatBool(s.IncludeCustomFooter),
		CustomFooterText:         s.CustomFooterText,
		MembersCanPostAsTheGroup: formatBool(s.MembersCanPostAsTheGroup),
		MessageDisplayFont:       s.MessageDisplayFont,

		IsArchived:  formatBool(s.IsArchived),
		ArchiveOnly: formatBool(s.ArchiveOnly),

		SendMessageDenyNotification:        formatBool(s.SendMessageDenyNotification),
		DefaultMessageDenyNotificationText: s.DefaultMessageDenyNotificationText,

		ShowInGroupDirectory:       formatBool(s.ShowInGroupDirectory),
		IncludeInGlobalAddressList: formatBool(s.IncludeInGlobalAddressList),
		AllowGoogleCommunication:   formatBool(s.AllowGoogleCommunication),

		WhoCanApproveMembers:    s.WhoCanApproveMembers,
		WhoCanBanUsers:          s.WhoCanBanUsers,
		WhoCanModifyMembers:     s.WhoCanModifyMembers,
		WhoCanApproveMessages:   s.WhoCanApproveMessages,
		WhoCanDeleteAnyPost:     s.WhoCanDeleteAnyPost,
		WhoCanDeleteTopics:      s.WhoCanDeleteTopics,
		WhoCanLockTopics:        s.WhoCanLockTopics,
		WhoCanMoveTopicsIn:      s.WhoCanMoveTopicsIn,
		WhoCanMoveTopicsOut:     s.WhoCanMoveTopicsOut,
		WhoCanPostAnnouncements: s.WhoCanPostAnnouncements,
		WhoCanHideAbuse:         s.WhoCanHideAbuse,
		WhoCanMakeTopicsSticky:  s.WhoCanMakeTopicsSticky,
		WhoCanModerateMembers:   s.WhoCanModerateMembers,
		WhoCanModerateContent:   s.WhoCanModerateContent,
		WhoCanAssistContent:     s.WhoCanAssistContent,

		WhoCanAddReferences:                 s.WhoCanAddReferences,
		WhoCanAssignTopics:                  s.WhoCanAssignTopics,
		WhoCanUnassignTopic:                 s.WhoCanUnassignTopic,
		WhoCanTakeTopics:                    s.WhoCanTakeTopics,
		WhoCanMarkDuplicate:                 s.WhoCanMarkDuplicate,
		WhoCanMarkNoResponseNeeded:          s.WhoCanMarkNoResponseNeeded,
		WhoCanMarkFavoriteReplyOnAnyTopic:   s.WhoCanMarkFavoriteReplyOnAnyTopic,
		WhoCanMarkFavoriteReplyOnOwnTopic:   s.WhoCanMarkFavoriteReplyOnOwnTopic,
		WhoCanUnmarkFavoriteReplyOnAnyTopic: s.WhoCanUnmarkFavoriteReplyOnAnyTopic,
		WhoCanEnterFreeFormTags:             s.WhoCanEnterFreeFormTags,
		WhoCanModifyTagsAndCategories:       s.WhoCanModifyTagsAndCategories,
		FavoriteRepliesOnTop:                formatBool(s.FavoriteRepliesOnTop),

		CustomRolesEnabledForSettingsToBeMerged: formatBool(s.CustomRolesEnabledForSettingsToBeMerged),
		EnableCollaborativeInbox:                formatBool(s.EnableCollaborativeInbox),
	}
}

// toSettings converts a Groups Settings API resource to our GroupSettings.
func toSettings(g *groupssettings.Groups) GroupSettings {
	if g == nil {
		return GroupSettings{}
	}
	return GroupSettings{
		WhoCanJoin:           g.WhoCanJoin,
		WhoCanViewMembership: g.WhoCanViewMembership,
		WhoCanViewGroup:      g.WhoCanViewGroup,
		WhoCanInvite:         g.WhoCanInvite,
		WhoCanAdd:            g.WhoCanAdd,
		WhoCanLeaveGroup:     g.WhoCanLeaveGroup,
		WhoCanContactOwner:   g.WhoCanContactOwner,
		WhoCanDiscoverGroup:  g.WhoCanDiscoverGroup,
		AllowExternalMembers: parseBool(g.AllowExternalMembers),

		WhoCanPostMessage:        g.WhoCanPostMessage,
		AllowWebPosting:          parseBool(g.AllowWebPosting),
		MaxMessageBytes:          g.MaxMessageBytes,
		MessageModerationLevel:   g.MessageModerationLevel,
		SpamModerationLevel:      g.SpamModerationLevel,
		ReplyTo:                  g.ReplyTo,
		CustomReplyTo:            g.CustomReplyTo,
		IncludeCustomFooter:      parseBool(g.IncludeCustomFooter),
		CustomFooterText:         g.CustomFooterText,
		MembersCanPostAsTheGroup: parseBool(g.MembersCanPostAsTheGroup),
		MessageDisplayFont:       g.MessageDisplayFont,

		IsArchived:  parseBool(g.IsArchived),
		ArchiveOnly: parseBool(g.ArchiveOnly),

		SendMessageDenyNotification:        parseBool(g.SendMessageDenyNotification),
		DefaultMessageDenyNotificationText: g.DefaultMessageDenyNotificationText,

		ShowInGroupDirectory:       parseBool(g.ShowInGroupDirectory),
		IncludeInGlobalAddressList: parseBool(g.IncludeInGlobalAddressList),
		AllowGoogleCommunication:   parseBool(g.AllowGoogleCommunication),

		WhoCanApproveMembers:    g.WhoCanApproveMembers,
		WhoCanBanUsers:          g.WhoCanBanUsers,
		WhoCanModifyMembers:     g.WhoCanModifyMembers,
		WhoCanApproveMessages:   g.WhoCanApproveMessages,
		WhoCanDeleteAnyPost:     g.WhoCanDeleteAnyPost,
		WhoCanDeleteTopics:      g.WhoCanDeleteTopics,
		WhoCanLockTopics:        g.WhoCanLockTopics,
		WhoCanMoveTopicsIn:      g.WhoCanMoveTopicsIn,
		WhoCanMoveTopicsOut:     g.WhoCanMoveTopicsOut,
		WhoCanPostAnnouncements: g.WhoCanPostAnnouncements,
		WhoCanHideAbuse:         g.WhoCanHideAbuse,
		WhoCanMakeTopicsSticky:  g.WhoCanMakeTopicsSticky,
		WhoCanModerateMembers:   g.WhoCanModerateMembers,
		WhoCanModerateContent:   g.WhoCanModerateContent,
		WhoCanAssistContent:     g.WhoCanAssistContent,

		WhoCanAddReferences:                 g.WhoCanAddReferences,
		WhoCanAssignTopics:                  g.WhoCanAssignTopics,
		WhoCanUnassignTopic:                 g.WhoCanUnassignTopic,
		WhoCanTakeTopics:                    g.WhoCanTakeTopics,
		WhoCanMarkDuplicate:                 g.WhoCanMarkDuplicate,
		WhoCanMarkNoResponseNeeded:          g.WhoCanMarkNoResponseNeeded,
		WhoCanMarkFavoriteReplyOnAnyTopic:   g.WhoCanMarkFavoriteReplyOnAnyTopic,
		WhoCanMarkFavoriteReplyOnOwnTopic:   g.WhoCanMarkFavoriteReplyOnOwnTopic,
		WhoCanUnmarkFavoriteReplyOnAnyTopic: g.WhoCanUnmarkFavoriteReplyOnAnyTopic,
		WhoCanEnterFreeFormTags:             g.WhoCanEnterFreeFormTags,
		WhoCanModifyTagsAndCategories:       g.WhoCanModifyTagsAndCategories,
		FavoriteRepliesOnTop:                parseBool(g.FavoriteRepliesOnTop),

		CustomRolesEnabledForSettingsToBeMerged: parseBool(g.CustomRolesEnabledForSettingsToBeMerged),
		EnableCollaborativeInbox:                parseBool(g.EnableCollaborativeInbox),
	}
}

// The Groups Settings API represents booleans as "true"/"false" strings.
// A nil pointer maps to the empty string and back, representing "not set".

func boolPtr(b bool) *bool {
	return &b
}

func formatBool(b *bool) string {
	if b == nil {
		return ""
	}
	return strconv.FormatBool(*b)
}

func parseBool(s string) *bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil
	}
	return boolPtr(b)
}
