package groups

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	groupssettings "google.golang.org/api/groupssettings/v1"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.WhoCanJoin != "CAN_REQUEST_TO_JOIN" {
		t.Errorf("WhoCanJoin = %q, want CAN_REQUEST_TO_JOIN", s.WhoCanJoin)
	}
	if s.WhoCanViewMembership != "ALL_IN_DOMAIN_CAN_VIEW" {
		t.Errorf("WhoCanViewMembership = %q, want ALL_IN_DOMAIN_CAN_VIEW", s.WhoCanViewMembership)
	}
	if s.MaxMessageBytes != 26214400 {
		t.Errorf("MaxMessageBytes = %d, want 26214400", s.MaxMessageBytes)
	}
	if s.IsArchived == nil || !*s.IsArchived {
		t.Error("IsArchived should default to true")
	}
	if s.ArchiveOnly == nil || *s.ArchiveOnly {
		t.Error("ArchiveOnly should default to false")
	}
	if s.AllowExternalMembers == nil || *s.AllowExternalMembers {
		t.Error("AllowExternalMembers should default to false")
	}
	if s.IncludeInGlobalAddressList == nil || !*s.IncludeInGlobalAddressList {
		t.Error("IncludeInGlobalAddressList should default to true")
	}
	if s.MessageModerationLevel != "MODERATE_NONE" {
		t.Errorf("MessageModerationLevel = %q, want MODERATE_NONE", s.MessageModerationLevel)
	}
	if s.SpamModerationLevel != "MODERATE" {
		t.Errorf("SpamModerationLevel = %q, want MODERATE", s.SpamModerationLevel)
	}
	if s.WhoCanModerateMembers != "OWNERS_AND_MANAGERS" {
		t.Errorf("WhoCanModerateMembers = %q, want OWNERS_AND_MANAGERS", s.WhoCanModerateMembers)
	}
	if s.WhoCanAssistContent != "NONE" {
		t.Errorf("WhoCanAssistContent = %q, want NONE", s.WhoCanAssistContent)
	}
}

func TestSettingsToAPI(t *testing.T) {
	api := DefaultSettings().toAPI()

	if api.Kind != "groupsSettings#groups" {
		t.Errorf("Kind = %q, want groupsSettings#groups", api.Kind)
	}
	// Booleans must be encoded as strings for the Groups Settings API
	if api.IsArchived != "true" {
		t.Errorf("IsArchived = %q, want \"true\"", api.IsArchived)
	}
	if api.AllowExternalMembers != "false" {
		t.Errorf("AllowExternalMembers = %q, want \"false\"", api.AllowExternalMembers)
	}
	if api.MaxMessageBytes != 26214400 {
		t.Errorf("MaxMessageBytes = %d, want 26214400", api.MaxMessageBytes)
	}
	if api.WhoCanPostMessage != "ANYONE_CAN_POST" {
		t.Errorf("WhoCanPostMessage = %q, want ANYONE_CAN_POST", api.WhoCanPostMessage)
	}
	if api.MessageDisplayFont != "DEFAULT_FONT" {
		t.Errorf("MessageDisplayFont = %q, want DEFAULT_FONT", api.MessageDisplayFont)
	}
}

func TestSettingsToAPIPartialUpdate(t *testing.T) {
	// A settings value with a single field set must not force the other
	// fields into the patch body. Unset booleans map to the empty string,
	// which the API struct's omitempty tags drop from the request.
	s := &GroupSettings{WhoCanJoin: "INVITED_CAN_JOIN"}
	api := s.toAPI()

	if api.WhoCanJoin != "INVITED_CAN_JOIN" {
		t.Errorf("WhoCanJoin = %q, want INVITED_CAN_JOIN", api.WhoCanJoin)
	}
	for name, got := range map[string]string{
		"AllowExternalMembers":        api.AllowExternalMembers,
		"AllowWebPosting":             api.AllowWebPosting,
		"IsArchived":                  api.IsArchived,
		"ArchiveOnly":                 api.ArchiveOnly,
		"ShowInGroupDirectory":        api.ShowInGroupDirectory,
		"IncludeInGlobalAddressList":  api.IncludeInGlobalAddressList,
		"AllowGoogleCommunication":    api.AllowGoogleCommunication,
		"SendMessageDenyNotification": api.SendMessageDenyNotification,
		"MembersCanPostAsTheGroup":    api.MembersCanPostAsTheGroup,
		"IncludeCustomFooter":         api.IncludeCustomFooter,
		"FavoriteRepliesOnTop":        api.FavoriteRepliesOnTop,
		"EnableCollaborativeInbox":    api.EnableCollaborativeInbox,
	} {
		if got != "" {
			t.Errorf("%s = %q, want empty for an unset boolean", name, got)
		}
	}

	body, err := json.Marshal(api)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(body), "whoCanJoin") {
		t.Errorf("patch body missing whoCanJoin: %s", body)
	}
	for _, key := range []string{"isArchived", "allowExternalMembers", "archiveOnly"} {
		if strings.Contains(string(body), key) {
			t.Errorf("patch body contains unset field %s: %s", key, body)
		}
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	want := DefaultSettings()
	got := toSettings(want.toAPI())

	if !reflect.DeepEqual(&got, want) {
		t.Errorf("settings round trip mismatch:\n got %+v\nwant %+v", got, *want)
	}
}

func TestToSettingsNil(t *testing.T) {
	result := toSettings(nil)
	if result.WhoCanJoin != "" {
		t.Errorf("Expected zero settings for nil input, got %+v", result)
	}
}

func TestToSettingsBoolParsing(t *testing.T) {
	g := &groupssettings.Groups{
		IsArchived:           "true",
		AllowExternalMembers: "false",
		AllowWebPosting:      "not-a-bool",
	}
	s := toSettings(g)

	if s.IsArchived == nil || !*s.IsArchived {
		t.Error("IsArchived should parse \"true\" as true")
	}
	if s.AllowExternalMembers == nil || *s.AllowExternalMembers {
		t.Error("AllowExternalMembers should parse \"false\" as false")
	}
	if s.AllowWebPosting != nil {
		t.Error("unparseable boolean strings should map to unset")
	}
}
