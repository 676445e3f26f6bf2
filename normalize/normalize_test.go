package normalize

import (
	"errors"
	"reflect"
	"testing"

	"github.com/GS-Software-Solutions/TeddyServer/siteinfo"
	"github.com/GS-Software-Solutions/TeddyServer/teddy"
)

func sampleSnapshot() *teddy.CheckMessagesResponse {
	return &teddy.CheckMessagesResponse{
		Status: true,
		Dialog: &teddy.Dialog{
			ID:        7,
			CreatedAt: "2024-03-01 18:30:00",
			Messages: []teddy.Message{
				{FromID: 20, ToID: 10, Message: "hey there", CreatedAt: "2024-03-01 18:31:00"},
				{FromID: 10, ToID: 20, Message: "hi!", CreatedAt: "2024-03-01 18:32:00"},
			},
		},
		User: &teddy.User{
			ID:     10,
			Name:   "Anna",
			Gender: 2,
			Age:    29,
			Coordinates: &teddy.UserCoordinates{
				Postcode: 10115,
				City:     "Berlin",
				Country:  "DE",
			},
			ImagePrimary: &teddy.UserImage{Name: "https://img.example/anna.jpg"},
			ImageProfile: []teddy.UserImage{
				{Name: "https://img.example/anna-1.jpg"},
				{Name: "https://img.example/anna-2.jpg"},
			},
			Usertext: &teddy.UserText{Usertext: "Hallo, ich bin Anna."},
		},
		Writer: &teddy.User{
			ID:     20,
			Name:   "Mara",
			Gender: 2,
		},
		DialogInformations: []teddy.DialogNote{
			{Type: 0, Topic: "default_name", Note: "Anna"},
		},
		MinCharCount: 120,
	}
}

func TestNormalizeEndToEnd(t *testing.T) {
	infos, err := Normalize(sampleSnapshot())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if infos.Origin != siteinfo.OriginTeddy {
		t.Errorf("expected origin %q, got %q", siteinfo.OriginTeddy, infos.Origin)
	}
	if len(infos.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(infos.Messages))
	}
	if infos.Messages[0].Type != siteinfo.TypeSent {
		t.Errorf("expected first message sent, got %q", infos.Messages[0].Type)
	}
	if infos.Messages[1].Type != siteinfo.TypeReceived {
		t.Errorf("expected second message received, got %q", infos.Messages[1].Type)
	}

	meta := infos.MetaData
	if meta.CustomerID != "10" || meta.ModeratorID != "20" {
		t.Errorf("unexpected ids: customer=%q moderator=%q", meta.CustomerID, meta.ModeratorID)
	}
	if meta.MinLength != 120 {
		t.Errorf("expected minLength 120, got %d", meta.MinLength)
	}
	if meta.CustomerNotes == nil {
		t.Fatal("expected customer notes")
	}
	if meta.CustomerNotes.RawText != "default_name: Anna" {
		t.Errorf("unexpected customer raw text: %q", meta.CustomerNotes.RawText)
	}
	if meta.CustomerNotes.Name != "Anna" {
		t.Errorf("expected type-0 note mapped to customer name, got %q", meta.CustomerNotes.Name)
	}
	if meta.ModeratorNotes.RawText != "" || meta.ModeratorNotes.Name != "" {
		t.Errorf("moderator notes should be empty, got %+v", meta.ModeratorNotes)
	}
	if meta.SessionStart == nil {
		t.Fatal("expected session start from dialog creation time")
	}
	if meta.CustomerProfilePic != "https://img.example/anna.jpg" {
		t.Errorf("unexpected customer profile pic: %q", meta.CustomerProfilePic)
	}
	if len(meta.CustomerGallery) != 2 {
		t.Errorf("expected 2 gallery urls, got %d", len(meta.CustomerGallery))
	}
	if len(meta.ModeratorGallery) != 0 {
		t.Errorf("expected empty moderator gallery, got %v", meta.ModeratorGallery)
	}
}

func TestNormalizeIsPure(t *testing.T) {
	first, err := Normalize(sampleSnapshot())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Normalize(sampleSnapshot())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("normalize produced different results for identical snapshots")
	}
}

func TestNormalizeIncompleteSnapshot(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*teddy.CheckMessagesResponse)
	}{
		{"missing dialog", func(s *teddy.CheckMessagesResponse) { s.Dialog = nil }},
		{"missing user", func(s *teddy.CheckMessagesResponse) { s.User = nil }},
		{"missing writer", func(s *teddy.CheckMessagesResponse) { s.Writer = nil }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snap := sampleSnapshot()
			tc.mutate(snap)
			if _, err := Normalize(snap); !errors.Is(err, ErrIncompleteSnapshot) {
				t.Errorf("expected ErrIncompleteSnapshot, got %v", err)
			}
		})
	}

	if _, err := Normalize(nil); !errors.Is(err, ErrIncompleteSnapshot) {
		t.Errorf("expected ErrIncompleteSnapshot for nil snapshot, got %v", err)
	}
}

func TestConvertMessagesPartition(t *testing.T) {
	messages := []teddy.Message{
		{FromID: 20, Message: "from writer"},
		{FromID: 10, Message: "from customer"},
		{FromID: 99, Message: "from nobody"},
	}
	out := ConvertMessages(messages, 10, 20)
	if len(out) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(out))
	}
	want := []string{siteinfo.TypeSent, siteinfo.TypeReceived, siteinfo.TypeSystem}
	for i, msg := range out {
		if msg.Type != want[i] {
			t.Errorf("message %d: expected %q, got %q", i, want[i], msg.Type)
		}
		if msg.MessageType != siteinfo.MessageTypeText {
			t.Errorf("message %d: expected text type, got %q", i, msg.MessageType)
		}
	}
}

func TestConvertUserGenderCollapse(t *testing.T) {
	for _, code := range []int{0, 2, 3, -1, 42} {
		info := ConvertUser(&teddy.User{Gender: code})
		if info.Gender != "female" {
			t.Errorf("gender code %d: expected female, got %q", code, info.Gender)
		}
	}
	if info := ConvertUser(&teddy.User{Gender: 1}); info.Gender != "male" {
		t.Errorf("gender code 1: expected male, got %q", info.Gender)
	}
}

func TestConvertUserProfileFields(t *testing.T) {
	user := &teddy.User{
		Name:   "Anna",
		Gender: 2,
		Age:    29,
		Coordinates: &teddy.UserCoordinates{
			Postcode: 8001,
			City:     "Zürich",
			Country:  "CH",
		},
		ImagePrimary: &teddy.UserImage{Name: "https://img.example/a.jpg"},
		Usertext:     &teddy.UserText{Usertext: "hi"},
	}
	info := ConvertUser(user)

	if info.PostalCode != "8001" {
		t.Errorf("expected postal code coerced to string, got %q", info.PostalCode)
	}
	if info.Country != "CH" {
		t.Errorf("expected country passthrough, got %q", info.Country)
	}
	if !info.HasProfilePic {
		t.Error("expected HasProfilePic from primary image")
	}
	if info.HasPictures {
		t.Error("expected HasPictures false with empty gallery")
	}
	if info.BirthDate.Age != 29 {
		t.Errorf("expected age 29, got %d", info.BirthDate.Age)
	}
	if info.ProfileText != "hi" {
		t.Errorf("expected profile text, got %q", info.ProfileText)
	}
}

func TestConvertUserConfigCategories(t *testing.T) {
	user := &teddy.User{
		Gender: 1,
		Config: []teddy.UserConfig{
			{Name: "Beziehung", ConfigValues: []teddy.UserConfigValue{{Name: "Single"}}},
			{Name: "Musik", ConfigValues: []teddy.UserConfigValue{{Name: "Rock"}, {Name: "Jazz"}}},
			{Name: "Rauchen", ConfigValues: []teddy.UserConfigValue{{Name: "Nein"}, {Name: "Gelegentlich"}}},
			{Name: "Tattoo", ConfigValues: []teddy.UserConfigValue{{Name: "Ja, mehrere"}}},
			{Name: "Unbekannt", ConfigValues: []teddy.UserConfigValue{{Name: "x"}}},
		},
	}
	info := ConvertUser(user)

	if info.RelationshipStatus != "Single" {
		t.Errorf("unexpected relationship status: %q", info.RelationshipStatus)
	}
	if info.Music != "Rock, Jazz" {
		t.Errorf("expected multi-value join, got %q", info.Music)
	}
	if info.Smoking != "Nein" {
		t.Errorf("expected first value only, got %q", info.Smoking)
	}
	if !info.HasTattoo {
		t.Error("expected tattoo true for value containing Ja")
	}
	if info.LookingFor != "" {
		t.Errorf("absent category must leave field unset, got %q", info.LookingFor)
	}
}

func TestParseTimestampLenient(t *testing.T) {
	if ts := parseTimestamp("2024-03-01T18:30:00Z"); ts == nil {
		t.Error("expected RFC3339 timestamp to parse")
	}
	if ts := parseTimestamp("2024-03-01 18:30:00"); ts == nil {
		t.Error("expected vendor timestamp to parse")
	}
	if ts := parseTimestamp("not a time"); ts != nil {
		t.Errorf("expected nil for garbage input, got %v", ts)
	}
	if ts := parseTimestamp(""); ts != nil {
		t.Errorf("expected nil for empty input, got %v", ts)
	}
}
