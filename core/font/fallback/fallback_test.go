package fallback

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestPreference(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsel.group")
	defer teardown()
	//
	assert.Equal(t, PresentEmoji, Options{Codepoint: 0x1F600}.Preference(), "emoticons default to emoji")
	assert.Equal(t, PresentText, Options{Codepoint: 0x1F600, NextCodepoint: VS15}.Preference(), "VS15 requests text")
	assert.Equal(t, PresentEmoji, Options{Codepoint: 0x2665, NextCodepoint: VS16}.Preference(), "VS16 requests emoji")
	assert.Equal(t, PresentAny, Options{Codepoint: 'a'}.Preference())
}

func TestFamiliesScriptSpecific(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsel.group")
	defer teardown()
	//
	arabic := Families(Options{Codepoint: 0x0627})
	assert.Contains(t, arabic, "Noto Sans Arabic")
	han := Families(Options{Codepoint: 0x4E2D})
	assert.Contains(t, han, "Noto Sans CJK SC")
	latin := Families(Options{Codepoint: 'a'})
	assert.NotContains(t, latin, "Noto Sans Arabic")
	// every list ends in pan-Unicode candidates
	assert.Contains(t, latin, "Noto Sans")
}

func TestFamiliesEmojiFirst(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsel.group")
	defer teardown()
	//
	fams := Families(Options{Codepoint: 0x1F680})
	if len(fams) == 0 || fams[0] != "Noto Color Emoji" {
		t.Errorf("expected emoji families first for a rocket, have %v", fams)
	}
}

func TestDefaultFamily(t *testing.T) {
	if DefaultFamily() == "" {
		t.Error("expected a platform default family")
	}
}
